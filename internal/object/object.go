// Package object implements the two scene-object kinds (entity and
// component), their headers and bodies, and the property list each one
// drives through the property codec (spec §4.6).
package object

import (
	"fmt"

	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
	"github.com/Sleavely/satisfactory-file-parser/internal/property"
	"github.com/Sleavely/satisfactory-file-parser/internal/types"
)

// Kind distinguishes the two scene-object variants a level's header list
// can contain.
type Kind uint32

const (
	KindComponent Kind = 0
	KindEntity    Kind = 1
)

// Header is the fixed-shape portion of a scene object read in the header
// pass, before any bodies are read.
type Header struct {
	Kind Kind

	TypePath       string
	RootObjectPath string
	InstanceName   string

	// Component-only.
	OuterObjectPath string

	// Entity-only.
	NeedsTransform    bool
	Transform         TransformHeader
	WasPlacedInLevel  bool
}

// TransformHeader is the Transform struct embedded directly in an entity
// header (not wrapped in a StructProperty).
type TransformHeader struct {
	HasRotation    bool
	Rotation       [4]float64 // X,Y,Z,W
	HasTranslation bool
	Translation    [3]float64
	HasScale3D     bool
	Scale3D        [3]float64
}

// Body is the variable-shape remainder of a scene object read in the body
// pass.
type Body struct {
	// Entity-only.
	HasParent bool
	Parent    types.ObjectReference
	Children  []types.ObjectReference

	Properties property.List

	// TrailingBlob is the raw, uninterpreted remainder of the declared
	// body size after the property list — spec §9's open question: the
	// codec preserves it verbatim without ascribing structure to it.
	TrailingBlob []byte
}

// SceneObject is one decoded entity or component, owned exclusively by its
// Level.
type SceneObject struct {
	Header Header
	Body   Body
}

// ErrBodyLengthMismatch signals that a body's declared size prefix did not
// match the bytes actually consumed reading it — usually a missing struct
// type in the property dispatcher.
type ErrBodyLengthMismatch struct {
	Index    int
	Expected int
	Observed int
}

func (e ErrBodyLengthMismatch) Error() string {
	return fmt.Sprintf("object body %d: declared size %d, consumed %d", e.Index, e.Expected, e.Observed)
}

// ErrHeaderBodyCountMismatch is returned when the header and body passes
// disagree on how many objects the level holds.
type ErrHeaderBodyCountMismatch struct {
	HeaderCount int
	BodyCount   int
}

func (e ErrHeaderBodyCountMismatch) Error() string {
	return fmt.Sprintf("object header count %d disagrees with body count %d", e.HeaderCount, e.BodyCount)
}

// ReadHeaders reads the level's first pass: a uint32 count, then that many
// variant-tagged headers.
func ReadHeaders(r *cursor.Reader) ([]Header, error) {
	count, err := r.Uint32()
	if err != nil {
		return nil, err
	}

	headers := make([]Header, count)
	for i := range headers {
		if headers[i], err = readHeader(r); err != nil {
			return nil, err
		}
	}
	return headers, nil
}

func readHeader(r *cursor.Reader) (Header, error) {
	var h Header
	kind, err := r.Uint32()
	if err != nil {
		return h, err
	}
	h.Kind = Kind(kind)

	if h.TypePath, err = r.String(); err != nil {
		return h, err
	}
	if h.RootObjectPath, err = r.String(); err != nil {
		return h, err
	}
	if h.InstanceName, err = r.String(); err != nil {
		return h, err
	}

	switch h.Kind {
	case KindComponent:
		if h.OuterObjectPath, err = r.String(); err != nil {
			return h, err
		}
	case KindEntity:
		needs, err := r.Uint32()
		if err != nil {
			return h, err
		}
		h.NeedsTransform = needs != 0

		if h.Transform, err = readTransformHeader(r); err != nil {
			return h, err
		}

		placed, err := r.Uint32()
		if err != nil {
			return h, err
		}
		h.WasPlacedInLevel = placed != 0
	default:
		return h, fmt.Errorf("object: unknown object header variant tag %d", kind)
	}

	return h, nil
}

func readTransformHeader(r *cursor.Reader) (TransformHeader, error) {
	var t TransformHeader
	var err error
	if t.HasRotation, err = r.Bool(); err != nil {
		return t, err
	}
	if t.HasRotation {
		for i := range t.Rotation {
			if t.Rotation[i], err = r.Float64(); err != nil {
				return t, err
			}
		}
	}
	if t.HasTranslation, err = r.Bool(); err != nil {
		return t, err
	}
	if t.HasTranslation {
		for i := range t.Translation {
			if t.Translation[i], err = r.Float64(); err != nil {
				return t, err
			}
		}
	}
	if t.HasScale3D, err = r.Bool(); err != nil {
		return t, err
	}
	if t.HasScale3D {
		for i := range t.Scale3D {
			if t.Scale3D[i], err = r.Float64(); err != nil {
				return t, err
			}
		}
	}
	return t, nil
}

func writeTransformHeader(w *cursor.Writer, t TransformHeader) {
	w.WriteBool(t.HasRotation)
	if t.HasRotation {
		for _, v := range t.Rotation {
			w.WriteFloat64(v)
		}
	}
	w.WriteBool(t.HasTranslation)
	if t.HasTranslation {
		for _, v := range t.Translation {
			w.WriteFloat64(v)
		}
	}
	w.WriteBool(t.HasScale3D)
	if t.HasScale3D {
		for _, v := range t.Scale3D {
			w.WriteFloat64(v)
		}
	}
}

// WriteHeaders writes the level's header pass.
func WriteHeaders(w *cursor.Writer, headers []Header) {
	w.WriteUint32(uint32(len(headers)))
	for _, h := range headers {
		writeHeader(w, h)
	}
}

func writeHeader(w *cursor.Writer, h Header) {
	w.WriteUint32(uint32(h.Kind))
	w.WriteString(h.TypePath)
	w.WriteString(h.RootObjectPath)
	w.WriteString(h.InstanceName)

	switch h.Kind {
	case KindComponent:
		w.WriteString(h.OuterObjectPath)
	case KindEntity:
		if h.NeedsTransform {
			w.WriteUint32(1)
		} else {
			w.WriteUint32(0)
		}
		writeTransformHeader(w, h.Transform)
		if h.WasPlacedInLevel {
			w.WriteUint32(1)
		} else {
			w.WriteUint32(0)
		}
	}
}

// ReadBodies reads the level's second pass: a uint32 count (which must
// equal the header count), then that many size-prefixed bodies. kinds is
// the per-index Kind recorded by ReadHeaders, since only entity bodies
// carry the parent/children section.
func ReadBodies(r *cursor.Reader, kinds []Kind, warn func(string)) ([]Body, error) {
	count, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	if int(count) != len(kinds) {
		return nil, ErrHeaderBodyCountMismatch{HeaderCount: len(kinds), BodyCount: int(count)}
	}

	bodies := make([]Body, count)
	for i := range bodies {
		declaredSize, err := r.Uint32()
		if err != nil {
			return nil, err
		}
		if _, err := r.Uint32(); err != nil { // declared offset index, unused by this codec
			return nil, err
		}

		start := r.Position()
		body, err := readBody(r, kinds[i], warn)
		if err != nil {
			return nil, err
		}
		consumed := r.Position() - start
		if consumed > int(declaredSize) {
			return nil, ErrBodyLengthMismatch{Index: i, Expected: int(declaredSize), Observed: consumed}
		}
		if consumed < int(declaredSize) {
			trailing, err := r.Bytes(int(declaredSize) - consumed)
			if err != nil {
				return nil, err
			}
			body.TrailingBlob = append([]byte(nil), trailing...)
		}
		if r.Position()-start != int(declaredSize) {
			return nil, ErrBodyLengthMismatch{Index: i, Expected: int(declaredSize), Observed: r.Position() - start}
		}

		bodies[i] = body
	}
	return bodies, nil
}

func readBody(r *cursor.Reader, kind Kind, warn func(string)) (Body, error) {
	var b Body
	var err error

	if kind == KindEntity {
		if b.HasParent, err = r.Bool(); err != nil {
			return b, err
		}
		if b.HasParent {
			if b.Parent, err = types.ReadObjectReference(r); err != nil {
				return b, err
			}
		}

		childCount, err := r.Uint32()
		if err != nil {
			return b, err
		}
		b.Children = make([]types.ObjectReference, childCount)
		for i := range b.Children {
			if b.Children[i], err = types.ReadObjectReference(r); err != nil {
				return b, err
			}
		}
	}

	if b.Properties, err = property.ReadList(r, warn); err != nil {
		return b, err
	}

	return b, nil
}

// WriteBodies writes the level's body pass. The per-body size/offset
// prefixes are computed from what each body actually serializes to.
func WriteBodies(w *cursor.Writer, kinds []Kind, bodies []Body) error {
	if len(kinds) != len(bodies) {
		return ErrHeaderBodyCountMismatch{HeaderCount: len(kinds), BodyCount: len(bodies)}
	}

	w.WriteUint32(uint32(len(bodies)))
	var offset uint32
	for i, body := range bodies {
		sizeOff := w.Reserve(4)
		w.WriteUint32(offset)

		start := w.Position()
		if err := writeBody(w, kinds[i], body); err != nil {
			return err
		}
		size := uint32(w.Position() - start)
		w.PatchUint32(sizeOff, size)
		offset += size
	}
	return nil
}

func writeBody(w *cursor.Writer, kind Kind, b Body) error {
	if kind == KindEntity {
		w.WriteBool(b.HasParent)
		if b.HasParent {
			types.WriteObjectReference(w, b.Parent)
		}
		w.WriteUint32(uint32(len(b.Children)))
		for _, c := range b.Children {
			types.WriteObjectReference(w, c)
		}
	}

	if err := property.WriteList(w, b.Properties); err != nil {
		return err
	}

	w.WriteBytes(b.TrailingBlob)
	return nil
}
