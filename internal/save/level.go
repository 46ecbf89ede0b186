package save

import (
	"fmt"

	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
	"github.com/Sleavely/satisfactory-file-parser/internal/object"
	"github.com/Sleavely/satisfactory-file-parser/internal/types"
)

// Level is one named level's full complement of scene objects plus the
// collectable references the game tracks alongside them. The last level in
// a Save's level list is the persistent level, named by the save header's
// MapName rather than carrying its own name on disk.
type Level struct {
	Name         string
	Objects      []object.SceneObject
	Collectables []types.ObjectReference

	// TrailingBlobSize is the level's byte count declared on disk, covering
	// everything from the object headers through the trailing blob. This
	// codec has no interpretation for what follows the object bodies beyond
	// preserving it verbatim as TrailingBlob, so levels are read to exactly
	// this many declared bytes and no further.
	TrailingBlobSize uint32
	TrailingBlob     []byte
}

// ErrLevelCountMismatch describes a header-declared level count that
// disagrees with how many levels were actually read. ReadLevelList always
// reads exactly the declared n+1 levels and does not return it.
type ErrLevelCountMismatch struct {
	Declared int
	Actual   int
}

func (e ErrLevelCountMismatch) Error() string {
	return fmt.Sprintf("level list declared %d levels, read %d", e.Declared, e.Actual)
}

// ReadLevelList reads the level list: a uint32 n, then n+1 levels, the last
// of which is the persistent level (named persistentLevelName, taken from
// the save header's MapName rather than read from disk).
func ReadLevelList(r *cursor.Reader, persistentLevelName string, warn func(string)) ([]Level, error) {
	n, err := r.Uint32()
	if err != nil {
		return nil, err
	}

	levels := make([]Level, n+1)
	for i := range levels {
		name := persistentLevelName
		if i < int(n) {
			if name, err = r.String(); err != nil {
				return nil, err
			}
		}
		lvl, err := readLevel(r, name, warn)
		if err != nil {
			return nil, err
		}
		levels[i] = lvl
	}

	return levels, nil
}

func readLevel(r *cursor.Reader, name string, warn func(string)) (Level, error) {
	lvl := Level{Name: name}

	declaredSize, err := r.Uint32()
	if err != nil {
		return lvl, err
	}
	lvl.TrailingBlobSize = declaredSize
	start := r.Position()

	headers, err := object.ReadHeaders(r)
	if err != nil {
		return lvl, err
	}
	kinds := make([]object.Kind, len(headers))
	for i, h := range headers {
		kinds[i] = h.Kind
	}

	collectableCount, err := r.Uint32()
	if err != nil {
		return lvl, err
	}
	lvl.Collectables = make([]types.ObjectReference, collectableCount)
	for i := range lvl.Collectables {
		if lvl.Collectables[i], err = types.ReadObjectReference(r); err != nil {
			return lvl, err
		}
	}

	bodies, err := object.ReadBodies(r, kinds, warn)
	if err != nil {
		return lvl, err
	}

	lvl.Objects = make([]object.SceneObject, len(headers))
	for i := range lvl.Objects {
		lvl.Objects[i] = object.SceneObject{Header: headers[i], Body: bodies[i]}
	}

	consumed := r.Position() - start
	if consumed > int(declaredSize) {
		return lvl, fmt.Errorf("save: level %q declared %d bytes, consumed %d", name, declaredSize, consumed)
	}
	if consumed < int(declaredSize) {
		blob, err := r.Bytes(int(declaredSize) - consumed)
		if err != nil {
			return lvl, err
		}
		lvl.TrailingBlob = append([]byte(nil), blob...)
	}

	return lvl, nil
}

// WriteLevelList writes the level list in the shape ReadLevelList consumed.
// The persistent level (last entry) is written without its name, matching
// the header-carried convention on read.
func WriteLevelList(w *cursor.Writer, levels []Level) error {
	if len(levels) == 0 {
		return fmt.Errorf("save: level list must contain at least the persistent level")
	}
	n := len(levels) - 1
	w.WriteUint32(uint32(n))

	for i, lvl := range levels {
		if i < n {
			w.WriteString(lvl.Name)
		}
		if err := writeLevel(w, lvl); err != nil {
			return err
		}
	}
	return nil
}

func writeLevel(w *cursor.Writer, lvl Level) error {
	sizeOff := w.Reserve(4)
	start := w.Position()

	headers := make([]object.Header, len(lvl.Objects))
	kinds := make([]object.Kind, len(lvl.Objects))
	bodies := make([]object.Body, len(lvl.Objects))
	for i, o := range lvl.Objects {
		headers[i] = o.Header
		kinds[i] = o.Header.Kind
		bodies[i] = o.Body
	}

	object.WriteHeaders(w, headers)

	w.WriteUint32(uint32(len(lvl.Collectables)))
	for _, c := range lvl.Collectables {
		types.WriteObjectReference(w, c)
	}

	if err := object.WriteBodies(w, kinds, bodies); err != nil {
		return err
	}

	w.WriteBytes(lvl.TrailingBlob)

	w.PatchUint32(sizeOff, uint32(w.Position()-start))
	return nil
}
