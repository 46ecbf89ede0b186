package property

import (
	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
	"github.com/Sleavely/satisfactory-file-parser/internal/types"
)

// StructValue is a StructProperty: a struct-name plus a payload whose shape
// depends on that name via the struct registry (§4.5).
type StructValue struct {
	GUID       types.GUIDInfo
	StructName string
	StructGUID types.GUID
	Payload    StructPayload
	// PropertyName is threaded through from the owning Property so the
	// precision-hint table can be consulted while decoding/encoding
	// vector-family payloads; it is not itself part of the wire format.
	PropertyName string
}

func (StructValue) typeTag() string { return types.TagStructProperty }

type structCodec struct{}

func (structCodec) readHeader(r *cursor.Reader) (*header, error) {
	h := &header{}
	var err error
	if h.structName, err = r.String(); err != nil {
		return nil, err
	}
	if h.structGUID, err = types.ReadGUID(r); err != nil {
		return nil, err
	}
	if h.guid, err = types.ReadGUIDInfo(r); err != nil {
		return nil, err
	}
	term, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	if term != 0 {
		return nil, ErrTerminatorByte{Value: term}
	}
	return h, nil
}

func (structCodec) writeHeader(w *cursor.Writer, v Value) error {
	sv := v.(StructValue)
	w.WriteString(sv.StructName)
	types.WriteGUID(w, sv.StructGUID)
	types.WriteGUIDInfo(w, sv.GUID)
	w.WriteUint8(0)
	return nil
}

func (structCodec) readBody(r *cursor.Reader, h *header, warn func(string)) (Value, error) {
	ctx := propertyContext{StructName: h.structName, PropertyName: h.propertyName}
	payload, err := decodeStructPayload(r, ctx, warn)
	if err != nil {
		return nil, err
	}
	return StructValue{
		GUID:         h.guid,
		StructName:   h.structName,
		StructGUID:   h.structGUID,
		Payload:      payload,
		PropertyName: h.propertyName,
	}, nil
}

func (structCodec) writeBody(w *cursor.Writer, v Value) error {
	sv := v.(StructValue)
	return encodeStructPayload(w, sv.Payload)
}
