package property

import (
	"fmt"

	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
	"github.com/Sleavely/satisfactory-file-parser/internal/types"
)

// rawElementHeader is the once-emitted header that precedes a struct-typed
// array's concatenated element bodies (§4.4's Array row).
type rawElementHeader struct {
	Name       string
	StructName string
	StructGUID types.GUID
	GUID       types.GUIDInfo
}

// ArrayValue is an ArrayProperty: a homogeneous, ordered, possibly-empty
// list of raw element bodies of InnerType.
type ArrayValue struct {
	InnerType    string
	InnerGUID    types.GUIDInfo
	Elements     []Value
	StructHeader *rawElementHeader // set only when InnerType == StructProperty
}

func (ArrayValue) typeTag() string { return types.TagArrayProperty }

// SetValue is a SetProperty: the same raw-element shape as ArrayValue, with
// its own count/zero-prefix framing on the wire.
type SetValue struct {
	InnerType string
	InnerGUID types.GUIDInfo
	Elements  []Value
}

func (SetValue) typeTag() string { return types.TagSetProperty }

type containerCodec struct {
	tag string
}

func (c containerCodec) readHeader(r *cursor.Reader) (*header, error) {
	h := &header{}
	var err error
	if h.innerType, err = r.String(); err != nil {
		return nil, err
	}
	if h.innerGUID, err = types.ReadGUIDInfo(r); err != nil {
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

func (c containerCodec) writeHeader(w *cursor.Writer, v Value) error {
	var innerType string
	var innerGUID types.GUIDInfo
	switch val := v.(type) {
	case ArrayValue:
		innerType, innerGUID = val.InnerType, val.InnerGUID
	case SetValue:
		innerType, innerGUID = val.InnerType, val.InnerGUID
	default:
		return fmt.Errorf("property: containerCodec.writeHeader: unexpected value %T", v)
	}
	w.WriteString(innerType)
	types.WriteGUIDInfo(w, innerGUID)
	w.WriteUint8(0)
	return nil
}

func (c containerCodec) readBody(r *cursor.Reader, h *header, warn func(string)) (Value, error) {
	count, err := r.Uint32()
	if err != nil {
		return nil, err
	}

	if c.tag == types.TagSetProperty {
		if _, err := r.Int32(); err != nil { // zero prefix
			return nil, err
		}
		elements := make([]Value, count)
		ctx := propertyContext{PropertyName: h.propertyName}
		for i := range elements {
			if elements[i], err = readRawValue(r, h.innerType, ctx, warn); err != nil {
				return nil, err
			}
		}
		return SetValue{InnerType: h.innerType, InnerGUID: h.innerGUID, Elements: elements}, nil
	}

	av := ArrayValue{InnerType: h.innerType, InnerGUID: h.innerGUID}
	ctx := propertyContext{PropertyName: h.propertyName}

	if h.innerType == types.TagStructProperty {
		rh := &rawElementHeader{}
		if rh.Name, err = r.String(); err != nil {
			return nil, err
		}
		if rh.StructName, err = r.String(); err != nil {
			return nil, err
		}
		if _, err := r.Uint32(); err != nil { // declared struct-element size, unused: each element has no individual length check
			return nil, err
		}
		if _, err := r.Uint32(); err != nil { // array index, always 0
			return nil, err
		}
		if rh.StructGUID, err = types.ReadGUID(r); err != nil {
			return nil, err
		}
		if rh.GUID, err = types.ReadGUIDInfo(r); err != nil {
			return nil, err
		}
		av.StructHeader = rh

		ctx.StructName = rh.StructName
		av.Elements = make([]Value, count)
		for i := range av.Elements {
			payload, err := decodeStructPayload(r, ctx, warn)
			if err != nil {
				return nil, err
			}
			av.Elements[i] = StructValue{StructName: rh.StructName, StructGUID: rh.StructGUID, Payload: payload}
		}
		return av, nil
	}

	av.Elements = make([]Value, count)
	for i := range av.Elements {
		if av.Elements[i], err = readRawValue(r, h.innerType, ctx, warn); err != nil {
			return nil, err
		}
	}
	return av, nil
}

func (c containerCodec) writeBody(w *cursor.Writer, v Value) error {
	switch val := v.(type) {
	case SetValue:
		w.WriteUint32(uint32(len(val.Elements)))
		w.WriteInt32(0)
		for _, e := range val.Elements {
			if err := writeRawValue(w, e); err != nil {
				return err
			}
		}
		return nil
	case ArrayValue:
		w.WriteUint32(uint32(len(val.Elements)))
		if val.InnerType == types.TagStructProperty {
			rh := val.StructHeader
			if rh == nil {
				return fmt.Errorf("property: array of struct %q missing once-emitted element header", val.InnerType)
			}
			w.WriteString(rh.Name)
			w.WriteString(rh.StructName)
			sizeOff := w.Reserve(4)
			w.WriteUint32(0)
			types.WriteGUID(w, rh.StructGUID)
			types.WriteGUIDInfo(w, rh.GUID)

			bodyStart := w.Position()
			for _, e := range val.Elements {
				sv, ok := e.(StructValue)
				if !ok {
					return fmt.Errorf("property: array element is not a StructValue: %T", e)
				}
				if err := encodeStructPayload(w, sv.Payload); err != nil {
					return err
				}
			}
			w.PatchUint32(sizeOff, uint32(w.Position()-bodyStart))
			return nil
		}
		for _, e := range val.Elements {
			if err := writeRawValue(w, e); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("property: containerCodec.writeBody: unexpected value %T", v)
	}
}

////////////////////////////////////////////////////////////////
// MapProperty

type MapEntry struct {
	Key   Value
	Value Value
}

type MapValue struct {
	KeyType   string
	ValueType string
	GUID      types.GUIDInfo
	Entries   []MapEntry
}

func (MapValue) typeTag() string { return types.TagMapProperty }

type mapCodec struct{}

func (mapCodec) readHeader(r *cursor.Reader) (*header, error) {
	h := &header{}
	var err error
	if h.innerType, err = r.String(); err != nil {
		return nil, err
	}
	if h.innerType2, err = r.String(); err != nil {
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

func (mapCodec) writeHeader(w *cursor.Writer, v Value) error {
	mv := v.(MapValue)
	w.WriteString(mv.KeyType)
	w.WriteString(mv.ValueType)
	types.WriteGUIDInfo(w, mv.GUID)
	w.WriteUint8(0)
	return nil
}

func (mapCodec) readBody(r *cursor.Reader, h *header, warn func(string)) (Value, error) {
	if _, err := r.Int32(); err != nil { // zero prefix
		return nil, err
	}
	count, err := r.Uint32()
	if err != nil {
		return nil, err
	}

	ctx := propertyContext{PropertyName: h.propertyName}
	entries := make([]MapEntry, count)
	for i := range entries {
		if entries[i].Key, err = readRawValue(r, h.innerType, ctx, warn); err != nil {
			return nil, err
		}
		if entries[i].Value, err = readRawValue(r, h.innerType2, ctx, warn); err != nil {
			return nil, err
		}
	}

	return MapValue{KeyType: h.innerType, ValueType: h.innerType2, GUID: h.guid, Entries: entries}, nil
}

func (mapCodec) writeBody(w *cursor.Writer, v Value) error {
	mv := v.(MapValue)
	w.WriteInt32(0)
	w.WriteUint32(uint32(len(mv.Entries)))
	for _, e := range mv.Entries {
		if err := writeRawValue(w, e.Key); err != nil {
			return err
		}
		if err := writeRawValue(w, e.Value); err != nil {
			return err
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////
// raw element codec: container elements have no name/length/arrayIndex
// wrapper and no per-element GUIDInfo — just the value's body, typed by
// the container's own inner-type discriminator(s).

func readRawValue(r *cursor.Reader, tag string, ctx propertyContext, warn func(string)) (Value, error) {
	switch tag {
	case types.TagBoolProperty:
		v, err := r.Uint8()
		return BoolValue{Value: v != 0}, err
	case types.TagInt8Property:
		v, err := r.Int8()
		return Int8Value{Value: v}, err
	case types.TagInt32Property:
		v, err := r.Int32()
		return Int32Value{Value: v}, err
	case types.TagInt64Property:
		v, err := r.Int64()
		return Int64Value{Value: v}, err
	case types.TagUInt32Property:
		v, err := r.Uint32()
		return UInt32Value{Value: v}, err
	case types.TagUInt64Property:
		v, err := r.Uint64()
		return UInt64Value{Value: v}, err
	case types.TagFloatProperty:
		v, err := r.Float32()
		return FloatValue{Value: v}, err
	case types.TagDoubleProperty:
		v, err := r.Float64()
		return DoubleValue{Value: v}, err
	case types.TagStrProperty:
		v, err := r.String()
		return StrValue{Value: v}, err
	case types.TagNameProperty:
		v, err := r.String()
		return NameValue{Value: v}, err
	case types.TagObjectProperty:
		v, err := types.ReadObjectReference(r)
		return ObjectValue{Value: v}, err
	case types.TagUInt8Property:
		v, err := r.Uint8()
		return ByteValue{EnumName: "None", Byte: v}, err
	case types.TagEnumProperty:
		v, err := r.String()
		return EnumValue{Value: v}, err
	case types.TagStructProperty:
		payload, err := decodeStructPayload(r, ctx, warn)
		if err != nil {
			return nil, err
		}
		return StructValue{StructName: ctx.StructName, Payload: payload}, nil
	default:
		return nil, ErrUnknownTypeTag{Tag: tag}
	}
}

func writeRawValue(w *cursor.Writer, v Value) error {
	switch val := v.(type) {
	case BoolValue:
		if val.Value {
			w.WriteUint8(1)
		} else {
			w.WriteUint8(0)
		}
	case Int8Value:
		w.WriteInt8(val.Value)
	case Int32Value:
		w.WriteInt32(val.Value)
	case Int64Value:
		w.WriteInt64(val.Value)
	case UInt32Value:
		w.WriteUint32(val.Value)
	case UInt64Value:
		w.WriteUint64(val.Value)
	case FloatValue:
		w.WriteFloat32(val.Value)
	case DoubleValue:
		w.WriteFloat64(val.Value)
	case StrValue:
		w.WriteString(val.Value)
	case NameValue:
		w.WriteString(val.Value)
	case ObjectValue:
		types.WriteObjectReference(w, val.Value)
	case ByteValue:
		w.WriteUint8(val.Byte)
	case EnumValue:
		w.WriteString(val.Value)
	case StructValue:
		return encodeStructPayload(w, val.Payload)
	default:
		return fmt.Errorf("property: writeRawValue: unexpected value %T", v)
	}
	return nil
}
