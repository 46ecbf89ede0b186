package property

import (
	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
	"github.com/Sleavely/satisfactory-file-parser/internal/types"
)

// Value is the payload carried by a Property. Each concrete implementation
// corresponds to exactly one property type tag.
type Value interface {
	typeTag() string
}

// typeCodec is the (decode, encode) pair the registry keys by type-tag
// string — the "TypeRegistry" of spec §3/§4.5, made concrete.
type typeCodec interface {
	// readHeader reads everything between the property's ArrayIndex field
	// and its payload body: container/struct/enum discriminators, the
	// GUIDInfo where the format carries one, and the fixed terminator byte
	// (or, for BoolProperty, the boolean value that occupies that byte's
	// position instead).
	readHeader(r *cursor.Reader) (*header, error)
	// writeHeader writes the same, reading whatever fields it needs
	// (GUIDInfo, inner type tags, the bool value itself) off v.
	writeHeader(w *cursor.Writer, v Value) error
	readBody(r *cursor.Reader, h *header, warn func(string)) (Value, error)
	writeBody(w *cursor.Writer, v Value) error
}

// header carries the fields every typeCodec's readHeader might populate;
// each codec only reads/sets the subset its type tag defines (see §4.4).
type header struct {
	guid       types.GUIDInfo
	innerType  string
	innerType2 string
	innerGUID  types.GUIDInfo
	enumName   string
	structName string
	structGUID types.GUID
	boolValue  bool
	// propertyName is set by property.go after readHeader returns, from
	// the owning Property's own name. It is not part of the wire format;
	// struct decoding uses it to look up a precision hint.
	propertyName string
}

var registry map[string]typeCodec

func init() {
	registry = map[string]typeCodec{
		types.TagBoolProperty:       boolCodec{},
		types.TagInt8Property:       scalarCodec{tag: types.TagInt8Property},
		types.TagInt32Property:      scalarCodec{tag: types.TagInt32Property},
		types.TagInt64Property:      scalarCodec{tag: types.TagInt64Property},
		types.TagUInt32Property:     scalarCodec{tag: types.TagUInt32Property},
		types.TagUInt64Property:     scalarCodec{tag: types.TagUInt64Property},
		types.TagFloatProperty:      scalarCodec{tag: types.TagFloatProperty},
		types.TagDoubleProperty:     scalarCodec{tag: types.TagDoubleProperty},
		types.TagStrProperty:        scalarCodec{tag: types.TagStrProperty},
		types.TagNameProperty:       scalarCodec{tag: types.TagNameProperty},
		types.TagObjectProperty:     scalarCodec{tag: types.TagObjectProperty},
		types.TagSoftObjectProperty: scalarCodec{tag: types.TagSoftObjectProperty},
		types.TagTextProperty:       scalarCodec{tag: types.TagTextProperty},
		types.TagUInt8Property:      byteCodec{},
		types.TagEnumProperty:       enumCodec{},
		types.TagArrayProperty:      containerCodec{tag: types.TagArrayProperty},
		types.TagSetProperty:        containerCodec{tag: types.TagSetProperty},
		types.TagMapProperty:        mapCodec{},
		types.TagStructProperty:     structCodec{},
	}
}

////////////////////////////////////////////////////////////////
// scalar values

type BoolValue struct {
	GUID  types.GUIDInfo
	Value bool
}

func (BoolValue) typeTag() string { return types.TagBoolProperty }

type Int8Value struct {
	GUID  types.GUIDInfo
	Value int8
}

func (Int8Value) typeTag() string { return types.TagInt8Property }

type Int32Value struct {
	GUID  types.GUIDInfo
	Value int32
}

func (Int32Value) typeTag() string { return types.TagInt32Property }

// Int64Value carries a 64-bit signed integer exactly; it is never coerced
// through a floating-point intermediate, so values up to and including
// math.MaxInt64 round-trip and stringify bit-for-bit.
type Int64Value struct {
	GUID  types.GUIDInfo
	Value int64
}

func (Int64Value) typeTag() string { return types.TagInt64Property }

type UInt32Value struct {
	GUID  types.GUIDInfo
	Value uint32
}

func (UInt32Value) typeTag() string { return types.TagUInt32Property }

// UInt64Value carries a 64-bit unsigned integer exactly, including values
// that exceed float64's safe integer range.
type UInt64Value struct {
	GUID  types.GUIDInfo
	Value uint64
}

func (UInt64Value) typeTag() string { return types.TagUInt64Property }

// FloatValue preserves its bit pattern exactly, including the sign of zero
// and any NaN payload — it is never routed through a text form.
type FloatValue struct {
	GUID  types.GUIDInfo
	Value float32
}

func (FloatValue) typeTag() string { return types.TagFloatProperty }

// DoubleValue preserves its bit pattern exactly, the same way FloatValue
// does for its narrower width.
type DoubleValue struct {
	GUID  types.GUIDInfo
	Value float64
}

func (DoubleValue) typeTag() string { return types.TagDoubleProperty }

type StrValue struct {
	GUID  types.GUIDInfo
	Value string
}

func (StrValue) typeTag() string { return types.TagStrProperty }

type NameValue struct {
	GUID  types.GUIDInfo
	Value string
}

func (NameValue) typeTag() string { return types.TagNameProperty }

type ObjectValue struct {
	GUID  types.GUIDInfo
	Value types.ObjectReference
}

func (ObjectValue) typeTag() string { return types.TagObjectProperty }

type SoftObjectValue struct {
	GUID  types.GUIDInfo
	Value types.ObjectReference
	Extra int32
}

func (SoftObjectValue) typeTag() string { return types.TagSoftObjectProperty }

// boolCodec is BoolProperty's special case: the byte that every other
// property type spends on a fixed zero terminator instead carries the
// actual boolean value here, and the body is empty.
type boolCodec struct{}

func (boolCodec) readHeader(r *cursor.Reader) (*header, error) {
	h := &header{}
	var err error
	if h.guid, err = types.ReadGUIDInfo(r); err != nil {
		return nil, err
	}
	v, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	h.boolValue = v != 0
	return h, nil
}

func (boolCodec) writeHeader(w *cursor.Writer, v Value) error {
	bv := v.(BoolValue)
	types.WriteGUIDInfo(w, bv.GUID)
	if bv.Value {
		w.WriteUint8(1)
	} else {
		w.WriteUint8(0)
	}
	return nil
}

func (boolCodec) readBody(r *cursor.Reader, h *header, warn func(string)) (Value, error) {
	return BoolValue{GUID: h.guid, Value: h.boolValue}, nil
}

func (boolCodec) writeBody(w *cursor.Writer, v Value) error { return nil }

// scalarCodec handles every property type whose header is "GUIDInfo only"
// and whose body is a single self-contained value (§4.4's scalar row).
type scalarCodec struct {
	tag string
}

func (c scalarCodec) readHeader(r *cursor.Reader) (*header, error) {
	h := &header{}
	var err error
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

func (c scalarCodec) writeHeader(w *cursor.Writer, v Value) error {
	types.WriteGUIDInfo(w, guidOf(v))
	w.WriteUint8(0)
	return nil
}

func guidOf(v Value) types.GUIDInfo {
	switch val := v.(type) {
	case Int8Value:
		return val.GUID
	case Int32Value:
		return val.GUID
	case Int64Value:
		return val.GUID
	case UInt32Value:
		return val.GUID
	case UInt64Value:
		return val.GUID
	case FloatValue:
		return val.GUID
	case DoubleValue:
		return val.GUID
	case StrValue:
		return val.GUID
	case NameValue:
		return val.GUID
	case ObjectValue:
		return val.GUID
	case SoftObjectValue:
		return val.GUID
	case TextValue:
		return val.GUID
	default:
		return types.GUIDInfo{}
	}
}

func (c scalarCodec) readBody(r *cursor.Reader, h *header, warn func(string)) (Value, error) {
	switch c.tag {
	case types.TagInt8Property:
		v, err := r.Int8()
		return Int8Value{GUID: h.guid, Value: v}, err
	case types.TagInt32Property:
		v, err := r.Int32()
		return Int32Value{GUID: h.guid, Value: v}, err
	case types.TagInt64Property:
		v, err := r.Int64()
		return Int64Value{GUID: h.guid, Value: v}, err
	case types.TagUInt32Property:
		v, err := r.Uint32()
		return UInt32Value{GUID: h.guid, Value: v}, err
	case types.TagUInt64Property:
		v, err := r.Uint64()
		return UInt64Value{GUID: h.guid, Value: v}, err
	case types.TagFloatProperty:
		v, err := r.Float32()
		return FloatValue{GUID: h.guid, Value: v}, err
	case types.TagDoubleProperty:
		v, err := r.Float64()
		return DoubleValue{GUID: h.guid, Value: v}, err
	case types.TagStrProperty:
		v, err := r.String()
		return StrValue{GUID: h.guid, Value: v}, err
	case types.TagNameProperty:
		v, err := r.String()
		return NameValue{GUID: h.guid, Value: v}, err
	case types.TagObjectProperty:
		v, err := types.ReadObjectReference(r)
		return ObjectValue{GUID: h.guid, Value: v}, err
	case types.TagSoftObjectProperty:
		ref, err := types.ReadObjectReference(r)
		if err != nil {
			return nil, err
		}
		extra, err := r.Int32()
		return SoftObjectValue{GUID: h.guid, Value: ref, Extra: extra}, err
	case types.TagTextProperty:
		return readText(r, h.guid, warn)
	default:
		return nil, ErrUnknownTypeTag{Tag: c.tag}
	}
}

func (c scalarCodec) writeBody(w *cursor.Writer, v Value) error {
	switch val := v.(type) {
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
	case SoftObjectValue:
		types.WriteObjectReference(w, val.Value)
		w.WriteInt32(val.Extra)
	case TextValue:
		writeText(w, val)
	default:
		return ErrUnknownTypeTag{Tag: c.tag}
	}
	return nil
}

////////////////////////////////////////////////////////////////
// ByteProperty: either a raw byte, or (enum-name != "None") a length-
// prefixed enum-value string.

type ByteValue struct {
	EnumName  string
	Byte      uint8
	EnumValue string
}

func (ByteValue) typeTag() string { return types.TagUInt8Property }

// IsEnum reports whether this ByteProperty carries an enum value string
// rather than a raw byte.
func (b ByteValue) IsEnum() bool { return b.EnumName != "None" && b.EnumName != "" }

type byteCodec struct{}

func (byteCodec) readHeader(r *cursor.Reader) (*header, error) {
	h := &header{}
	var err error
	if h.enumName, err = r.String(); err != nil {
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

func (byteCodec) writeHeader(w *cursor.Writer, v Value) error {
	bv := v.(ByteValue)
	name := bv.EnumName
	if name == "" {
		name = "None"
	}
	w.WriteString(name)
	w.WriteUint8(0)
	return nil
}

func (byteCodec) readBody(r *cursor.Reader, h *header, warn func(string)) (Value, error) {
	bv := ByteValue{EnumName: h.enumName}
	if bv.IsEnum() {
		v, err := r.String()
		if err != nil {
			return nil, err
		}
		bv.EnumValue = v
		return bv, nil
	}
	v, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	bv.Byte = v
	return bv, nil
}

func (byteCodec) writeBody(w *cursor.Writer, v Value) error {
	bv := v.(ByteValue)
	if bv.IsEnum() {
		w.WriteString(bv.EnumValue)
	} else {
		w.WriteUint8(bv.Byte)
	}
	return nil
}

////////////////////////////////////////////////////////////////
// EnumProperty: enum-type string header, enum-value string body.

type EnumValue struct {
	EnumType string
	Value    string
}

func (EnumValue) typeTag() string { return types.TagEnumProperty }

type enumCodec struct{}

func (enumCodec) readHeader(r *cursor.Reader) (*header, error) {
	h := &header{}
	var err error
	if h.enumName, err = r.String(); err != nil {
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

func (enumCodec) writeHeader(w *cursor.Writer, v Value) error {
	w.WriteString(v.(EnumValue).EnumType)
	w.WriteUint8(0)
	return nil
}

func (enumCodec) readBody(r *cursor.Reader, h *header, warn func(string)) (Value, error) {
	v, err := r.String()
	if err != nil {
		return nil, err
	}
	return EnumValue{EnumType: h.enumName, Value: v}, nil
}

func (enumCodec) writeBody(w *cursor.Writer, v Value) error {
	w.WriteString(v.(EnumValue).Value)
	return nil
}
