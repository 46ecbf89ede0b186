package property

import (
	"fmt"
	"strconv"

	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
	"github.com/Sleavely/satisfactory-file-parser/internal/types"
)

// StructPayload is the tagged-variant payload of a StructProperty /
// struct-typed array-container element. Unknown struct-type strings resolve
// to GenericStructPayload — the escape hatch that lets the codec round-trip
// new struct kinds without a code change (§4.5).
type StructPayload interface {
	structName() string
}

// structDispatch is the (decode, encode) pair the struct-type string is
// looked up against, per spec §4.5. Unlisted struct names fall through to
// the generic property-list decoder in decodeStructPayload/encodeStructPayload.
type structDispatch struct {
	decode func(r *cursor.Reader, owner propertyContext, warn func(string)) (StructPayload, error)
	encode func(w *cursor.Writer, p StructPayload) error
}

// propertyContext carries the information a struct decoder needs beyond its
// own bytes: the owning property's name, used to look up a precision hint
// for vector-family structs.
type propertyContext struct {
	StructName   string
	PropertyName string
}

var structRegistry map[string]structDispatch

func init() {
	structRegistry = map[string]structDispatch{
		types.StructVector:               {decodeVector, encodeVector},
		types.StructVector2D:             {decodeVector2D, encodeVector2D},
		types.StructVector4:              {decodeVector4, encodeVector4},
		types.StructQuat:                 {decodeQuat, encodeQuat},
		types.StructRotator:              {decodeRotator, encodeRotator},
		types.StructColor:                {decodeColor, encodeColor},
		types.StructLinearColor:          {decodeLinearColor, encodeLinearColor},
		types.StructTransform:            {decodeTransform, encodeTransform},
		types.StructBox:                  {decodeBox, encodeBox},
		types.StructIntPoint:             {decodeIntPoint, encodeIntPoint},
		types.StructIntVector:            {decodeIntVector, encodeIntVector},
		types.StructDateTime:             {decodeDateTime, encodeDateTime},
		types.StructGuid:                 {decodeGuidStruct, encodeGuidStruct},
		types.StructFluidBox:             {decodeFluidBox, encodeFluidBox},
		types.StructRailroadTrackPosition: {decodeRailroadTrackPosition, encodeRailroadTrackPosition},
		types.StructInventoryItem:        {decodeInventoryItem, encodeInventoryItem},
		types.StructClientIdentityInfo:   {decodeClientIdentityInfo, encodeClientIdentityInfo},
		types.StructScannableResourcePair: {decodeScannableResourcePair, encodeScannableResourcePair},
		types.StructFICFrameRange:        {decodeFICFrameRange, encodeFICFrameRange},
		types.StructSpawnData:            {decodeSpawnData, encodeSpawnData},
		types.StructPhaseCost:            {decodePhaseCost, encodePhaseCost},
	}
}

// decodeStructPayload dispatches on ctx.StructName, falling through to the
// generic property-list decoder for any name not in structRegistry. warn is
// invoked with a description of the fallback so callers can detect
// forward-compatibility gaps (mirrors FormatModel.Warnings in the teacher).
func decodeStructPayload(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	if dispatch, ok := structRegistry[ctx.StructName]; ok {
		return dispatch.decode(r, ctx, warn)
	}
	if warn != nil {
		warn(fmt.Sprintf("unknown struct type %q, decoding as generic property list", ctx.StructName))
	}
	return decodeGenericStruct(r, ctx.StructName, warn)
}

func encodeStructPayload(w *cursor.Writer, p StructPayload) error {
	if dispatch, ok := structRegistry[p.structName()]; ok {
		return dispatch.encode(w, p)
	}
	generic, ok := p.(GenericStructPayload)
	if !ok {
		return fmt.Errorf("property: struct payload %T has no encoder for type %q", p, p.structName())
	}
	return encodeGenericStruct(w, generic)
}

////////////////////////////////////////////////////////////////
// GenericStructPayload: the escape hatch for unrecognized struct names.

type GenericStructPayload struct {
	Name       string
	Properties List
}

func (p GenericStructPayload) structName() string { return p.Name }

func decodeGenericStruct(r *cursor.Reader, name string, warn func(string)) (StructPayload, error) {
	list, err := ReadList(r, warn)
	if err != nil {
		return nil, err
	}
	return GenericStructPayload{Name: name, Properties: list}, nil
}

func encodeGenericStruct(w *cursor.Writer, p GenericStructPayload) error {
	return WriteList(w, p.Properties)
}

////////////////////////////////////////////////////////////////
// Vector family

func precisionWidth(ctx propertyContext, defaultWidth types.PrecisionWidth) types.PrecisionWidth {
	if w, ok := types.PrecisionHint(ctx.StructName, ctx.PropertyName); ok {
		return w
	}
	return defaultWidth
}

func readComponent(r *cursor.Reader, width types.PrecisionWidth) (float64, error) {
	if width == types.PrecisionFloat {
		v, err := r.Float32()
		return float64(v), err
	}
	v, err := r.Float64()
	return v, err
}

func writeComponent(w *cursor.Writer, width types.PrecisionWidth, v float64) {
	if width == types.PrecisionFloat {
		w.WriteFloat32(float32(v))
		return
	}
	w.WriteFloat64(v)
}

// VectorPayload holds a 3-component vector, stored as either 4- or 8-byte
// components per the struct×property precision hint table.
type VectorPayload struct {
	X, Y, Z float64
	Width   types.PrecisionWidth
}

func (VectorPayload) structName() string { return types.StructVector }

func decodeVector(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	width := precisionWidth(ctx, types.PrecisionDouble)
	var p VectorPayload
	p.Width = width
	var err error
	if p.X, err = readComponent(r, width); err != nil {
		return nil, err
	}
	if p.Y, err = readComponent(r, width); err != nil {
		return nil, err
	}
	if p.Z, err = readComponent(r, width); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeVector(w *cursor.Writer, payload StructPayload) error {
	p := payload.(VectorPayload)
	writeComponent(w, p.Width, p.X)
	writeComponent(w, p.Width, p.Y)
	writeComponent(w, p.Width, p.Z)
	return nil
}

// Vector2DPayload holds a 2-component vector.
type Vector2DPayload struct {
	X, Y  float64
	Width types.PrecisionWidth
}

func (Vector2DPayload) structName() string { return types.StructVector2D }

func decodeVector2D(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	width := precisionWidth(ctx, types.PrecisionDouble)
	var p Vector2DPayload
	p.Width = width
	var err error
	if p.X, err = readComponent(r, width); err != nil {
		return nil, err
	}
	if p.Y, err = readComponent(r, width); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeVector2D(w *cursor.Writer, payload StructPayload) error {
	p := payload.(Vector2DPayload)
	writeComponent(w, p.Width, p.X)
	writeComponent(w, p.Width, p.Y)
	return nil
}

// Vector4Payload holds a 4-component vector.
type Vector4Payload struct {
	X, Y, Z, W float64
	Width      types.PrecisionWidth
}

func (Vector4Payload) structName() string { return types.StructVector4 }

func decodeVector4(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	width := precisionWidth(ctx, types.PrecisionDouble)
	var p Vector4Payload
	p.Width = width
	var err error
	if p.X, err = readComponent(r, width); err != nil {
		return nil, err
	}
	if p.Y, err = readComponent(r, width); err != nil {
		return nil, err
	}
	if p.Z, err = readComponent(r, width); err != nil {
		return nil, err
	}
	if p.W, err = readComponent(r, width); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeVector4(w *cursor.Writer, payload StructPayload) error {
	p := payload.(Vector4Payload)
	writeComponent(w, p.Width, p.X)
	writeComponent(w, p.Width, p.Y)
	writeComponent(w, p.Width, p.Z)
	writeComponent(w, p.Width, p.W)
	return nil
}

// QuatPayload holds a rotation quaternion.
type QuatPayload struct {
	X, Y, Z, W float64
	Width      types.PrecisionWidth
}

func (QuatPayload) structName() string { return types.StructQuat }

func decodeQuat(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	width := precisionWidth(ctx, types.PrecisionDouble)
	var p QuatPayload
	p.Width = width
	var err error
	if p.X, err = readComponent(r, width); err != nil {
		return nil, err
	}
	if p.Y, err = readComponent(r, width); err != nil {
		return nil, err
	}
	if p.Z, err = readComponent(r, width); err != nil {
		return nil, err
	}
	if p.W, err = readComponent(r, width); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeQuat(w *cursor.Writer, payload StructPayload) error {
	p := payload.(QuatPayload)
	writeComponent(w, p.Width, p.X)
	writeComponent(w, p.Width, p.Y)
	writeComponent(w, p.Width, p.Z)
	writeComponent(w, p.Width, p.W)
	return nil
}

// RotatorPayload holds pitch/yaw/roll, stored as 3 doubles by default.
type RotatorPayload struct {
	Pitch, Yaw, Roll float64
	Width            types.PrecisionWidth
}

func (RotatorPayload) structName() string { return types.StructRotator }

func decodeRotator(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	width := precisionWidth(ctx, types.PrecisionDouble)
	var p RotatorPayload
	p.Width = width
	var err error
	if p.Pitch, err = readComponent(r, width); err != nil {
		return nil, err
	}
	if p.Yaw, err = readComponent(r, width); err != nil {
		return nil, err
	}
	if p.Roll, err = readComponent(r, width); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeRotator(w *cursor.Writer, payload StructPayload) error {
	p := payload.(RotatorPayload)
	writeComponent(w, p.Width, p.Pitch)
	writeComponent(w, p.Width, p.Yaw)
	writeComponent(w, p.Width, p.Roll)
	return nil
}

////////////////////////////////////////////////////////////////
// Color family

// ColorPayload holds a BGRA byte color (FColor).
type ColorPayload struct {
	B, G, R, A byte
}

func (ColorPayload) structName() string { return types.StructColor }

func decodeColor(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	var p ColorPayload
	var err error
	if p.B, err = r.Uint8(); err != nil {
		return nil, err
	}
	if p.G, err = r.Uint8(); err != nil {
		return nil, err
	}
	if p.R, err = r.Uint8(); err != nil {
		return nil, err
	}
	if p.A, err = r.Uint8(); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeColor(w *cursor.Writer, payload StructPayload) error {
	p := payload.(ColorPayload)
	w.WriteUint8(p.B)
	w.WriteUint8(p.G)
	w.WriteUint8(p.R)
	w.WriteUint8(p.A)
	return nil
}

// LinearColorPayload holds an RGBA float color (FLinearColor).
type LinearColorPayload struct {
	R, G, B, A float32
}

func (LinearColorPayload) structName() string { return types.StructLinearColor }

func decodeLinearColor(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	var p LinearColorPayload
	var err error
	if p.R, err = r.Float32(); err != nil {
		return nil, err
	}
	if p.G, err = r.Float32(); err != nil {
		return nil, err
	}
	if p.B, err = r.Float32(); err != nil {
		return nil, err
	}
	if p.A, err = r.Float32(); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeLinearColor(w *cursor.Writer, payload StructPayload) error {
	p := payload.(LinearColorPayload)
	w.WriteFloat32(p.R)
	w.WriteFloat32(p.G)
	w.WriteFloat32(p.B)
	w.WriteFloat32(p.A)
	return nil
}

////////////////////////////////////////////////////////////////
// Transform: each component gated by a leading flag byte.

type TransformPayload struct {
	HasRotation    bool
	Rotation       QuatPayload
	HasTranslation bool
	Translation    VectorPayload
	HasScale3D     bool
	Scale3D        VectorPayload
}

func (TransformPayload) structName() string { return types.StructTransform }

func decodeTransform(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	var p TransformPayload
	var err error

	if p.HasRotation, err = r.Bool(); err != nil {
		return nil, err
	}
	if p.HasRotation {
		payload, err := decodeQuat(r, ctx, warn)
		if err != nil {
			return nil, err
		}
		p.Rotation = payload.(QuatPayload)
	}

	if p.HasTranslation, err = r.Bool(); err != nil {
		return nil, err
	}
	if p.HasTranslation {
		payload, err := decodeVector(r, ctx, warn)
		if err != nil {
			return nil, err
		}
		p.Translation = payload.(VectorPayload)
	}

	if p.HasScale3D, err = r.Bool(); err != nil {
		return nil, err
	}
	if p.HasScale3D {
		payload, err := decodeVector(r, ctx, warn)
		if err != nil {
			return nil, err
		}
		p.Scale3D = payload.(VectorPayload)
	}

	return p, nil
}

func encodeTransform(w *cursor.Writer, payload StructPayload) error {
	p := payload.(TransformPayload)
	w.WriteBool(p.HasRotation)
	if p.HasRotation {
		if err := encodeQuat(w, p.Rotation); err != nil {
			return err
		}
	}
	w.WriteBool(p.HasTranslation)
	if p.HasTranslation {
		if err := encodeVector(w, p.Translation); err != nil {
			return err
		}
	}
	w.WriteBool(p.HasScale3D)
	if p.HasScale3D {
		if err := encodeVector(w, p.Scale3D); err != nil {
			return err
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////
// Box: 2 vectors + a validity flag.

type BoxPayload struct {
	Min, Max VectorPayload
	IsValid  bool
}

func (BoxPayload) structName() string { return types.StructBox }

func decodeBox(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	var p BoxPayload
	min, err := decodeVector(r, ctx, warn)
	if err != nil {
		return nil, err
	}
	p.Min = min.(VectorPayload)
	max, err := decodeVector(r, ctx, warn)
	if err != nil {
		return nil, err
	}
	p.Max = max.(VectorPayload)
	if p.IsValid, err = r.Bool(); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeBox(w *cursor.Writer, payload StructPayload) error {
	p := payload.(BoxPayload)
	if err := encodeVector(w, p.Min); err != nil {
		return err
	}
	if err := encodeVector(w, p.Max); err != nil {
		return err
	}
	w.WriteBool(p.IsValid)
	return nil
}

////////////////////////////////////////////////////////////////
// Integer point/vector structs

type IntPointPayload struct{ X, Y int32 }

func (IntPointPayload) structName() string { return types.StructIntPoint }

func decodeIntPoint(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	var p IntPointPayload
	var err error
	if p.X, err = r.Int32(); err != nil {
		return nil, err
	}
	if p.Y, err = r.Int32(); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeIntPoint(w *cursor.Writer, payload StructPayload) error {
	p := payload.(IntPointPayload)
	w.WriteInt32(p.X)
	w.WriteInt32(p.Y)
	return nil
}

type IntVectorPayload struct{ X, Y, Z int32 }

func (IntVectorPayload) structName() string { return types.StructIntVector }

func decodeIntVector(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	var p IntVectorPayload
	var err error
	if p.X, err = r.Int32(); err != nil {
		return nil, err
	}
	if p.Y, err = r.Int32(); err != nil {
		return nil, err
	}
	if p.Z, err = r.Int32(); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeIntVector(w *cursor.Writer, payload StructPayload) error {
	p := payload.(IntVectorPayload)
	w.WriteInt32(p.X)
	w.WriteInt32(p.Y)
	w.WriteInt32(p.Z)
	return nil
}

////////////////////////////////////////////////////////////////
// DateTime, Guid, FluidBox

type DateTimePayload struct{ Ticks int64 }

func (DateTimePayload) structName() string { return types.StructDateTime }

func decodeDateTime(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	v, err := r.Int64()
	return DateTimePayload{Ticks: v}, err
}

func encodeDateTime(w *cursor.Writer, payload StructPayload) error {
	w.WriteInt64(payload.(DateTimePayload).Ticks)
	return nil
}

type GuidPayload struct{ Value types.GUID }

func (GuidPayload) structName() string { return types.StructGuid }

func decodeGuidStruct(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	g, err := types.ReadGUID(r)
	return GuidPayload{Value: g}, err
}

func encodeGuidStruct(w *cursor.Writer, payload StructPayload) error {
	types.WriteGUID(w, payload.(GuidPayload).Value)
	return nil
}

type FluidBoxPayload struct{ Value float32 }

func (FluidBoxPayload) structName() string { return types.StructFluidBox }

func decodeFluidBox(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	v, err := r.Float32()
	return FluidBoxPayload{Value: v}, err
}

func encodeFluidBox(w *cursor.Writer, payload StructPayload) error {
	w.WriteFloat32(payload.(FluidBoxPayload).Value)
	return nil
}

////////////////////////////////////////////////////////////////
// Game-specific blobs named explicitly in spec §4.5

type RailroadTrackPositionPayload struct {
	Track    types.ObjectReference
	Offset   float32
	Forward  float32
}

func (RailroadTrackPositionPayload) structName() string { return types.StructRailroadTrackPosition }

func decodeRailroadTrackPosition(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	var p RailroadTrackPositionPayload
	var err error
	if p.Track, err = types.ReadObjectReference(r); err != nil {
		return nil, err
	}
	if p.Offset, err = r.Float32(); err != nil {
		return nil, err
	}
	if p.Forward, err = r.Float32(); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeRailroadTrackPosition(w *cursor.Writer, payload StructPayload) error {
	p := payload.(RailroadTrackPositionPayload)
	types.WriteObjectReference(w, p.Track)
	w.WriteFloat32(p.Offset)
	w.WriteFloat32(p.Forward)
	return nil
}

type InventoryItemPayload struct {
	ItemName string
	Instance types.ObjectReference
}

func (InventoryItemPayload) structName() string { return types.StructInventoryItem }

func decodeInventoryItem(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	var p InventoryItemPayload
	var err error
	if p.ItemName, err = r.String(); err != nil {
		return nil, err
	}
	if p.Instance, err = types.ReadObjectReference(r); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeInventoryItem(w *cursor.Writer, payload StructPayload) error {
	p := payload.(InventoryItemPayload)
	w.WriteString(p.ItemName)
	types.WriteObjectReference(w, p.Instance)
	return nil
}

type ClientIdentityInfoPayload struct {
	Platform string
	UserID   string
}

func (ClientIdentityInfoPayload) structName() string { return types.StructClientIdentityInfo }

func decodeClientIdentityInfo(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	var p ClientIdentityInfoPayload
	var err error
	if p.Platform, err = r.String(); err != nil {
		return nil, err
	}
	if p.UserID, err = r.String(); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeClientIdentityInfo(w *cursor.Writer, payload StructPayload) error {
	p := payload.(ClientIdentityInfoPayload)
	w.WriteString(p.Platform)
	w.WriteString(p.UserID)
	return nil
}

type ScannableResourcePairPayload struct {
	ItemClass string
	Amount    int32
}

func (ScannableResourcePairPayload) structName() string { return types.StructScannableResourcePair }

func decodeScannableResourcePair(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	var p ScannableResourcePairPayload
	var err error
	if p.ItemClass, err = r.String(); err != nil {
		return nil, err
	}
	if p.Amount, err = r.Int32(); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeScannableResourcePair(w *cursor.Writer, payload StructPayload) error {
	p := payload.(ScannableResourcePairPayload)
	w.WriteString(p.ItemClass)
	w.WriteInt32(p.Amount)
	return nil
}

// FICFrameRangePayload carries two int64 frame numbers. On disk they are
// serialized as decimal-text strings rather than raw integers — a known
// quirk of the engine's big-range type — so exactness depends on parsing
// through strconv rather than any float path.
type FICFrameRangePayload struct {
	Begin, End int64
}

func (FICFrameRangePayload) structName() string { return types.StructFICFrameRange }

func decodeFICFrameRange(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	beginStr, err := r.String()
	if err != nil {
		return nil, err
	}
	endStr, err := r.String()
	if err != nil {
		return nil, err
	}
	begin, err := strconv.ParseInt(beginStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("property: FICFrameRange.Begin not a decimal int64: %w", err)
	}
	end, err := strconv.ParseInt(endStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("property: FICFrameRange.End not a decimal int64: %w", err)
	}
	return FICFrameRangePayload{Begin: begin, End: end}, nil
}

func encodeFICFrameRange(w *cursor.Writer, payload StructPayload) error {
	p := payload.(FICFrameRangePayload)
	w.WriteString(strconv.FormatInt(p.Begin, 10))
	w.WriteString(strconv.FormatInt(p.End, 10))
	return nil
}

// SpawnDataPayload wraps a nested generic property list: community tooling
// documents SpawnData as itself holding an arbitrary sub-property list, so
// it is modeled the same way the generic struct fallback is, rather than as
// fixed fields.
type SpawnDataPayload struct {
	Properties List
}

func (SpawnDataPayload) structName() string { return types.StructSpawnData }

func decodeSpawnData(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	list, err := ReadList(r, warn)
	if err != nil {
		return nil, err
	}
	return SpawnDataPayload{Properties: list}, nil
}

func encodeSpawnData(w *cursor.Writer, payload StructPayload) error {
	return WriteList(w, payload.(SpawnDataPayload).Properties)
}

// PhaseCostPayload is a variable-length list of (resource form, item class,
// amount) entries.
type PhaseCostPayload struct {
	Entries []PhaseCostEntry
}

type PhaseCostEntry struct {
	ResourceForm int8
	ItemClass    string
	Amount       int32
}

func (PhaseCostPayload) structName() string { return types.StructPhaseCost }

func decodePhaseCost(r *cursor.Reader, ctx propertyContext, warn func(string)) (StructPayload, error) {
	count, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	entries := make([]PhaseCostEntry, count)
	for i := range entries {
		if entries[i].ResourceForm, err = r.Int8(); err != nil {
			return nil, err
		}
		if entries[i].ItemClass, err = r.String(); err != nil {
			return nil, err
		}
		if entries[i].Amount, err = r.Int32(); err != nil {
			return nil, err
		}
	}
	return PhaseCostPayload{Entries: entries}, nil
}

func encodePhaseCost(w *cursor.Writer, payload StructPayload) error {
	p := payload.(PhaseCostPayload)
	w.WriteUint32(uint32(len(p.Entries)))
	for _, e := range p.Entries {
		w.WriteInt8(e.ResourceForm)
		w.WriteString(e.ItemClass)
		w.WriteInt32(e.Amount)
	}
	return nil
}
