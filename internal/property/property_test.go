package property

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
	"github.com/Sleavely/satisfactory-file-parser/internal/types"
)

func roundTrip(t *testing.T, list List) List {
	t.Helper()
	w := cursor.NewWriter()
	require.NoError(t, WriteList(w, list))

	r := cursor.NewReader(w.Bytes())
	got, err := ReadList(r, nil)
	require.NoError(t, err)
	require.Zero(t, r.Len())
	if diff := cmp.Diff(list, got); list != nil && diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	return got
}

func TestPropertyListTerminatesOnNone(t *testing.T) {
	list := List{
		{Name: "Health", Type: types.TagInt32Property, Value: Int32Value{Value: 100}},
	}
	got := roundTrip(t, list)
	require.Equal(t, list, got)
}

func TestPropertyListEmpty(t *testing.T) {
	got := roundTrip(t, nil)
	require.Empty(t, got)
}

func TestWriteListRejectsExplicitNoneName(t *testing.T) {
	list := List{{Name: types.None, Type: types.TagInt32Property, Value: Int32Value{}}}
	w := cursor.NewWriter()
	err := WriteList(w, list)
	require.Error(t, err)
	var target ErrDuplicateNone
	require.ErrorAs(t, err, &target)
}

func TestBoolPropertyValueCarriedInHeaderByte(t *testing.T) {
	list := List{
		{Name: "bIsActive", Type: types.TagBoolProperty, Value: BoolValue{Value: true}},
	}
	got := roundTrip(t, list)
	require.Equal(t, true, got[0].Value.(BoolValue).Value)
}

func TestInt64BigIntegerExactness(t *testing.T) {
	list := List{
		{Name: "Counter", Type: types.TagInt64Property, Value: Int64Value{Value: math.MaxInt64}},
	}
	got := roundTrip(t, list)
	require.Equal(t, int64(math.MaxInt64), got[0].Value.(Int64Value).Value)
}

func TestUInt64Exactness(t *testing.T) {
	list := List{
		{Name: "Flags", Type: types.TagUInt64Property, Value: UInt64Value{Value: math.MaxUint64}},
	}
	got := roundTrip(t, list)
	require.Equal(t, uint64(math.MaxUint64), got[0].Value.(UInt64Value).Value)
}

func TestStringPropertyASCIIAndUTF16(t *testing.T) {
	list := List{
		{Name: "Name", Type: types.TagStrProperty, Value: StrValue{Value: "Factory01"}},
		{Name: "Label", Type: types.TagStrProperty, Value: StrValue{Value: "café"}},
	}
	got := roundTrip(t, list)
	require.Equal(t, "Factory01", got[0].Value.(StrValue).Value)
	require.Equal(t, "café", got[1].Value.(StrValue).Value)
}

func TestVectorStructNegativeZeroPreserved(t *testing.T) {
	list := List{
		{
			Name: "RelativeLocation",
			Type: types.TagStructProperty,
			Value: StructValue{
				StructName:   types.StructVector,
				PropertyName: "RelativeLocation",
				Payload: VectorPayload{
					X: 1.0, Y: math.Copysign(0, -1), Z: 2.5,
					Width: types.PrecisionFloat,
				},
			},
		},
	}

	w := cursor.NewWriter()
	require.NoError(t, WriteList(w, list))

	r := cursor.NewReader(w.Bytes())
	got, err := ReadList(r, nil)
	require.NoError(t, err)

	payload := got[0].Value.(StructValue).Payload.(VectorPayload)
	require.Equal(t, 1.0, payload.X)
	require.True(t, math.Signbit(payload.Y))
	require.Equal(t, 2.5, payload.Z)
}

func TestMapPropertyRoundTrip(t *testing.T) {
	list := List{
		{
			Name: "ItemCounts",
			Type: types.TagMapProperty,
			Value: MapValue{
				KeyType:   types.TagStrProperty,
				ValueType: types.TagInt32Property,
				Entries: []MapEntry{
					{Key: StrValue{Value: "a"}, Value: Int32Value{Value: 1}},
					{Key: StrValue{Value: "b"}, Value: Int32Value{Value: -1}},
				},
			},
		},
	}
	got := roundTrip(t, list)
	mv := got[0].Value.(MapValue)
	require.Len(t, mv.Entries, 2)
	require.Equal(t, "a", mv.Entries[0].Key.(StrValue).Value)
	require.Equal(t, int32(1), mv.Entries[0].Value.(Int32Value).Value)
	require.Equal(t, "b", mv.Entries[1].Key.(StrValue).Value)
	require.Equal(t, int32(-1), mv.Entries[1].Value.(Int32Value).Value)
}

func TestArrayOfStructRoundTrip(t *testing.T) {
	sh := &rawElementHeader{Name: "Colors", StructName: types.StructColor}
	list := List{
		{
			Name: "Colors",
			Type: types.TagArrayProperty,
			Value: ArrayValue{
				InnerType:    types.TagStructProperty,
				StructHeader: sh,
				Elements: []Value{
					StructValue{StructName: types.StructColor, Payload: ColorPayload{B: 1, G: 2, R: 3, A: 4}},
					StructValue{StructName: types.StructColor, Payload: ColorPayload{B: 5, G: 6, R: 7, A: 8}},
				},
			},
		},
	}
	got := roundTrip(t, list)
	av := got[0].Value.(ArrayValue)
	require.Len(t, av.Elements, 2)
	require.Equal(t, ColorPayload{B: 1, G: 2, R: 3, A: 4}, av.Elements[0].(StructValue).Payload)
	require.Equal(t, ColorPayload{B: 5, G: 6, R: 7, A: 8}, av.Elements[1].(StructValue).Payload)
}

func TestSetPropertyRoundTrip(t *testing.T) {
	list := List{
		{
			Name: "Tags",
			Type: types.TagSetProperty,
			Value: SetValue{
				InnerType: types.TagNameProperty,
				Elements: []Value{
					NameValue{Value: "Alpha"},
					NameValue{Value: "Beta"},
				},
			},
		},
	}
	got := roundTrip(t, list)
	sv := got[0].Value.(SetValue)
	require.Len(t, sv.Elements, 2)
}

func TestGenericStructFallbackForUnknownType(t *testing.T) {
	list := List{
		{
			Name: "FutureBlob",
			Type: types.TagStructProperty,
			Value: StructValue{
				StructName: "SomeFutureGameStruct",
				Payload: GenericStructPayload{
					Name: "SomeFutureGameStruct",
					Properties: List{
						{Name: "Inner", Type: types.TagInt32Property, Value: Int32Value{Value: 42}},
					},
				},
			},
		},
	}

	var warnings []string
	w := cursor.NewWriter()
	require.NoError(t, WriteList(w, list))

	r := cursor.NewReader(w.Bytes())
	got, err := ReadList(r, func(msg string) { warnings = append(warnings, msg) })
	require.NoError(t, err)
	require.NotEmpty(t, warnings)

	payload := got[0].Value.(StructValue).Payload.(GenericStructPayload)
	require.Equal(t, "SomeFutureGameStruct", payload.Name)
	require.Equal(t, int32(42), payload.Properties[0].Value.(Int32Value).Value)
}

func TestUnknownPropertyTypeTagIsFatal(t *testing.T) {
	w := cursor.NewWriter()
	w.WriteString("Weird")
	w.WriteString("TotallyUnknownProperty")
	w.WriteUint32(0)
	w.WriteUint32(0)

	r := cursor.NewReader(w.Bytes())
	_, err := ReadList(r, nil)
	require.Error(t, err)
	var target ErrUnknownTypeTag
	require.ErrorAs(t, err, &target)
}

func TestBodyLengthMismatchDetected(t *testing.T) {
	w := cursor.NewWriter()
	w.WriteString("Broken")
	w.WriteString(types.TagInt32Property)
	w.WriteUint32(999) // wrong declared length
	w.WriteUint32(0)
	w.WriteUint8(0) // GUIDInfo absent
	w.WriteUint8(0) // terminator
	w.WriteInt32(7)
	w.WriteString(types.None)

	r := cursor.NewReader(w.Bytes())
	_, err := ReadList(r, nil)
	require.Error(t, err)
	var target ErrBodyLengthMismatch
	require.ErrorAs(t, err, &target)
}
