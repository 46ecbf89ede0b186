package object

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
	"github.com/Sleavely/satisfactory-file-parser/internal/property"
	"github.com/Sleavely/satisfactory-file-parser/internal/types"
)

func TestHeaderBodyRoundTripEntityAndComponent(t *testing.T) {
	headers := []Header{
		{
			Kind:             KindEntity,
			TypePath:         "/Script/FactoryGame.FGBuildable",
			RootObjectPath:   "Persistent_Level",
			InstanceName:     "Persistent_Level:PersistentLevel.Buildable_1",
			NeedsTransform:   true,
			Transform:        TransformHeader{HasTranslation: true, Translation: [3]float64{1, 2, 3}},
			WasPlacedInLevel: true,
		},
		{
			Kind:            KindComponent,
			TypePath:        "/Script/FactoryGame.FGInventoryComponent",
			RootObjectPath:  "Persistent_Level",
			InstanceName:    "Persistent_Level:PersistentLevel.Buildable_1.Inventory",
			OuterObjectPath: "Persistent_Level:PersistentLevel.Buildable_1",
		},
	}

	hw := cursor.NewWriter()
	WriteHeaders(hw, headers)

	hr := cursor.NewReader(hw.Bytes())
	gotHeaders, err := ReadHeaders(hr)
	require.NoError(t, err)
	require.Equal(t, headers, gotHeaders)

	kinds := []Kind{KindEntity, KindComponent}
	bodies := []Body{
		{
			HasParent: true,
			Parent:    types.ObjectReference{LevelName: "Persistent_Level", PathName: "Persistent_Level:PersistentLevel"},
			Children: []types.ObjectReference{
				{LevelName: "Persistent_Level", PathName: "Persistent_Level:PersistentLevel.Buildable_1.Inventory"},
			},
			Properties: property.List{
				{Name: "mHealth", Type: types.TagInt32Property, Value: property.Int32Value{Value: 100}},
			},
			TrailingBlob: []byte{0xDE, 0xAD},
		},
		{
			Properties: property.List{
				{Name: "mCapacity", Type: types.TagInt32Property, Value: property.Int32Value{Value: 9}},
			},
		},
	}

	bw := cursor.NewWriter()
	require.NoError(t, WriteBodies(bw, kinds, bodies))

	br := cursor.NewReader(bw.Bytes())
	gotBodies, err := ReadBodies(br, kinds, nil)
	require.NoError(t, err)
	require.Equal(t, bodies, gotBodies)
	require.Zero(t, br.Len())
}

func TestReadBodiesRejectsCountMismatch(t *testing.T) {
	bw := cursor.NewWriter()
	bw.WriteUint32(0) // zero bodies declared

	br := cursor.NewReader(bw.Bytes())
	_, err := ReadBodies(br, []Kind{KindEntity}, nil)
	require.Error(t, err)
	var target ErrHeaderBodyCountMismatch
	require.ErrorAs(t, err, &target)
}

func TestObjectBodyPositionAdvancesToDeclaredSize(t *testing.T) {
	kinds := []Kind{KindComponent}
	bodies := []Body{
		{Properties: property.List{}},
	}

	bw := cursor.NewWriter()
	require.NoError(t, WriteBodies(bw, kinds, bodies))

	br := cursor.NewReader(bw.Bytes())
	_, err := ReadBodies(br, kinds, nil)
	require.NoError(t, err)
	require.Zero(t, br.Len())
}
