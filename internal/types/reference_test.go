package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
)

func TestObjectReferenceRoundTrip(t *testing.T) {
	w := cursor.NewWriter()
	ref := ObjectReference{LevelName: "Persistent_Level", PathName: "Persistent_Level:PersistentLevel.Foo_1"}
	WriteObjectReference(w, ref)

	r := cursor.NewReader(w.Bytes())
	got, err := ReadObjectReference(r)
	require.NoError(t, err)
	require.Equal(t, ref, got)
}

func TestGUIDRoundTrip(t *testing.T) {
	g := uuid.New()
	w := cursor.NewWriter()
	WriteGUID(w, g)

	r := cursor.NewReader(w.Bytes())
	got, err := ReadGUID(r)
	require.NoError(t, err)
	require.Equal(t, g, got)
}

func TestGUIDInfoAbsent(t *testing.T) {
	w := cursor.NewWriter()
	WriteGUIDInfo(w, GUIDInfo{})

	r := cursor.NewReader(w.Bytes())
	got, err := ReadGUIDInfo(r)
	require.NoError(t, err)
	require.False(t, got.Present)
}

func TestGUIDInfoPresent(t *testing.T) {
	g := uuid.New()
	w := cursor.NewWriter()
	WriteGUIDInfo(w, GUIDInfo{Present: true, Value: g})

	r := cursor.NewReader(w.Bytes())
	got, err := ReadGUIDInfo(r)
	require.NoError(t, err)
	require.True(t, got.Present)
	require.Equal(t, g, got.Value)
}
