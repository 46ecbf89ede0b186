package property

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
	"github.com/Sleavely/satisfactory-file-parser/internal/types"
)

func TestTextBaseRoundTrip(t *testing.T) {
	tv := TextValue{
		Flags: 0,
		Node: TextNode{
			History: HistoryBase,
			Base:    &TextBase{Namespace: "", Key: "Foo_Key", Literal: "Factory"},
		},
	}

	w := cursor.NewWriter()
	writeText(w, tv)

	r := cursor.NewReader(w.Bytes())
	got, err := readText(r, types.GUIDInfo{}, nil)
	require.NoError(t, err)
	gotTV := got.(TextValue)
	require.Equal(t, HistoryBase, gotTV.Node.History)
	require.Equal(t, "Factory", gotTV.Node.Base.Literal)
}

func TestTextNamedFormatRoundTrip(t *testing.T) {
	tv := TextValue{
		Node: TextNode{
			History: HistoryNamedFormat,
			NamedFormat: &TextNamedFormat{
				SourceText: "{Count} items",
				Args: []TextNamedFormatArg{
					{Name: "Count", Value: TextValue{Node: TextNode{History: HistoryBase, Base: &TextBase{Literal: "3"}}}},
				},
			},
		},
	}

	w := cursor.NewWriter()
	writeText(w, tv)

	r := cursor.NewReader(w.Bytes())
	got, err := readText(r, types.GUIDInfo{}, nil)
	require.NoError(t, err)
	gotTV := got.(TextValue)
	require.Equal(t, "{Count} items", gotTV.Node.NamedFormat.SourceText)
	require.Len(t, gotTV.Node.NamedFormat.Args, 1)
	require.Equal(t, "Count", gotTV.Node.NamedFormat.Args[0].Name)
	require.Equal(t, "3", gotTV.Node.NamedFormat.Args[0].Value.Node.Base.Literal)
}

func TestTextNoneHistory(t *testing.T) {
	tv := TextValue{Node: TextNode{History: HistoryNone}}

	w := cursor.NewWriter()
	writeText(w, tv)

	r := cursor.NewReader(w.Bytes())
	got, err := readText(r, types.GUIDInfo{}, nil)
	require.NoError(t, err)
	require.Equal(t, HistoryNone, got.(TextValue).Node.History)
}

func TestTextAsDateRoundTrip(t *testing.T) {
	tv := TextValue{
		Node: TextNode{
			History: HistoryAsDate,
			AsDate:  &TextAsDate{SourceDateTime: 637000000000000000},
		},
	}

	w := cursor.NewWriter()
	writeText(w, tv)

	r := cursor.NewReader(w.Bytes())
	got, err := readText(r, types.GUIDInfo{}, nil)
	require.NoError(t, err)
	require.Equal(t, int64(637000000000000000), got.(TextValue).Node.AsDate.SourceDateTime)
}
