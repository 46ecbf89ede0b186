package property

import (
	"fmt"

	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
	"github.com/Sleavely/satisfactory-file-parser/internal/types"
)

// TextValue is a TextProperty: a recursive tagged union of localization
// history kinds (§4.4 "Text").
type TextValue struct {
	GUID  types.GUIDInfo
	Flags uint32
	Node  TextNode
}

func (TextValue) typeTag() string { return types.TagTextProperty }

// HistoryType identifies which TextNode variant follows the flags field.
// The byte codes mirror the engine's own ETextHistoryType enum, where None
// is encoded as -1 (0xFF as a byte).
type HistoryType uint8

const (
	HistoryBase             HistoryType = 0
	HistoryNamedFormat      HistoryType = 1
	HistoryArgumentFormat   HistoryType = 3
	HistoryAsNumber         HistoryType = 4
	HistoryAsDate           HistoryType = 7
	HistoryTransform        HistoryType = 10
	HistoryStringTableEntry HistoryType = 11
	HistoryNone             HistoryType = 0xFF
)

// TextNode is the recursive payload of one Text value.
type TextNode struct {
	History HistoryType

	Base             *TextBase
	NamedFormat      *TextNamedFormat
	ArgumentFormat   *TextArgumentFormat
	AsNumber         *TextAsNumber
	AsDate           *TextAsDate
	Transform        *TextTransform
	StringTableEntry *TextStringTableEntry
}

type TextBase struct {
	Namespace string
	Key       string
	Literal   string
}

type TextNamedFormatArg struct {
	Name  string
	Value TextValue
}

type TextNamedFormat struct {
	SourceText string
	Args       []TextNamedFormatArg
}

type TextArgumentFormatArg struct {
	Name  string
	Value TextValue
}

type TextArgumentFormat struct {
	SourceText string
	Args       []TextArgumentFormatArg
}

type TextAsNumber struct {
	SourceValue TextValue
	FormatCode  int32
}

type TextAsDate struct {
	SourceDateTime int64
}

type TextTransform struct {
	SourceText TextValue
	TransformType int32
}

type TextStringTableEntry struct {
	TableID string
	Key     string
}

func readText(r *cursor.Reader, guid types.GUIDInfo, warn func(string)) (Value, error) {
	tv := TextValue{GUID: guid}
	var err error
	if tv.Flags, err = r.Uint32(); err != nil {
		return nil, err
	}
	node, err := readTextNode(r, warn)
	if err != nil {
		return nil, err
	}
	tv.Node = node
	return tv, nil
}

func readTextNode(r *cursor.Reader, warn func(string)) (TextNode, error) {
	var node TextNode
	h, err := r.Uint8()
	if err != nil {
		return node, err
	}
	node.History = HistoryType(h)

	switch node.History {
	case HistoryNone:
		return node, nil
	case HistoryBase:
		b := &TextBase{}
		if b.Namespace, err = r.String(); err != nil {
			return node, err
		}
		if b.Key, err = r.String(); err != nil {
			return node, err
		}
		if b.Literal, err = r.String(); err != nil {
			return node, err
		}
		node.Base = b
		return node, nil
	case HistoryNamedFormat:
		nf := &TextNamedFormat{}
		if nf.SourceText, err = r.String(); err != nil {
			return node, err
		}
		count, err := r.Uint32()
		if err != nil {
			return node, err
		}
		nf.Args = make([]TextNamedFormatArg, count)
		for i := range nf.Args {
			if nf.Args[i].Name, err = r.String(); err != nil {
				return node, err
			}
			v, err := readText(r, types.GUIDInfo{}, warn)
			if err != nil {
				return node, err
			}
			nf.Args[i].Value = v.(TextValue)
		}
		node.NamedFormat = nf
		return node, nil
	case HistoryArgumentFormat:
		af := &TextArgumentFormat{}
		if af.SourceText, err = r.String(); err != nil {
			return node, err
		}
		count, err := r.Uint32()
		if err != nil {
			return node, err
		}
		af.Args = make([]TextArgumentFormatArg, count)
		for i := range af.Args {
			if af.Args[i].Name, err = r.String(); err != nil {
				return node, err
			}
			v, err := readText(r, types.GUIDInfo{}, warn)
			if err != nil {
				return node, err
			}
			af.Args[i].Value = v.(TextValue)
		}
		node.ArgumentFormat = af
		return node, nil
	case HistoryAsNumber:
		an := &TextAsNumber{}
		v, err := readText(r, types.GUIDInfo{}, warn)
		if err != nil {
			return node, err
		}
		an.SourceValue = v.(TextValue)
		if an.FormatCode, err = r.Int32(); err != nil {
			return node, err
		}
		node.AsNumber = an
		return node, nil
	case HistoryAsDate:
		ad := &TextAsDate{}
		if ad.SourceDateTime, err = r.Int64(); err != nil {
			return node, err
		}
		node.AsDate = ad
		return node, nil
	case HistoryTransform:
		tr := &TextTransform{}
		v, err := readText(r, types.GUIDInfo{}, warn)
		if err != nil {
			return node, err
		}
		tr.SourceText = v.(TextValue)
		if tr.TransformType, err = r.Int32(); err != nil {
			return node, err
		}
		node.Transform = tr
		return node, nil
	case HistoryStringTableEntry:
		ste := &TextStringTableEntry{}
		if ste.TableID, err = r.String(); err != nil {
			return node, err
		}
		if ste.Key, err = r.String(); err != nil {
			return node, err
		}
		node.StringTableEntry = ste
		return node, nil
	default:
		if warn != nil {
			warn(fmt.Sprintf("unknown text history type %d", h))
		}
		return node, fmt.Errorf("property: unknown text history type %d", h)
	}
}

func writeText(w *cursor.Writer, tv TextValue) {
	w.WriteUint32(tv.Flags)
	writeTextNode(w, tv.Node)
}

func writeTextNode(w *cursor.Writer, node TextNode) {
	w.WriteUint8(uint8(node.History))
	switch node.History {
	case HistoryNone:
	case HistoryBase:
		w.WriteString(node.Base.Namespace)
		w.WriteString(node.Base.Key)
		w.WriteString(node.Base.Literal)
	case HistoryNamedFormat:
		w.WriteString(node.NamedFormat.SourceText)
		w.WriteUint32(uint32(len(node.NamedFormat.Args)))
		for _, a := range node.NamedFormat.Args {
			w.WriteString(a.Name)
			writeText(w, a.Value)
		}
	case HistoryArgumentFormat:
		w.WriteString(node.ArgumentFormat.SourceText)
		w.WriteUint32(uint32(len(node.ArgumentFormat.Args)))
		for _, a := range node.ArgumentFormat.Args {
			w.WriteString(a.Name)
			writeText(w, a.Value)
		}
	case HistoryAsNumber:
		writeText(w, node.AsNumber.SourceValue)
		w.WriteInt32(node.AsNumber.FormatCode)
	case HistoryAsDate:
		w.WriteInt64(node.AsDate.SourceDateTime)
	case HistoryTransform:
		writeText(w, node.Transform.SourceText)
		w.WriteInt32(node.Transform.TransformType)
	case HistoryStringTableEntry:
		w.WriteString(node.StringTableEntry.TableID)
		w.WriteString(node.StringTableEntry.Key)
	}
}
