// Package property implements the polymorphic property reader/writer: the
// tagged-list termination sentinel, length-prefixed value framing, inner
// type discriminators for containers, and the struct dispatcher keyed on
// struct name. This is the hardest subsystem in the codec (spec §4.4).
package property

import (
	"fmt"

	"github.com/Sleavely/satisfactory-file-parser/internal/cursor"
	"github.com/Sleavely/satisfactory-file-parser/internal/types"
)

// Property is a named, typed, self-describing field on a scene object.
type Property struct {
	Name       string
	Type       string
	ArrayIndex uint32
	Value      Value
}

// List is an ordered sequence of Properties, always implicitly terminated
// by a None-named property that is not itself stored in the slice.
type List []Property

// ErrBodyLengthMismatch seeds a bug report: it usually means the struct
// dispatcher is missing a type and silently mis-parsed a payload.
type ErrBodyLengthMismatch struct {
	At       string
	Expected int
	Observed int
}

func (e ErrBodyLengthMismatch) Error() string {
	return fmt.Sprintf("body length mismatch at %s: header declared %d bytes, consumed %d", e.At, e.Expected, e.Observed)
}

// ErrUnknownTypeTag is fatal for a property's own type tag (there is no
// generic property fallback, only a generic struct fallback).
type ErrUnknownTypeTag struct {
	Tag string
}

func (e ErrUnknownTypeTag) Error() string {
	return fmt.Sprintf("unknown property type tag %q", e.Tag)
}

// ErrDuplicateNone is returned when a property other than the list
// terminator is named None.
type ErrDuplicateNone struct{}

func (ErrDuplicateNone) Error() string {
	return "property named None encountered before list terminator"
}

// ErrTerminatorByte is returned when the fixed zero byte that precedes
// every non-Bool property's body is not zero.
type ErrTerminatorByte struct {
	Value byte
}

func (e ErrTerminatorByte) Error() string {
	return fmt.Sprintf("expected zero terminator byte before property body, got %d", e.Value)
}

// ReadList reads properties until the None terminator, per §4.4's "Property
// header" rule: a name is read first, and if it equals None the list ends
// with no further fields. warn, if non-nil, is called for every non-fatal
// condition encountered (currently: none at the property-list level; struct
// dispatch uses it for unknown struct tags).
func ReadList(r *cursor.Reader, warn func(string)) (List, error) {
	var list List
	for {
		name, err := r.String()
		if err != nil {
			return nil, err
		}
		if name == types.None {
			return list, nil
		}

		prop, err := readOne(r, name, warn)
		if err != nil {
			return nil, err
		}
		list = append(list, prop)
	}
}

func readOne(r *cursor.Reader, name string, warn func(string)) (Property, error) {
	prop := Property{Name: name}

	typeTag, err := r.String()
	if err != nil {
		return prop, err
	}
	prop.Type = typeTag

	length, err := r.Uint32()
	if err != nil {
		return prop, err
	}

	if prop.ArrayIndex, err = r.Uint32(); err != nil {
		return prop, err
	}

	codec, ok := registry[typeTag]
	if !ok {
		return prop, ErrUnknownTypeTag{Tag: typeTag}
	}

	header, err := codec.readHeader(r)
	if err != nil {
		return prop, err
	}
	header.propertyName = name

	bodyStart := r.Position()
	value, err := codec.readBody(r, header, warn)
	if err != nil {
		return prop, err
	}
	consumed := r.Position() - bodyStart
	if consumed != int(length) {
		return prop, ErrBodyLengthMismatch{At: "property " + name, Expected: int(length), Observed: consumed}
	}

	prop.Value = value
	return prop, nil
}

// WriteList writes a property list followed by the None terminator.
func WriteList(w *cursor.Writer, list List) error {
	for _, prop := range list {
		if prop.Name == types.None {
			return ErrDuplicateNone{}
		}
		if err := writeOne(w, prop); err != nil {
			return err
		}
	}
	w.WriteString(types.None)
	return nil
}

func writeOne(w *cursor.Writer, prop Property) error {
	codec, ok := registry[prop.Type]
	if !ok {
		return ErrUnknownTypeTag{Tag: prop.Type}
	}

	w.WriteString(prop.Name)
	w.WriteString(prop.Type)
	lengthOff := w.Reserve(4)
	w.WriteUint32(prop.ArrayIndex)

	if err := codec.writeHeader(w, prop.Value); err != nil {
		return err
	}

	bodyStart := w.Position()
	if err := codec.writeBody(w, prop.Value); err != nil {
		return err
	}
	w.PatchUint32(lengthOff, uint32(w.Position()-bodyStart))

	return nil
}
