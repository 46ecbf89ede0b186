// Package jsonenc implements Stringify, this module's public JSON emitter
// (the facade package does not wrap it): a JSON renderer that never loses 64-bit
// integer precision (it quotes big integers as decimal strings) and that
// distinguishes positive from negative zero by emitting the literal token
// -0 for the latter, as spec §6/§8 require of any JSON boundary this codec
// crosses.
package jsonenc

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Stringify renders v as indented JSON text. indent is repeated once per
// nesting level (an empty indent produces compact output on one line).
func Stringify(v interface{}, indent string) (string, error) {
	var buf strings.Builder
	enc := encoder{indent: indent}
	if err := enc.encode(&buf, reflect.ValueOf(v), 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type encoder struct {
	indent string
}

func (e encoder) newline(buf *strings.Builder, depth int) {
	if e.indent == "" {
		return
	}
	buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		buf.WriteString(e.indent)
	}
}

func (e encoder) encode(buf *strings.Builder, v reflect.Value, depth int) error {
	if !v.IsValid() {
		buf.WriteString("null")
		return nil
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Ptr:
		if v.IsNil() {
			buf.WriteString("null")
			return nil
		}
		return e.encode(buf, v.Elem(), depth)

	case reflect.Bool:
		if v.Bool() {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil

	case reflect.String:
		writeJSONString(buf, v.String())
		return nil

	case reflect.Int64:
		// Big-integer exactness: carried as a decimal string at the JSON
		// boundary so a consumer's float64-backed JSON parser cannot
		// truncate it.
		writeJSONString(buf, strconv.FormatInt(v.Int(), 10))
		return nil

	case reflect.Uint64:
		writeJSONString(buf, strconv.FormatUint(v.Uint(), 10))
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		buf.WriteString(strconv.FormatUint(v.Uint(), 10))
		return nil

	case reflect.Float32:
		writeJSONFloat(buf, v.Float(), 32)
		return nil

	case reflect.Float64:
		writeJSONFloat(buf, v.Float(), 64)
		return nil

	case reflect.Slice, reflect.Array:
		return e.encodeSequence(buf, v, depth)

	case reflect.Map:
		return e.encodeMap(buf, v, depth)

	case reflect.Struct:
		return e.encodeStruct(buf, v, depth)

	default:
		return fmt.Errorf("jsonenc: unsupported kind %s", v.Kind())
	}
}

func (e encoder) encodeSequence(buf *strings.Builder, v reflect.Value, depth int) error {
	// []byte renders as an array of small integers; this codec never
	// pushes raw binary blobs through the JSON boundary as text.
	n := v.Len()
	if n == 0 {
		buf.WriteString("[]")
		return nil
	}
	buf.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		e.newline(buf, depth+1)
		if err := e.encode(buf, v.Index(i), depth+1); err != nil {
			return err
		}
	}
	e.newline(buf, depth)
	buf.WriteByte(']')
	return nil
}

func (e encoder) encodeMap(buf *strings.Builder, v reflect.Value, depth int) error {
	keys := v.MapKeys()
	type kv struct {
		k string
		v reflect.Value
	}
	pairs := make([]kv, len(keys))
	for i, k := range keys {
		pairs[i] = kv{k: fmt.Sprint(k.Interface()), v: v.MapIndex(k)}
	}
	// Deterministic ordering: map iteration order is unspecified, and the
	// stringify contract is byte-stable output.
	slices.SortFunc(pairs, func(a, b kv) int { return strings.Compare(a.k, b.k) })

	if len(pairs) == 0 {
		buf.WriteString("{}")
		return nil
	}
	buf.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		e.newline(buf, depth+1)
		writeJSONString(buf, p.k)
		buf.WriteByte(':')
		if e.indent != "" {
			buf.WriteByte(' ')
		}
		if err := e.encode(buf, p.v, depth+1); err != nil {
			return err
		}
	}
	e.newline(buf, depth)
	buf.WriteByte('}')
	return nil
}

func (e encoder) encodeStruct(buf *strings.Builder, v reflect.Value, depth int) error {
	t := v.Type()
	var fields []int
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).PkgPath == "" { // exported only
			fields = append(fields, i)
		}
	}

	if len(fields) == 0 {
		buf.WriteString("{}")
		return nil
	}
	buf.WriteByte('{')
	for idx, i := range fields {
		if idx > 0 {
			buf.WriteByte(',')
		}
		e.newline(buf, depth+1)
		writeJSONString(buf, t.Field(i).Name)
		buf.WriteByte(':')
		if e.indent != "" {
			buf.WriteByte(' ')
		}
		if err := e.encode(buf, v.Field(i), depth+1); err != nil {
			return err
		}
	}
	e.newline(buf, depth)
	buf.WriteByte('}')
	return nil
}

// writeJSONFloat renders f per spec §8's negative-zero rule: the literal
// token -0 (not "-0") for negative zero, and plain decimal/exponential
// otherwise. bitSize selects the shortest round-tripping precision.
func writeJSONFloat(buf *strings.Builder, f float64, bitSize int) {
	if f == 0 && isNegativeZero(f) {
		buf.WriteString("-0")
		return
	}
	buf.WriteString(strconv.FormatFloat(f, 'g', -1, bitSize))
}

func isNegativeZero(f float64) bool {
	return f == 0 && (1/f) < 0
}

func writeJSONString(buf *strings.Builder, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}
