package jsonenc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringifyNegativeZeroLiteral(t *testing.T) {
	out, err := Stringify(math.Copysign(0, -1), "")
	require.NoError(t, err)
	require.Equal(t, "-0", out)
}

func TestStringifyPositiveZero(t *testing.T) {
	out, err := Stringify(0.0, "")
	require.NoError(t, err)
	require.Equal(t, "0", out)
}

func TestStringifyInt64ExactnessQuotedAsDecimalString(t *testing.T) {
	out, err := Stringify(int64(math.MaxInt64), "")
	require.NoError(t, err)
	require.Equal(t, `"9223372036854775807"`, out)
}

func TestStringifyUint64ExactnessQuotedAsDecimalString(t *testing.T) {
	out, err := Stringify(uint64(math.MaxUint64), "")
	require.NoError(t, err)
	require.Equal(t, `"18446744073709551615"`, out)
}

func TestStringifyInt32PlainNumber(t *testing.T) {
	out, err := Stringify(int32(-42), "")
	require.NoError(t, err)
	require.Equal(t, "-42", out)
}

func TestStringifyMapDeterministicKeyOrdering(t *testing.T) {
	m := map[string]int{"zeta": 1, "alpha": 2, "mike": 3}
	out, err := Stringify(m, "")
	require.NoError(t, err)
	require.Equal(t, `{"alpha":2,"mike":3,"zeta":1}`, out)
}

func TestStringifyStructExportedFieldsOnly(t *testing.T) {
	type inner struct {
		Name     string
		internal int
	}
	out, err := Stringify(inner{Name: "Buildable_1", internal: 7}, "")
	require.NoError(t, err)
	require.Equal(t, `{"Name":"Buildable_1"}`, out)
}

func TestStringifyNilPointerIsNull(t *testing.T) {
	var p *int
	out, err := Stringify(p, "")
	require.NoError(t, err)
	require.Equal(t, "null", out)
}

func TestStringifyEmptySliceAndMap(t *testing.T) {
	out, err := Stringify([]int{}, "")
	require.NoError(t, err)
	require.Equal(t, "[]", out)

	out, err = Stringify(map[string]int{}, "")
	require.NoError(t, err)
	require.Equal(t, "{}", out)
}

func TestStringifyIndentedNesting(t *testing.T) {
	type point struct {
		X, Y int32
	}
	out, err := Stringify(point{X: 1, Y: 2}, "  ")
	require.NoError(t, err)
	require.Equal(t, "{\n  \"X\": 1,\n  \"Y\": 2\n}", out)
}

func TestStringifyStringEscaping(t *testing.T) {
	out, err := Stringify("line\nbreak\t\"quoted\"", "")
	require.NoError(t, err)
	require.Equal(t, `"line\nbreak\t\"quoted\""`, out)
}
