package types

// PrecisionWidth names whether a vector-family struct's components are
// carried as 4-byte floats or 8-byte doubles for a particular property.
type PrecisionWidth uint8

const (
	PrecisionDouble PrecisionWidth = iota
	PrecisionFloat
)

// precisionKey identifies a (struct-name, property-name) pair in the hint
// table below.
type precisionKey struct {
	StructName   string
	PropertyName string
}

// precisionHints is the one piece of knowledge that cannot be inferred from
// the byte stream itself (§4.5 "Numeric semantics"/§9 "Precision hints"): it
// must be kept in sync with the game's own struct/property precision table
// across versions. Entries not listed default to PrecisionDouble, matching
// the struct-level default for the Vector/Vector2D/Vector4/Rotator/Quat
// family types (and the vectors inside Box and Transform).
var precisionHints = map[precisionKey]PrecisionWidth{
	{StructVector, "RelativeLocation"}:    PrecisionFloat,
	{StructVector, "RelativeScale3D"}:     PrecisionFloat,
	{StructVector, "BoxExtent"}:           PrecisionFloat,
	{StructVector, "MeshComponent"}:       PrecisionFloat,
	{StructRotator, "RelativeRotation"}:   PrecisionFloat,
	{StructQuat, "RelativeRotationQuat"}:  PrecisionFloat,
}

// PrecisionHint reports the numeric width a vector-family struct should be
// decoded/encoded with for a given owning property name. ok is false when
// no override is recorded, in which case the struct's own default applies.
func PrecisionHint(structName, propertyName string) (width PrecisionWidth, ok bool) {
	width, ok = precisionHints[precisionKey{structName, propertyName}]
	return width, ok
}
