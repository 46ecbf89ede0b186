package types

// Property type tags, as they appear verbatim in the on-disk type-tag
// string of every Property header (§4.4).
const (
	TagBoolProperty       = "BoolProperty"
	TagInt8Property       = "Int8Property"
	TagInt32Property      = "IntProperty"
	TagInt64Property      = "Int64Property"
	TagUInt8Property      = "ByteProperty"
	TagUInt32Property     = "UInt32Property"
	TagUInt64Property     = "UInt64Property"
	TagFloatProperty      = "FloatProperty"
	TagDoubleProperty     = "DoubleProperty"
	TagStrProperty        = "StrProperty"
	TagNameProperty       = "NameProperty"
	TagObjectProperty     = "ObjectProperty"
	TagSoftObjectProperty = "SoftObjectProperty"
	TagEnumProperty       = "EnumProperty"
	TagTextProperty       = "TextProperty"
	TagArrayProperty      = "ArrayProperty"
	TagSetProperty        = "SetProperty"
	TagMapProperty        = "MapProperty"
	TagStructProperty     = "StructProperty"
	TagInterfaceProperty  = "InterfaceProperty"

	// None is the sentinel property name that terminates a property list.
	// No other property may bear this name.
	None = "None"
)

// Well-known struct-type names dispatched to a typed codec in §4.5. Any
// struct-type string not in this set falls through to the generic
// property-list decoder.
const (
	StructVector                = "Vector"
	StructVector2D               = "Vector2D"
	StructVector4                = "Vector4"
	StructQuat                   = "Quat"
	StructRotator                = "Rotator"
	StructColor                  = "Color"
	StructLinearColor            = "LinearColor"
	StructTransform              = "Transform"
	StructBox                    = "Box"
	StructIntPoint               = "IntPoint"
	StructIntVector              = "IntVector"
	StructDateTime               = "DateTime"
	StructGuid                   = "Guid"
	StructFluidBox               = "FluidBox"
	StructRailroadTrackPosition  = "RailroadTrackPosition"
	StructInventoryItem          = "InventoryItem"
	StructClientIdentityInfo     = "ClientIdentityInfo"
	StructScannableResourcePair  = "ScannableResourcePair"
	StructFICFrameRange          = "FICFrameRange"
	StructSpawnData              = "SpawnData"
	StructPhaseCost              = "PhaseCost"
)
