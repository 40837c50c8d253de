package jtd

// Form is the discriminant of a JTD schema, derived from which structural
// keywords are present on it.
type Form string

const (
	// FormEmpty is the empty form: no structural keyword is present.
	FormEmpty Form = "empty"

	// FormRef is the ref form.
	FormRef Form = "ref"

	// FormType is the type form.
	FormType Form = "type"

	// FormEnum is the enum form.
	FormEnum Form = "enum"

	// FormElements is the elements form.
	FormElements Form = "elements"

	// FormProperties is the properties form. It fires whenever either
	// "properties" or "optionalProperties" is set.
	FormProperties Form = "properties"

	// FormValues is the values form.
	FormValues Form = "values"

	// FormDiscriminator is the discriminator form.
	FormDiscriminator Form = "discriminator"
)

// Type is one of the eleven primitive type tags the "type" keyword may take
// on.
type Type string

const (
	TypeBoolean   Type = "boolean"
	TypeString    Type = "string"
	TypeTimestamp Type = "timestamp"
	TypeFloat32   Type = "float32"
	TypeFloat64   Type = "float64"
	TypeInt8      Type = "int8"
	TypeUint8     Type = "uint8"
	TypeInt16     Type = "int16"
	TypeUint16    Type = "uint16"
	TypeInt32     Type = "int32"
	TypeUint32    Type = "uint32"
)

// validTypes is the full set of type tags recognized by the "type" keyword.
var validTypes = map[Type]bool{
	TypeBoolean:   true,
	TypeString:    true,
	TypeTimestamp: true,
	TypeFloat32:   true,
	TypeFloat64:   true,
	TypeInt8:      true,
	TypeUint8:     true,
	TypeInt16:     true,
	TypeUint16:    true,
	TypeInt32:     true,
	TypeUint32:    true,
}

// JSON keyword names, exactly as they appear in a JTD schema document.
const (
	keywordMetadata             = "metadata"
	keywordNullable             = "nullable"
	keywordDefinitions          = "definitions"
	keywordRef                  = "ref"
	keywordType                 = "type"
	keywordEnum                 = "enum"
	keywordElements             = "elements"
	keywordProperties           = "properties"
	keywordOptionalProperties   = "optionalProperties"
	keywordAdditionalProperties = "additionalProperties"
	keywordValues               = "values"
	keywordDiscriminator        = "discriminator"
	keywordMapping              = "mapping"
)

// knownKeywords is the fixed set of keys a JTD schema document may contain.
// Any other key causes FromValue to fail with ErrIllegalKeyword.
var knownKeywords = map[string]bool{
	keywordMetadata:             true,
	keywordNullable:             true,
	keywordDefinitions:          true,
	keywordRef:                  true,
	keywordType:                 true,
	keywordEnum:                 true,
	keywordElements:             true,
	keywordProperties:           true,
	keywordOptionalProperties:   true,
	keywordAdditionalProperties: true,
	keywordValues:               true,
	keywordDiscriminator:        true,
	keywordMapping:              true,
}
