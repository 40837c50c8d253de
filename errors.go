package jtd

import (
	"errors"
	"fmt"
	"strings"
)

// === Schema Construction Errors ===
var (
	// ErrTypeMismatch is returned when a keyword's value does not have the
	// JSON shape the keyword requires (e.g. "nullable" set to a string).
	ErrTypeMismatch = errors.New("jtd: schema field type mismatch")

	// ErrIllegalKeyword is returned when a schema document contains a key
	// outside the fixed JTD keyword set.
	ErrIllegalKeyword = errors.New("jtd: illegal schema keyword")
)

// === Schema Verification Errors ===
var (
	// ErrInvalidForm is returned when a schema's structural keywords do not
	// match one of the valid form signatures.
	ErrInvalidForm = errors.New("jtd: invalid schema form")

	// ErrNonRootDefinitions is returned when a non-root schema carries a
	// "definitions" keyword.
	ErrNonRootDefinitions = errors.New("jtd: definitions keyword outside root schema")

	// ErrDanglingRef is returned when a "ref" names a definition the root
	// schema does not declare.
	ErrDanglingRef = errors.New("jtd: ref to non-existent definition")

	// ErrInvalidType is returned when "type" is not one of the eleven
	// primitive type tags.
	ErrInvalidType = errors.New("jtd: invalid type keyword value")

	// ErrEmptyEnum is returned when "enum" is present but has no values.
	ErrEmptyEnum = errors.New("jtd: empty enum")

	// ErrNonStringEnumValue is returned when "enum" contains a non-string
	// element.
	ErrNonStringEnumValue = errors.New("jtd: enum contains a non-string value")

	// ErrDuplicateEnumValue is returned when "enum" contains the same
	// string more than once.
	ErrDuplicateEnumValue = errors.New("jtd: enum contains a repeated value")

	// ErrRepeatedProperty is returned when the same key appears in both
	// "properties" and "optionalProperties".
	ErrRepeatedProperty = errors.New("jtd: property declared in both properties and optionalProperties")

	// ErrNonPropertiesMapping is returned when a "mapping" value is not
	// itself a properties-form schema.
	ErrNonPropertiesMapping = errors.New("jtd: mapping value is not of the properties form")

	// ErrNullableMapping is returned when a "mapping" value sets
	// "nullable" to true.
	ErrNullableMapping = errors.New("jtd: mapping value must not be nullable")

	// ErrMappingRepeatedDiscriminator is returned when a "mapping" value
	// redeclares the discriminator's own property name.
	ErrMappingRepeatedDiscriminator = errors.New("jtd: mapping value redeclares the discriminator property")
)

// === Validation Faults ===
var (
	// ErrMaxDepthExceeded is returned from Validate when following "ref"
	// chains recurses past Options.MaxDepth. It is surfaced directly to
	// the caller, never collected as a ValidationError.
	ErrMaxDepthExceeded = errors.New("jtd: max depth exceeded")
)

// errAborted is an internal sentinel used to unwind the validation walk
// once Options.MaxErrors has been reached. It never escapes Validate.
var errAborted = errors.New("jtd internal: max errors reached")

// SchemaError reports a single schema-construction or schema-verification
// failure, identifying the keyword and, where known, the path within the
// schema tree at which the failure was found.
type SchemaError struct {
	// Err is one of the sentinel errors declared above.
	Err error

	// Keyword is the JTD keyword most directly responsible, if any.
	Keyword string

	// Path is the sequence of keywords/keys traversed from the root
	// schema to reach the offending node.
	Path []string
}

func (e *SchemaError) Error() string {
	var where string
	switch {
	case e.Keyword != "" && len(e.Path) > 0:
		where = fmt.Sprintf(" (keyword %q at /%s)", e.Keyword, strings.Join(e.Path, "/"))
	case e.Keyword != "":
		where = fmt.Sprintf(" (keyword %q)", e.Keyword)
	case len(e.Path) > 0:
		where = fmt.Sprintf(" (at /%s)", strings.Join(e.Path, "/"))
	}
	return e.Err.Error() + where
}

// Unwrap lets errors.Is/errors.As match against the sentinel errors above.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

func schemaErr(err error, keyword string, path []string) *SchemaError {
	return &SchemaError{Err: err, Keyword: keyword, Path: append([]string(nil), path...)}
}
