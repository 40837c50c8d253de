package jtd

import (
	"github.com/kaptinlin/jsonpointer"
)

// Options bounds a single Validate call.
type Options struct {
	// MaxDepth caps how many "ref" hops may be followed before
	// ErrMaxDepthExceeded is raised. Zero means unlimited.
	MaxDepth uint

	// MaxErrors caps how many ValidationError values a call collects
	// before returning early. Zero means unlimited.
	MaxErrors uint
}

// ValidationError pairs the instance location that failed to validate
// with the schema location that rejected it. It carries no sub-kind: the
// last element of SchemaPath (e.g. "type", "enum", "properties",
// "mapping") identifies which keyword produced it.
type ValidationError struct {
	InstancePath []string `json:"instancePath"`
	SchemaPath   []string `json:"schemaPath"`
}

// InstancePointer formats InstancePath as an RFC 6901 JSON Pointer, e.g.
// "/phones/1".
func (e ValidationError) InstancePointer() string {
	return jsonpointer.Format(e.InstancePath...)
}

// SchemaPointer formats SchemaPath as an RFC 6901 JSON Pointer, e.g.
// "/properties/phones/elements/type".
func (e ValidationError) SchemaPointer() string {
	return jsonpointer.Format(e.SchemaPath...)
}

// Validate validates instance against schema, returning every
// ValidationError the walk collects, in the order the RFC's algorithm
// produces them.
//
// It returns ErrMaxDepthExceeded, rather than a collected error, if
// following "ref" chains recurses past opts.MaxDepth.
func Validate(schema *Schema, instance any, opts Options) ([]ValidationError, error) {
	state := newValidationState(schema, opts)

	if err := walk(state, schema, instance, nil); err != nil && err != errAborted {
		return nil, err
	}

	return state.errors, nil
}

// walk is the recursive instance-validation procedure. parentTag, when
// non-nil, names the discriminator property of the properties-form schema
// this call was reached through via a discriminator hop; the properties
// form consults it to exempt the discriminator key from its
// additionalProperties check.
func walk(state *validationState, schema *Schema, instance any, parentTag *string) error {
	if schema.Nullable && instance == nil {
		return nil
	}

	switch schema.Form() {
	case FormEmpty:
		return nil
	case FormRef:
		return validateRefForm(state, schema, instance)
	case FormType:
		return validateTypeForm(state, schema, instance)
	case FormEnum:
		return validateEnumForm(state, schema, instance)
	case FormElements:
		return validateElementsForm(state, schema, instance)
	case FormProperties:
		return validatePropertiesForm(state, schema, instance, parentTag)
	case FormValues:
		return validateValuesForm(state, schema, instance)
	case FormDiscriminator:
		return validateDiscriminatorForm(state, schema, instance)
	default:
		return nil
	}
}
