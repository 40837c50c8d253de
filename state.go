package jtd

// validationState is owned exclusively by a single call to Validate. It
// holds the two path stacks the walker maintains in lockstep with the
// recursion, plus the accumulated errors and the options that bound the
// walk.
//
// schemaTokenFrames is a stack of stacks: a new frame is pushed on every
// "ref" traversal so that popping back out of a ref restores the
// enclosing schema path exactly, the same way the teacher's DynamicScope
// pushes and pops *Schema frames across $dynamicRef hops.
type validationState struct {
	root    *Schema
	options Options

	instanceTokens    []string
	schemaTokenFrames [][]string

	errors []ValidationError
}

func newValidationState(root *Schema, options Options) *validationState {
	return &validationState{
		root:              root,
		options:           options,
		instanceTokens:    []string{},
		schemaTokenFrames: [][]string{{}},
		errors:            []ValidationError{},
	}
}

func (vs *validationState) pushInstanceToken(token string) {
	vs.instanceTokens = append(vs.instanceTokens, token)
}

func (vs *validationState) popInstanceToken() {
	vs.instanceTokens = vs.instanceTokens[:len(vs.instanceTokens)-1]
}

func (vs *validationState) pushSchemaToken(token string) {
	top := len(vs.schemaTokenFrames) - 1
	vs.schemaTokenFrames[top] = append(vs.schemaTokenFrames[top], token)
}

func (vs *validationState) popSchemaToken() {
	top := len(vs.schemaTokenFrames) - 1
	frame := vs.schemaTokenFrames[top]
	vs.schemaTokenFrames[top] = frame[:len(frame)-1]
}

// pushSchemaFrame starts a fresh schema-token stack, entered when
// following a "ref".
func (vs *validationState) pushSchemaFrame(tokens ...string) {
	vs.schemaTokenFrames = append(vs.schemaTokenFrames, append([]string{}, tokens...))
}

func (vs *validationState) popSchemaFrame() {
	vs.schemaTokenFrames = vs.schemaTokenFrames[:len(vs.schemaTokenFrames)-1]
}

func (vs *validationState) depth() int {
	return len(vs.schemaTokenFrames)
}

// pushError records a ValidationError for the walker's current position.
// It returns errAborted once Options.MaxErrors has just been reached, the
// non-local exit the recursive walk propagates up to Validate.
func (vs *validationState) pushError() error {
	instancePath := append([]string{}, vs.instanceTokens...)
	schemaPath := append([]string{}, vs.schemaTokenFrames[len(vs.schemaTokenFrames)-1]...)

	vs.errors = append(vs.errors, ValidationError{
		InstancePath: instancePath,
		SchemaPath:   schemaPath,
	})

	if vs.options.MaxErrors > 0 && uint(len(vs.errors)) == vs.options.MaxErrors {
		return errAborted
	}
	return nil
}
