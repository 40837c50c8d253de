package jtd

// validateRefForm implements the ref form: depth-checked recursion into
// the root schema's definitions table, entered through a fresh
// schema-token frame so that popping back out restores the enclosing
// schema path.
//
// Grounded on the teacher's DynamicScope push/pop discipline for
// $dynamicRef hops, adapted to JTD's simpler name-based (not pointer- or
// anchor-based) ref resolution.
func validateRefForm(state *validationState, schema *Schema, instance any) error {
	if state.options.MaxDepth > 0 && uint(state.depth()) == state.options.MaxDepth {
		return ErrMaxDepthExceeded
	}

	state.pushSchemaFrame(keywordDefinitions, *schema.Ref)
	err := walk(state, state.root.Definitions[*schema.Ref], instance, nil)
	state.popSchemaFrame()
	return err
}
