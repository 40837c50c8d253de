package jtd

// validateValuesForm implements the values form: the instance must be a
// JSON object, each value of which is walked against the schema's
// "values" sub-schema.
func validateValuesForm(state *validationState, schema *Schema, instance any) error {
	state.pushSchemaToken(keywordValues)
	defer state.popSchemaToken()

	obj, ok := instance.(map[string]any)
	if !ok {
		return state.pushError()
	}

	for _, key := range objectKeys(obj) {
		state.pushInstanceToken(key)
		err := walk(state, schema.Values, obj[key], nil)
		state.popInstanceToken()
		if err != nil {
			return err
		}
	}
	return nil
}
