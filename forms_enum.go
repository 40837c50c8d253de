package jtd

// validateEnumForm implements the enum form: the instance must be a
// string present in the schema's declared enum values.
func validateEnumForm(state *validationState, schema *Schema, instance any) error {
	state.pushSchemaToken(keywordEnum)
	defer state.popSchemaToken()

	s, ok := instance.(string)
	if ok {
		for _, v := range schema.Enum {
			if v == s {
				return nil
			}
		}
	}
	return state.pushError()
}
