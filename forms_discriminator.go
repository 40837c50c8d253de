package jtd

// validateDiscriminatorForm implements the discriminator form: the
// instance must be an object carrying the discriminator property as a
// string that names one of the schema's mapping entries, and the instance
// as a whole is then walked against that entry with the discriminator key
// threaded through as parentTag.
func validateDiscriminatorForm(state *validationState, schema *Schema, instance any) error {
	obj, ok := instance.(map[string]any)
	if !ok {
		state.pushSchemaToken(keywordDiscriminator)
		err := state.pushError()
		state.popSchemaToken()
		return err
	}

	tagValue, present := obj[schema.Discriminator]
	if !present {
		state.pushSchemaToken(keywordDiscriminator)
		err := state.pushError()
		state.popSchemaToken()
		return err
	}

	tag, isString := tagValue.(string)
	if !isString {
		state.pushSchemaToken(keywordDiscriminator)
		state.pushInstanceToken(schema.Discriminator)
		err := state.pushError()
		state.popInstanceToken()
		state.popSchemaToken()
		return err
	}

	sub, known := schema.Mapping[tag]
	if !known {
		state.pushSchemaToken(keywordMapping)
		state.pushInstanceToken(schema.Discriminator)
		err := state.pushError()
		state.popInstanceToken()
		state.popSchemaToken()
		return err
	}

	state.pushSchemaToken(keywordMapping)
	state.pushSchemaToken(tag)
	err := walk(state, sub, instance, &schema.Discriminator)
	state.popSchemaToken()
	state.popSchemaToken()
	return err
}
