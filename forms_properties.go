package jtd

// validatePropertiesForm implements the properties form. parentTag, when
// non-nil, names the discriminator property of the schema this call was
// reached through via a discriminator hop; such a key is exempt from the
// additionalProperties check below.
func validatePropertiesForm(state *validationState, schema *Schema, instance any, parentTag *string) error {
	obj, ok := instance.(map[string]any)
	if !ok {
		if schema.Properties != nil {
			state.pushSchemaToken(keywordProperties)
		} else {
			state.pushSchemaToken(keywordOptionalProperties)
		}
		err := state.pushError()
		state.popSchemaToken()
		return err
	}

	if schema.Properties != nil {
		state.pushSchemaToken(keywordProperties)
		for _, key := range sortedKeys(schema.Properties) {
			state.pushSchemaToken(key)
			if sub, present := obj[key]; present {
				state.pushInstanceToken(key)
				err := walk(state, schema.Properties[key], sub, nil)
				state.popInstanceToken()
				if err != nil {
					state.popSchemaToken()
					state.popSchemaToken()
					return err
				}
			} else if err := state.pushError(); err != nil {
				state.popSchemaToken()
				state.popSchemaToken()
				return err
			}
			state.popSchemaToken()
		}
		state.popSchemaToken()
	}

	if schema.OptionalProperties != nil {
		state.pushSchemaToken(keywordOptionalProperties)
		for _, key := range sortedKeys(schema.OptionalProperties) {
			state.pushSchemaToken(key)
			if sub, present := obj[key]; present {
				state.pushInstanceToken(key)
				err := walk(state, schema.OptionalProperties[key], sub, nil)
				state.popInstanceToken()
				if err != nil {
					state.popSchemaToken()
					state.popSchemaToken()
					return err
				}
			}
			state.popSchemaToken()
		}
		state.popSchemaToken()
	}

	if !schema.AdditionalProperties {
		for _, key := range objectKeys(obj) {
			if parentTag != nil && key == *parentTag {
				continue
			}
			if _, declared := schema.Properties[key]; declared {
				continue
			}
			if _, declared := schema.OptionalProperties[key]; declared {
				continue
			}
			state.pushInstanceToken(key)
			err := state.pushError()
			state.popInstanceToken()
			if err != nil {
				return err
			}
		}
	}

	return nil
}
