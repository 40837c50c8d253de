package jtd

import "strconv"

// validateElementsForm implements the elements form: the instance must be
// a JSON array, each element of which is walked against the schema's
// "elements" sub-schema in order.
func validateElementsForm(state *validationState, schema *Schema, instance any) error {
	state.pushSchemaToken(keywordElements)
	defer state.popSchemaToken()

	arr, ok := instance.([]any)
	if !ok {
		return state.pushError()
	}

	for i, elem := range arr {
		state.pushInstanceToken(strconv.Itoa(i))
		err := walk(state, schema.Elements, elem, nil)
		state.popInstanceToken()
		if err != nil {
			return err
		}
	}
	return nil
}
