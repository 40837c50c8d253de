package jtd

// Integer ranges for the six fixed-width "type" tags, per RFC 8927
// section 3.3.3.
var integerRanges = map[Type][2]float64{
	TypeInt8:   {-128, 127},
	TypeUint8:  {0, 255},
	TypeInt16:  {-32768, 32767},
	TypeUint16: {0, 65535},
	TypeInt32:  {-2147483648, 2147483647},
	TypeUint32: {0, 4294967295},
}

// validateTypeForm implements the type form: instance must match the JSON
// shape the named primitive tag requires. float32/float64 accept any JSON
// number, integer, per the Open Question spec.md section 9 resolves in
// favor of the conformance suite's behavior.
func validateTypeForm(state *validationState, schema *Schema, instance any) error {
	state.pushSchemaToken(keywordType)
	defer state.popSchemaToken()

	ok := false
	switch schema.Type {
	case TypeBoolean:
		_, ok = instance.(bool)
	case TypeString:
		_, ok = instance.(string)
	case TypeTimestamp:
		s, isString := instance.(string)
		ok = isString && isRFC3339OffsetDateTime(s)
	case TypeFloat32, TypeFloat64:
		_, ok = numberValue(instance)
	default:
		if rng, known := integerRanges[schema.Type]; known {
			ok = inIntegerRange(instance, rng[0], rng[1])
		}
	}

	if ok {
		return nil
	}
	return state.pushError()
}
