package jtd

// validForms enumerates, as a set of present structural fields, every
// combination the RFC allows. Each row lists which of
// {ref, type, enum, elements, properties, optionalProperties,
// additionalProperties, values, discriminator, mapping} is set.
var validForms = [][10]bool{
	{false, false, false, false, false, false, false, false, false, false}, // empty
	{true, false, false, false, false, false, false, false, false, false},  // ref
	{false, true, false, false, false, false, false, false, false, false},  // type
	{false, false, true, false, false, false, false, false, false, false},  // enum
	{false, false, false, true, false, false, false, false, false, false},  // elements
	{false, false, false, false, true, false, false, false, false, false},  // properties
	{false, false, false, false, false, true, false, false, false, false},  // optionalProperties
	{false, false, false, false, true, true, false, false, false, false},   // properties + optionalProperties
	{false, false, false, false, true, false, true, false, false, false},   // properties + additionalProperties
	{false, false, false, false, false, true, true, false, false, false},   // optionalProperties + additionalProperties
	{false, false, false, false, true, true, true, false, false, false},    // all three
	{false, false, false, false, false, false, false, true, false, false},  // values
	{false, false, false, false, false, false, false, false, true, true},   // discriminator + mapping
}

func formSignature(s *Schema) [10]bool {
	return [10]bool{
		s.Ref != nil,
		s.Type != "",
		s.Enum != nil,
		s.Elements != nil,
		s.Properties != nil,
		s.OptionalProperties != nil,
		s.AdditionalProperties,
		s.Values != nil,
		s.Discriminator != "",
		s.Mapping != nil,
	}
}

// Verify checks that s conforms to the RFC's form rules and that every
// "ref" resolves to a declared definition, recursing into every child
// schema. It returns s unchanged on success, or the first violation found
// as a *SchemaError.
func (s *Schema) Verify() (*Schema, error) {
	if err := verify(s, s, true, nil); err != nil {
		return nil, err
	}
	return s, nil
}

func verify(s, root *Schema, isRoot bool, path []string) error {
	sig := formSignature(s)
	formOK := false
	for _, valid := range validForms {
		if sig == valid {
			formOK = true
			break
		}
	}
	if !formOK {
		return schemaErr(ErrInvalidForm, "", path)
	}

	if s.Definitions != nil && !isRoot {
		return schemaErr(ErrNonRootDefinitions, keywordDefinitions, path)
	}

	if s.Ref != nil {
		if root.Definitions == nil {
			return schemaErr(ErrDanglingRef, keywordRef, path)
		}
		if _, ok := root.Definitions[*s.Ref]; !ok {
			return schemaErr(ErrDanglingRef, keywordRef, path)
		}
	}

	if s.Type != "" && !validTypes[s.Type] {
		return schemaErr(ErrInvalidType, keywordType, path)
	}

	if s.Enum != nil {
		if len(s.Enum) == 0 {
			return schemaErr(ErrEmptyEnum, keywordEnum, path)
		}
		seen := make(map[string]bool, len(s.Enum))
		for _, v := range s.Enum {
			if seen[v] {
				return schemaErr(ErrDuplicateEnumValue, keywordEnum, path)
			}
			seen[v] = true
		}
	}

	if s.Properties != nil && s.OptionalProperties != nil {
		for key := range s.Properties {
			if _, ok := s.OptionalProperties[key]; ok {
				return schemaErr(ErrRepeatedProperty, keywordProperties, path)
			}
		}
	}

	if s.Discriminator != "" && s.Mapping != nil {
		for _, key := range sortedKeys(s.Mapping) {
			m := s.Mapping[key]
			if m.Form() != FormProperties {
				return schemaErr(ErrNonPropertiesMapping, keywordMapping, appendPath(path, keywordMapping, key))
			}
			if m.Nullable {
				return schemaErr(ErrNullableMapping, keywordMapping, appendPath(path, keywordMapping, key))
			}
			if _, ok := m.Properties[s.Discriminator]; ok {
				return schemaErr(ErrMappingRepeatedDiscriminator, keywordMapping, appendPath(path, keywordMapping, key))
			}
			if _, ok := m.OptionalProperties[s.Discriminator]; ok {
				return schemaErr(ErrMappingRepeatedDiscriminator, keywordMapping, appendPath(path, keywordMapping, key))
			}
		}
	}

	for _, key := range sortedKeys(s.Definitions) {
		if err := verify(s.Definitions[key], root, false, appendPath(path, keywordDefinitions, key)); err != nil {
			return err
		}
	}

	if s.Elements != nil {
		if err := verify(s.Elements, root, false, appendPath(path, keywordElements)); err != nil {
			return err
		}
	}

	for _, key := range sortedKeys(s.Properties) {
		if err := verify(s.Properties[key], root, false, appendPath(path, keywordProperties, key)); err != nil {
			return err
		}
	}

	for _, key := range sortedKeys(s.OptionalProperties) {
		if err := verify(s.OptionalProperties[key], root, false, appendPath(path, keywordOptionalProperties, key)); err != nil {
			return err
		}
	}

	if s.Values != nil {
		if err := verify(s.Values, root, false, appendPath(path, keywordValues)); err != nil {
			return err
		}
	}

	for _, key := range sortedKeys(s.Mapping) {
		if err := verify(s.Mapping[key], root, false, appendPath(path, keywordMapping, key)); err != nil {
			return err
		}
	}

	return nil
}
