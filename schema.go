package jtd

import (
	"sort"

	json "github.com/goccy/go-json"
)

// Schema is the in-memory representation of a JSON Type Definition schema.
// It is immutable once returned by FromValue: callers should treat every
// field as read-only.
type Schema struct {
	Metadata             map[string]any
	Nullable             bool
	Definitions          map[string]*Schema
	Ref                  *string
	Type                 Type
	Enum                 []string
	Elements             *Schema
	Properties           map[string]*Schema
	OptionalProperties   map[string]*Schema
	AdditionalProperties bool
	Values               *Schema
	Discriminator        string
	Mapping              map[string]*Schema
}

// FromValue builds a Schema from a decoded JSON value, which must be a
// string-keyed mapping. It fails with a *SchemaError wrapping
// ErrTypeMismatch if v is not a mapping, or ErrIllegalKeyword if the
// mapping contains a key outside the fixed JTD keyword set.
//
// FromValue performs only the per-field shape conversions Go's static
// typing requires (see DESIGN.md); cross-field and content checks such as
// enum non-emptiness, mapping/discriminator rules, and form-signature
// validity are the job of Schema.Verify.
func FromValue(v any) (*Schema, error) {
	return fromValue(v, nil)
}

func fromValue(v any, path []string) (*Schema, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, schemaErr(ErrTypeMismatch, "", path)
	}

	for key := range m {
		if !knownKeywords[key] {
			return nil, schemaErr(ErrIllegalKeyword, key, path)
		}
	}

	s := &Schema{}

	if raw, ok := m[keywordMetadata]; ok {
		md, ok := raw.(map[string]any)
		if !ok {
			return nil, schemaErr(ErrTypeMismatch, keywordMetadata, path)
		}
		s.Metadata = md
	}

	if raw, ok := m[keywordNullable]; ok {
		b, ok := raw.(bool)
		if !ok {
			return nil, schemaErr(ErrTypeMismatch, keywordNullable, path)
		}
		s.Nullable = b
	}

	if raw, ok := m[keywordDefinitions]; ok {
		defs, err := fromValueMap(raw, keywordDefinitions, path)
		if err != nil {
			return nil, err
		}
		s.Definitions = defs
	}

	if raw, ok := m[keywordRef]; ok {
		str, ok := raw.(string)
		if !ok {
			return nil, schemaErr(ErrTypeMismatch, keywordRef, path)
		}
		s.Ref = &str
	}

	if raw, ok := m[keywordType]; ok {
		str, ok := raw.(string)
		if !ok {
			return nil, schemaErr(ErrTypeMismatch, keywordType, path)
		}
		s.Type = Type(str)
	}

	if raw, ok := m[keywordEnum]; ok {
		arr, ok := raw.([]any)
		if !ok {
			return nil, schemaErr(ErrTypeMismatch, keywordEnum, path)
		}
		values := make([]string, len(arr))
		for i, elem := range arr {
			str, ok := elem.(string)
			if !ok {
				return nil, schemaErr(ErrNonStringEnumValue, keywordEnum, path)
			}
			values[i] = str
		}
		s.Enum = values
	}

	if raw, ok := m[keywordElements]; ok {
		child, err := fromValue(raw, appendPath(path, keywordElements))
		if err != nil {
			return nil, err
		}
		s.Elements = child
	}

	if raw, ok := m[keywordProperties]; ok {
		props, err := fromValueMap(raw, keywordProperties, path)
		if err != nil {
			return nil, err
		}
		s.Properties = props
	}

	if raw, ok := m[keywordOptionalProperties]; ok {
		props, err := fromValueMap(raw, keywordOptionalProperties, path)
		if err != nil {
			return nil, err
		}
		s.OptionalProperties = props
	}

	if raw, ok := m[keywordAdditionalProperties]; ok {
		b, ok := raw.(bool)
		if !ok {
			return nil, schemaErr(ErrTypeMismatch, keywordAdditionalProperties, path)
		}
		s.AdditionalProperties = b
	}

	if raw, ok := m[keywordValues]; ok {
		child, err := fromValue(raw, appendPath(path, keywordValues))
		if err != nil {
			return nil, err
		}
		s.Values = child
	}

	if raw, ok := m[keywordDiscriminator]; ok {
		str, ok := raw.(string)
		if !ok {
			return nil, schemaErr(ErrTypeMismatch, keywordDiscriminator, path)
		}
		s.Discriminator = str
	}

	if raw, ok := m[keywordMapping]; ok {
		mapping, err := fromValueMap(raw, keywordMapping, path)
		if err != nil {
			return nil, err
		}
		s.Mapping = mapping
	}

	return s, nil
}

// fromValueMap converts a raw JSON object into a map of named sub-schemas,
// used for "definitions", "properties", "optionalProperties", and
// "mapping".
func fromValueMap(raw any, keyword string, path []string) (map[string]*Schema, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, schemaErr(ErrTypeMismatch, keyword, path)
	}
	out := make(map[string]*Schema, len(m))
	for key, val := range m {
		child, err := fromValue(val, appendPath(path, keyword, key))
		if err != nil {
			return nil, err
		}
		out[key] = child
	}
	return out, nil
}

// appendPath returns path with tokens appended, without risking aliasing
// the caller's backing array across sibling recursive calls.
func appendPath(path []string, tokens ...string) []string {
	out := make([]string, 0, len(path)+len(tokens))
	out = append(out, path...)
	out = append(out, tokens...)
	return out
}

// Form returns the discriminant of s, derived from which structural
// keywords are present. Precedence when a malformed schema nominally sets
// more than one structural field — which Verify would reject — is ref >
// type > enum > elements > properties/optionalProperties > values >
// discriminator > empty.
func (s *Schema) Form() Form {
	switch {
	case s.Ref != nil:
		return FormRef
	case s.Type != "":
		return FormType
	case s.Enum != nil:
		return FormEnum
	case s.Elements != nil:
		return FormElements
	case s.Properties != nil || s.OptionalProperties != nil:
		return FormProperties
	case s.Values != nil:
		return FormValues
	case s.Discriminator != "" || s.Mapping != nil:
		return FormDiscriminator
	default:
		return FormEmpty
	}
}

// sortedKeys returns m's keys in ascending order, giving deterministic,
// reproducible iteration over Go's unordered maps wherever a schema's
// "properties"/"optionalProperties"/"mapping" table is walked.
func sortedKeys(m map[string]*Schema) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// objectKeys returns m's keys in ascending order, the same determinism
// sortedKeys gives the schema-side maps, applied to an instance object
// walked by the "values" form or scanned by the properties form's
// additionalProperties check.
func objectKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// schemaJSON mirrors Schema's field set with `json` tags, used only for
// marshaling/unmarshaling; Schema itself exposes plain Go types to callers
// instead of a wire-format shape.
type schemaJSON struct {
	Metadata             map[string]any     `json:"metadata,omitempty"`
	Nullable             bool               `json:"nullable,omitempty"`
	Definitions          map[string]*Schema `json:"definitions,omitempty"`
	Ref                  *string            `json:"ref,omitempty"`
	Type                 Type               `json:"type,omitempty"`
	Enum                 []string           `json:"enum,omitempty"`
	Elements             *Schema            `json:"elements,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	OptionalProperties   map[string]*Schema `json:"optionalProperties,omitempty"`
	AdditionalProperties bool               `json:"additionalProperties,omitempty"`
	Values               *Schema            `json:"values,omitempty"`
	Discriminator        string             `json:"discriminator,omitempty"`
	Mapping              map[string]*Schema `json:"mapping,omitempty"`
}

// MarshalJSON re-serializes s into its canonical JTD wire form, using
// goccy/go-json for encoding speed the way the teacher package does for
// all its schema (de)serialization.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(schemaJSON(*s))
}

// UnmarshalJSON decodes JTD schema JSON directly into a Schema, bypassing
// FromValue's generic any-typed path. Unlike FromValue, it relies on
// goccy/go-json's own struct-tag matching rather than the explicit
// keyword-by-keyword walk, so it does not reject unknown keys; callers
// that need IllegalKeyword detection should decode into `any` and call
// FromValue instead.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var raw schemaJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Schema(raw)
	return nil
}
