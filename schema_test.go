package jtd_test

import (
	"testing"

	"github.com/kaptinlin/jsontypedef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValue_TypeMismatch(t *testing.T) {
	_, err := jtd.FromValue("not a mapping")
	require.Error(t, err)
	assert.ErrorIs(t, err, jtd.ErrTypeMismatch)
}

func TestFromValue_IllegalKeyword(t *testing.T) {
	_, err := jtd.FromValue(map[string]any{"bogus": true})
	require.Error(t, err)
	assert.ErrorIs(t, err, jtd.ErrIllegalKeyword)
}

func TestFromValue_PropertiesSchemaKeywords(t *testing.T) {
	raw := map[string]any{
		"metadata": map[string]any{"description": "a thing"},
		"nullable": true,
		"definitions": map[string]any{
			"id": map[string]any{"type": "string"},
		},
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
		"optionalProperties": map[string]any{
			"age": map[string]any{"type": "uint8"},
		},
		"additionalProperties": true,
	}

	s, err := jtd.FromValue(raw)
	require.NoError(t, err)
	assert.True(t, s.Nullable)
	assert.True(t, s.AdditionalProperties)
	require.Contains(t, s.Definitions, "id")
	assert.Equal(t, jtd.TypeString, s.Definitions["id"].Type)
	require.Contains(t, s.Properties, "name")
	require.Contains(t, s.OptionalProperties, "age")
}

func TestFromValue_EnumMustBeStrings(t *testing.T) {
	_, err := jtd.FromValue(map[string]any{"enum": []any{"a", 1.0}})
	require.Error(t, err)
	assert.ErrorIs(t, err, jtd.ErrNonStringEnumValue)
}

func TestFromValue_NestedElements(t *testing.T) {
	s, err := jtd.FromValue(map[string]any{
		"elements": map[string]any{"type": "boolean"},
	})
	require.NoError(t, err)
	require.NotNil(t, s.Elements)
	assert.Equal(t, jtd.TypeBoolean, s.Elements.Type)
}

func TestFromValue_IllegalKeywordNested(t *testing.T) {
	_, err := jtd.FromValue(map[string]any{
		"properties": map[string]any{
			"x": map[string]any{"notAKeyword": 1},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, jtd.ErrIllegalKeyword)
}

func TestForm(t *testing.T) {
	ref := "foo"
	tests := []struct {
		name string
		s    *jtd.Schema
		want jtd.Form
	}{
		{"empty", &jtd.Schema{}, jtd.FormEmpty},
		{"ref", &jtd.Schema{Ref: &ref}, jtd.FormRef},
		{"type", &jtd.Schema{Type: jtd.TypeString}, jtd.FormType},
		{"enum", &jtd.Schema{Enum: []string{"a"}}, jtd.FormEnum},
		{"elements", &jtd.Schema{Elements: &jtd.Schema{}}, jtd.FormElements},
		{"properties", &jtd.Schema{Properties: map[string]*jtd.Schema{}}, jtd.FormProperties},
		{"optionalProperties", &jtd.Schema{OptionalProperties: map[string]*jtd.Schema{}}, jtd.FormProperties},
		{"values", &jtd.Schema{Values: &jtd.Schema{}}, jtd.FormValues},
		{"discriminator", &jtd.Schema{Discriminator: "kind", Mapping: map[string]*jtd.Schema{}}, jtd.FormDiscriminator},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.Form())
		})
	}
}

func TestSchemaRoundTrip(t *testing.T) {
	raw := map[string]any{
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"age":  map[string]any{"type": "uint8"},
		},
	}
	s, err := jtd.FromValue(raw)
	require.NoError(t, err)

	data, err := s.MarshalJSON()
	require.NoError(t, err)

	var roundTripped jtd.Schema
	require.NoError(t, roundTripped.UnmarshalJSON(data))

	assert.Equal(t, s.Properties["name"].Type, roundTripped.Properties["name"].Type)
	assert.Equal(t, s.Properties["age"].Type, roundTripped.Properties["age"].Type)
}
