package jtd_test

import (
	"testing"

	"github.com/kaptinlin/jsontypedef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFromValue(t *testing.T, raw map[string]any) *jtd.Schema {
	t.Helper()
	s, err := jtd.FromValue(raw)
	require.NoError(t, err)
	return s
}

func TestVerify_ValidForms(t *testing.T) {
	cases := []map[string]any{
		{},
		{"ref": "foo", "definitions": map[string]any{"foo": map[string]any{}}},
		{"type": "string"},
		{"enum": []any{"a", "b"}},
		{"elements": map[string]any{}},
		{"properties": map[string]any{"a": map[string]any{}}},
		{"optionalProperties": map[string]any{"a": map[string]any{}}},
		{
			"properties":         map[string]any{"a": map[string]any{}},
			"optionalProperties": map[string]any{"b": map[string]any{}},
		},
		{"properties": map[string]any{"a": map[string]any{}}, "additionalProperties": true},
		{"optionalProperties": map[string]any{"a": map[string]any{}}, "additionalProperties": true},
		{"values": map[string]any{}},
		{
			"discriminator": "kind",
			"mapping": map[string]any{
				"a": map[string]any{"properties": map[string]any{}},
			},
		},
	}

	for i, raw := range cases {
		s := mustFromValue(t, raw)
		_, err := s.Verify()
		assert.NoErrorf(t, err, "case %d: %+v", i, raw)
	}
}

func TestVerify_InvalidForm(t *testing.T) {
	s := mustFromValue(t, map[string]any{"type": "string", "enum": []any{"a"}})
	_, err := s.Verify()
	require.Error(t, err)
	assert.ErrorIs(t, err, jtd.ErrInvalidForm)
}

func TestVerify_NonRootDefinitions(t *testing.T) {
	s := mustFromValue(t, map[string]any{
		"elements": map[string]any{
			"definitions": map[string]any{"a": map[string]any{}},
		},
	})
	_, err := s.Verify()
	require.Error(t, err)
	assert.ErrorIs(t, err, jtd.ErrNonRootDefinitions)
}

func TestVerify_DanglingRef(t *testing.T) {
	s := mustFromValue(t, map[string]any{"ref": "missing"})
	_, err := s.Verify()
	require.Error(t, err)
	assert.ErrorIs(t, err, jtd.ErrDanglingRef)

	s = mustFromValue(t, map[string]any{
		"definitions": map[string]any{"a": map[string]any{}},
		"ref":         "b",
	})
	_, err = s.Verify()
	require.Error(t, err)
	assert.ErrorIs(t, err, jtd.ErrDanglingRef)
}

func TestVerify_InvalidType(t *testing.T) {
	s := mustFromValue(t, map[string]any{"type": "bogus"})
	_, err := s.Verify()
	require.Error(t, err)
	assert.ErrorIs(t, err, jtd.ErrInvalidType)
}

func TestVerify_Enum(t *testing.T) {
	_, err := mustFromValue(t, map[string]any{"enum": []any{}}).Verify()
	require.Error(t, err)
	assert.ErrorIs(t, err, jtd.ErrEmptyEnum)

	_, err = mustFromValue(t, map[string]any{"enum": []any{"a", "a"}}).Verify()
	require.Error(t, err)
	assert.ErrorIs(t, err, jtd.ErrDuplicateEnumValue)
}

func TestVerify_RepeatedProperty(t *testing.T) {
	s := mustFromValue(t, map[string]any{
		"properties":         map[string]any{"a": map[string]any{}},
		"optionalProperties": map[string]any{"a": map[string]any{}},
	})
	_, err := s.Verify()
	require.Error(t, err)
	assert.ErrorIs(t, err, jtd.ErrRepeatedProperty)
}

func TestVerify_InvalidMapping(t *testing.T) {
	tests := []struct {
		name    string
		mapping map[string]any
		want    error
	}{
		{
			name:    "non-properties form",
			mapping: map[string]any{"a": map[string]any{"type": "string"}},
			want:    jtd.ErrNonPropertiesMapping,
		},
		{
			name:    "nullable",
			mapping: map[string]any{"a": map[string]any{"properties": map[string]any{}, "nullable": true}},
			want:    jtd.ErrNullableMapping,
		},
		{
			name: "discriminator shadowed in properties",
			mapping: map[string]any{
				"a": map[string]any{"properties": map[string]any{"kind": map[string]any{}}},
			},
			want: jtd.ErrMappingRepeatedDiscriminator,
		},
		{
			name: "discriminator shadowed in optionalProperties",
			mapping: map[string]any{
				"a": map[string]any{"optionalProperties": map[string]any{"kind": map[string]any{}}},
			},
			want: jtd.ErrMappingRepeatedDiscriminator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustFromValue(t, map[string]any{
				"discriminator": "kind",
				"mapping":       tt.mapping,
			})
			_, err := s.Verify()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVerify_Idempotent(t *testing.T) {
	s := mustFromValue(t, map[string]any{
		"properties": map[string]any{"name": map[string]any{"type": "string"}},
	})
	first, err := s.Verify()
	require.NoError(t, err)
	second, err := first.Verify()
	require.NoError(t, err)
	assert.Same(t, first, second)
}
