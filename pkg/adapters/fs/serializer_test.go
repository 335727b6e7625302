package fs

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/aretw0/revdata/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializers(t *testing.T) {
	serializers := DefaultSerializers(false)

	tests := []struct {
		ext  string
		data string
	}{
		{".json", `{"title": "T", "elements": [{"id": 1, "parameters": [{"name": "P", "storage": "integer", "value": 4}]}]}`},
		{".yaml", "title: T\nelements:\n  - id: 1\n    parameters:\n      - {name: P, storage: integer, value: 4}\n"},
		{".yml", "title: T\nelements:\n  - id: 1\n    parameters:\n      - {name: P, storage: integer, value: 4}\n"},
		{".md", "---\ntitle: T\nelements:\n  - id: 1\n    parameters:\n      - {name: P, storage: integer, value: 4}\n---\n"},
	}

	for _, tc := range tests {
		t.Run(tc.ext, func(t *testing.T) {
			s, ok := serializers[tc.ext]
			require.True(t, ok)

			snap, err := s.Parse(strings.NewReader(tc.data))
			require.NoError(t, err)
			assert.Equal(t, "T", snap.Title)
			require.Len(t, snap.Elements, 1)
			require.Len(t, snap.Elements[0].Parameters, 1)

			v, err := snap.Elements[0].Parameters[0].toValue(true)
			require.NoError(t, err)
			assert.Equal(t, core.IntegerValue{Value: 4}, v)
		})
	}
}

func TestJSONSerializer_Strict(t *testing.T) {
	data := `{"title": "T", "extra": true}`

	_, err := NewJSONSerializer(false).Parse(strings.NewReader(data))
	require.NoError(t, err)

	_, err = NewJSONSerializer(true).Parse(strings.NewReader(data))
	assert.Error(t, err)
}

func TestYAMLSerializer_Empty(t *testing.T) {
	snap, err := NewYAMLSerializer(true).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, snap.Elements)
}

func TestParameterSpec_ToValue(t *testing.T) {
	tests := []struct {
		name string
		spec ParameterSpec
		want core.Value
	}{
		{"number from json", ParameterSpec{Storage: "double", Value: json.Number("1.5"), Display: "1500 mm"}, core.NumberValue{Raw: 1.5, Display: "1500 mm"}},
		{"number from string", ParameterSpec{Storage: "number", Value: "2"}, core.NumberValue{Raw: 2}},
		{"reference missing value", ParameterSpec{Storage: "reference"}, core.ReferenceValue{ID: core.InvalidElementID}},
		{"reference", ParameterSpec{Storage: "ElementId", Value: 12}, core.ReferenceValue{ID: 12}},
		{"yes/no from bool", ParameterSpec{Storage: "integer", Semantic: "Yes/No", Value: true}, core.IntegerValue{Value: 1, Semantic: core.SemanticYesNo}},
		{"integer from float", ParameterSpec{Storage: "int", Value: 3.0}, core.IntegerValue{Value: 3}},
		{"text from number", ParameterSpec{Storage: "string", Value: 12}, core.TextValue{Value: "12"}},
		{"text empty", ParameterSpec{Storage: "text"}, core.TextValue{}},
		{"no storage", ParameterSpec{}, core.UnexposedValue{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.spec.toValue(true)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParameterSpec{Name: "P", Storage: "integer", Value: 1.5}.toValue(false)
	assert.Error(t, err)

	for _, v := range []float64{1e20, -1e20, 9223372036854775808} {
		_, err = ParameterSpec{Name: "P", Storage: "integer", Value: v}.toValue(false)
		assert.ErrorContains(t, err, "out of range", "value %v", v)
	}
	got, err := ParameterSpec{Storage: "integer", Value: float64(-9223372036854775808)}.toValue(false)
	require.NoError(t, err)
	assert.Equal(t, core.IntegerValue{Value: math.MinInt64}, got)
}
