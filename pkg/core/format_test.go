package core_test

import (
	"testing"

	"github.com/aretw0/revdata/pkg/core"
	"github.com/stretchr/testify/assert"
)

// countingLookup records every name resolution.
type countingLookup struct {
	names map[core.ElementID]string
	calls int
}

func (l *countingLookup) ResolveName(id core.ElementID) (string, bool) {
	l.calls++
	name, ok := l.names[id]
	return name, ok
}

func (l *countingLookup) ResolveElement(id core.ElementID) (core.Element, bool) {
	return nil, false
}

func TestFormat(t *testing.T) {
	lookup := &countingLookup{names: map[core.ElementID]string{7: "Level 1", 0: "Root"}}

	tests := []struct {
		name  string
		value core.Value
		want  string
	}{
		{"number keeps display text", core.NumberValue{Raw: 1.2, Display: "1200 mm"}, "1200 mm"},
		{"number without display", core.NumberValue{Raw: 2.5}, "2.5"},
		{"reference resolves name", core.ReferenceValue{ID: 7}, "Level 1"},
		{"reference to id zero", core.ReferenceValue{ID: 0}, "Root"},
		{"reference unknown id", core.ReferenceValue{ID: 99}, "99"},
		{"reference invalid", core.ReferenceValue{ID: core.InvalidElementID}, "-1"},
		{"yes/no zero", core.IntegerValue{Value: 0, Semantic: core.SemanticYesNo}, "False"},
		{"yes/no one", core.IntegerValue{Value: 1, Semantic: core.SemanticYesNo}, "True"},
		{"yes/no negative", core.IntegerValue{Value: -4, Semantic: core.SemanticYesNo}, "True"},
		{"plain integer", core.IntegerValue{Value: 42}, "42"},
		{"negative integer", core.IntegerValue{Value: -17}, "-17"},
		{"text", core.TextValue{Value: "Initial issue"}, "Initial issue"},
		{"empty text", core.TextValue{}, ""},
		{"unexposed", core.UnexposedValue{}, "Unexposed parameter"},
		{"nil value", nil, "Unexposed parameter"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, core.Format(tc.value, lookup))
		})
	}
}

func TestFormat_NegativeReferenceSkipsLookup(t *testing.T) {
	for _, id := range []core.ElementID{-1, -2, -1000} {
		lookup := &countingLookup{}
		got := core.Format(core.ReferenceValue{ID: id}, lookup)

		assert.Equal(t, id.String(), got)
		assert.Zero(t, lookup.calls, "lookup must not be consulted for id %d", id)
	}
}

func TestFormat_NilLookup(t *testing.T) {
	assert.Equal(t, "12", core.Format(core.ReferenceValue{ID: 12}, nil))
}

func TestFormat_YesNoOnlyAppliesToIntegers(t *testing.T) {
	// Only IntegerValue carries a semantic type; other kinds ignore it by construction.
	assert.Equal(t, "0", core.Format(core.IntegerValue{Value: 0}, nil))
	assert.Equal(t, "0", core.Format(core.TextValue{Value: "0"}, nil))
}

func TestStorageKinds(t *testing.T) {
	assert.Equal(t, core.Number, core.NumberValue{}.Kind())
	assert.Equal(t, core.Reference, core.ReferenceValue{}.Kind())
	assert.Equal(t, core.Integer, core.IntegerValue{}.Kind())
	assert.Equal(t, core.Text, core.TextValue{}.Kind())
	assert.Equal(t, core.Unexposed, core.UnexposedValue{}.Kind())
	assert.Equal(t, "reference", core.Reference.String())
}
