// internal/domain/catalog/validation_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleSelectGroup() OptionGroup {
	return OptionGroup{
		ID:            1,
		ProductID:     1,
		Name:          "Ponto da carne",
		IsRequired:    true,
		MinSelections: 1,
		MaxSelections: 1,
		Options: []Option{
			{ID: 10, GroupID: 1, Name: "Mal passada", ExtraPrice: 0, IsActive: true},
			{ID: 11, GroupID: 1, Name: "Ao ponto", ExtraPrice: 0, IsActive: true},
			{ID: 12, GroupID: 1, Name: "Bem passada", ExtraPrice: 0, IsActive: true},
		},
	}
}

func extrasGroup() OptionGroup {
	return OptionGroup{
		ID:            2,
		ProductID:     1,
		Name:          "Adicionais",
		IsRequired:    false,
		MinSelections: 0,
		MaxSelections: 3,
		Options: []Option{
			{ID: 20, GroupID: 2, Name: "Cheddar extra", ExtraPrice: 500, IsActive: true},
			{ID: 21, GroupID: 2, Name: "Bacon", ExtraPrice: 400, IsActive: true},
			{ID: 22, GroupID: 2, Name: "Ovo", ExtraPrice: 300, IsActive: false},
		},
	}
}

func TestValidateSelectionsRequiredGroupEmpty(t *testing.T) {
	groups := []OptionGroup{singleSelectGroup()}

	result := ValidateSelections(groups, map[uint][]uint{})

	assert.False(t, result.Valid)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, uint(1), result.Violations[0].GroupID)
	assert.Contains(t, result.Violations[0].Message, "at least one")
}

func TestValidateSelectionsValid(t *testing.T) {
	groups := []OptionGroup{singleSelectGroup(), extrasGroup()}
	selected := map[uint][]uint{
		1: {11},
		2: {20, 21},
	}

	result := ValidateSelections(groups, selected)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Violations)
}

func TestValidateSelectionsTooManyYieldsSingleViolation(t *testing.T) {
	// Two options in a required max-1 group: one "at most" violation,
	// not a second error on top of it.
	groups := []OptionGroup{singleSelectGroup()}
	selected := map[uint][]uint{1: {10, 11}}

	result := ValidateSelections(groups, selected)

	assert.False(t, result.Valid)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0].Message, "at most 1")
}

func TestValidateSelectionsInactiveOptionDiscarded(t *testing.T) {
	// The inactive option does not count, which empties a required group.
	group := singleSelectGroup()
	group.Options[0].IsActive = false
	groups := []OptionGroup{group}
	selected := map[uint][]uint{1: {10}}

	result := ValidateSelections(groups, selected)

	assert.False(t, result.Valid)
	require.Len(t, result.Violations, 1)
}

func TestValidateSelectionsUnknownOptionDiscarded(t *testing.T) {
	groups := []OptionGroup{extrasGroup()}
	selected := map[uint][]uint{2: {999}}

	result := ValidateSelections(groups, selected)

	// Optional group: an unknown id simply counts as nothing selected.
	assert.True(t, result.Valid)
}

func TestValidateSelectionsMinimum(t *testing.T) {
	group := extrasGroup()
	group.MinSelections = 2
	groups := []OptionGroup{group}
	selected := map[uint][]uint{2: {20}}

	result := ValidateSelections(groups, selected)

	assert.False(t, result.Valid)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0].Message, "at least 2")
}

func TestValidateSelectionsAccumulatesAcrossGroups(t *testing.T) {
	groups := []OptionGroup{singleSelectGroup(), extrasGroup()}
	selected := map[uint][]uint{
		2: {20, 21, 20, 21}, // duplicates count toward the cap
	}

	result := ValidateSelections(groups, selected)

	assert.False(t, result.Valid)
	require.Len(t, result.Violations, 2)
}

func TestResolveSelections(t *testing.T) {
	groups := []OptionGroup{singleSelectGroup(), extrasGroup()}
	selected := map[uint][]uint{
		1: {11},
		2: {20, 21},
	}

	snapshots := ResolveSelections(groups, selected)

	require.Len(t, snapshots, 3)
	assert.Equal(t, "Ao ponto", snapshots[0].Name)
	assert.Equal(t, int64(0), snapshots[0].ExtraPrice)
	assert.Equal(t, "Cheddar extra", snapshots[1].Name)
	assert.Equal(t, int64(500), snapshots[1].ExtraPrice)
	assert.Equal(t, "Bacon", snapshots[2].Name)
	assert.Equal(t, int64(400), snapshots[2].ExtraPrice)
}

func TestResolveSelectionsSkipsInactive(t *testing.T) {
	groups := []OptionGroup{extrasGroup()}
	selected := map[uint][]uint{2: {20, 22}}

	snapshots := ResolveSelections(groups, selected)

	require.Len(t, snapshots, 1)
	assert.Equal(t, uint(20), snapshots[0].OptionID)
}

func TestOptionGroupValidate(t *testing.T) {
	tests := []struct {
		name    string
		group   OptionGroup
		wantErr bool
	}{
		{"valid optional", OptionGroup{MinSelections: 0, MaxSelections: 3}, false},
		{"valid required", OptionGroup{IsRequired: true, MinSelections: 1, MaxSelections: 1}, false},
		{"min above max", OptionGroup{MinSelections: 3, MaxSelections: 2}, true},
		{"zero max", OptionGroup{MinSelections: 0, MaxSelections: 0}, true},
		{"negative min", OptionGroup{MinSelections: -1, MaxSelections: 1}, true},
		{"required with zero min", OptionGroup{IsRequired: true, MinSelections: 0, MaxSelections: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.group.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
