// internal/domain/catalog/validation.go
package catalog

import (
	"fmt"

	"github.com/your-org/restaurant-backend/internal/domain/pricing"
)

// Violation describes one option group whose selection constraints were
// not satisfied
type Violation struct {
	GroupID   uint   `json:"group_id"`
	GroupName string `json:"group_name"`
	Message   string `json:"message"`
}

// ValidationResult is the outcome of validating a selection against a
// product's option groups. Violations accumulate across groups so the
// caller can surface every problem at once.
type ValidationResult struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations,omitempty"`
}

// ValidateSelections checks a selection (group id -> chosen option ids)
// against every group of a product. Selected ids that do not reference an
// active option in their group are discarded before counting, so inactive
// options are never selectable even if previously chosen.
func ValidateSelections(groups []OptionGroup, selected map[uint][]uint) ValidationResult {
	var violations []Violation

	for _, group := range groups {
		n := countValidSelections(&group, selected[group.ID])

		if group.IsRequired && n == 0 {
			violations = append(violations, Violation{
				GroupID:   group.ID,
				GroupName: group.Name,
				Message:   fmt.Sprintf("Select at least one option in %q", group.Name),
			})
			continue
		}

		if n < group.MinSelections {
			violations = append(violations, Violation{
				GroupID:   group.ID,
				GroupName: group.Name,
				Message:   fmt.Sprintf("Select at least %d option(s) in %q", group.MinSelections, group.Name),
			})
			continue
		}

		if n > group.MaxSelections {
			violations = append(violations, Violation{
				GroupID:   group.ID,
				GroupName: group.Name,
				Message:   fmt.Sprintf("Select at most %d option(s) in %q", group.MaxSelections, group.Name),
			})
		}
	}

	return ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}

// ResolveSelections converts a validated selection map into the flat list
// of option snapshots carried by cart and order items. Each id is
// re-resolved against the active options at call time, so the name and
// price baked into the cart are current as of add time.
func ResolveSelections(groups []OptionGroup, selected map[uint][]uint) []pricing.SelectedOption {
	var snapshots []pricing.SelectedOption

	for _, group := range groups {
		for _, optionID := range selected[group.ID] {
			opt := findActiveOption(&group, optionID)
			if opt == nil {
				continue
			}
			snapshots = append(snapshots, pricing.SelectedOption{
				GroupID:    group.ID,
				OptionID:   opt.ID,
				Name:       opt.Name,
				ExtraPrice: opt.ExtraPrice,
			})
		}
	}

	return snapshots
}

func countValidSelections(group *OptionGroup, selectedIDs []uint) int {
	n := 0
	for _, id := range selectedIDs {
		if findActiveOption(group, id) != nil {
			n++
		}
	}
	return n
}

func findActiveOption(group *OptionGroup, optionID uint) *Option {
	for i := range group.Options {
		if group.Options[i].ID == optionID && group.Options[i].IsActive {
			return &group.Options[i]
		}
	}
	return nil
}
