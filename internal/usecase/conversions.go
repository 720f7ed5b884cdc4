package usecase

import (
	"fmt"

	"github.com/pricepersize/backend/internal/domain"
)

// CategoryOf looks up which category a unit token belongs to. The second
// return value is false when the unit is unknown, which callers use to
// distinguish "unknown unit" from "unit in category X".
func CategoryOf(unit string) (domain.Category, bool) {
	category, _, ok := domain.LookupUnit(unit)
	return category, ok
}

// Compatibility is the result of checking whether two units can be
// compared. When Compatible is false, Err explains why.
type Compatibility struct {
	Compatible bool
	Category   domain.Category
	Err        error
}

// Compatible checks whether two units belong to the same category.
// It fails when either unit is unknown or when the categories differ.
func Compatible(unitA, unitB string) Compatibility {
	categoryA, okA := CategoryOf(unitA)
	categoryB, okB := CategoryOf(unitB)

	if !okA || !okB {
		return Compatibility{Compatible: false, Err: domain.ErrUnknownUnit}
	}

	if categoryA != categoryB {
		return Compatibility{
			Compatible: false,
			Err:        &domain.IncompatibleUnitsError{CategoryA: categoryA, CategoryB: categoryB},
		}
	}

	return Compatibility{Compatible: true, Category: categoryA}
}

// ToBase converts a quantity into its category's base unit (g, ml or
// bare count). Unknown units fail loudly rather than silently returning
// zero; the comparison engine relies on this to reject bad input early.
func ToBase(quantity float64, unit string) (float64, error) {
	_, factor, ok := domain.LookupUnit(unit)
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownUnit, unit)
	}
	return quantity * factor, nil
}

// DisplayUnit picks a shopper-friendly unit for a base quantity: weight
// flips to kg and volume to L at 1000 base units, count stays as-is.
// Returns the unit label, the quantity expressed in it, and the factor
// from base units to it.
func DisplayUnit(category domain.Category, baseQuantity float64) (string, float64, float64) {
	switch category {
	case domain.CategoryWeight:
		if baseQuantity >= 1000 {
			return "kg", baseQuantity / 1000, 1000
		}
		return "g", baseQuantity, 1
	case domain.CategoryVolume:
		if baseQuantity >= 1000 {
			return "L", baseQuantity / 1000, 1000
		}
		return "ml", baseQuantity, 1
	default:
		return "unit", baseQuantity, 1
	}
}
