package usecase

import (
	"errors"
	"math"
	"testing"

	"github.com/pricepersize/backend/internal/domain"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		unit   string
		want   domain.Category
		wantOK bool
	}{
		{"g", domain.CategoryWeight, true},
		{"kg", domain.CategoryWeight, true},
		{"lb", domain.CategoryWeight, true},
		{"jin", domain.CategoryWeight, true},
		{"ml", domain.CategoryVolume, true},
		{"L", domain.CategoryVolume, true},
		{"oz", domain.CategoryVolume, true}, // shopper's "oz" is fluid
		{"gal-uk", domain.CategoryVolume, true},
		{"unit", domain.CategoryCount, true},
		{"dozen", domain.CategoryCount, true},
		{"parsec", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			got, ok := CategoryOf(tt.unit)
			if ok != tt.wantOK {
				t.Fatalf("CategoryOf(%q) ok = %v, want %v", tt.unit, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("CategoryOf(%q) = %v, want %v", tt.unit, got, tt.want)
			}
		})
	}
}

func TestCompatible(t *testing.T) {
	t.Run("reflexive for every known unit", func(t *testing.T) {
		for _, unit := range domain.KnownUnits() {
			result := Compatible(unit, unit)
			if !result.Compatible {
				t.Errorf("Compatible(%q, %q).Compatible = false, want true", unit, unit)
			}
		}
	})

	t.Run("same category different units", func(t *testing.T) {
		result := Compatible("oz", "L")
		if !result.Compatible {
			t.Fatalf("Compatible(oz, L).Compatible = false, want true")
		}
		if result.Category != domain.CategoryVolume {
			t.Errorf("Category = %v, want volume", result.Category)
		}
	})

	t.Run("all cross-category pairs fail", func(t *testing.T) {
		byCategory := map[domain.Category][]string{}
		for _, unit := range domain.KnownUnits() {
			category, _ := CategoryOf(unit)
			byCategory[category] = append(byCategory[category], unit)
		}
		// Categories must partition the taxonomy for the
		// first-offer-authoritative check in CompareMany to be sound.
		if len(byCategory) != 3 {
			t.Fatalf("taxonomy has %d categories, want 3", len(byCategory))
		}

		for catA, unitsA := range byCategory {
			for catB, unitsB := range byCategory {
				if catA == catB {
					continue
				}
				result := Compatible(unitsA[0], unitsB[0])
				if result.Compatible {
					t.Errorf("Compatible(%q, %q).Compatible = true, want false", unitsA[0], unitsB[0])
				}
				var incompatible *domain.IncompatibleUnitsError
				if !errors.As(result.Err, &incompatible) {
					t.Fatalf("err = %v, want IncompatibleUnitsError", result.Err)
				}
				if incompatible.CategoryA != catA || incompatible.CategoryB != catB {
					t.Errorf("error categories = %v/%v, want %v/%v",
						incompatible.CategoryA, incompatible.CategoryB, catA, catB)
				}
			}
		}
	})

	t.Run("unknown unit fails with ErrUnknownUnit", func(t *testing.T) {
		result := Compatible("g", "lightyear")
		if result.Compatible {
			t.Fatal("Compatible = true, want false")
		}
		if !errors.Is(result.Err, domain.ErrUnknownUnit) {
			t.Errorf("err = %v, want ErrUnknownUnit", result.Err)
		}
	})
}

func TestToBase(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		unit     string
		want     float64
	}{
		{"kg to g", 2, "kg", 2000},
		{"lb to g", 1, "lb", 453.592},
		{"L to ml", 1.5, "L", 1500},
		{"fluid oz to ml", 24, "oz", 709.776},
		{"dozen to count", 2, "dozen", 24},
		{"base unit unchanged", 42, "g", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToBase(tt.quantity, tt.unit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ToBase(%v, %q) = %v, want %v", tt.quantity, tt.unit, got, tt.want)
			}
		})
	}

	t.Run("unknown unit fails loudly", func(t *testing.T) {
		_, err := ToBase(1, "furlong")
		if !errors.Is(err, domain.ErrUnknownUnit) {
			t.Errorf("err = %v, want ErrUnknownUnit", err)
		}
	})

	t.Run("round-trip consistency across same-category units", func(t *testing.T) {
		// ToBase(q, u) / factor(u) recovers q for every unit, so two
		// equal base quantities always denote the same physical amount.
		for _, unit := range domain.KnownUnits() {
			_, factor, _ := domain.LookupUnit(unit)
			base, err := ToBase(3.5, unit)
			if err != nil {
				t.Fatalf("ToBase(3.5, %q): %v", unit, err)
			}
			if math.Abs(base/factor-3.5) > 1e-9 {
				t.Errorf("round trip for %q = %v, want 3.5", unit, base/factor)
			}
		}
	})
}

func TestDisplayUnit(t *testing.T) {
	tests := []struct {
		name         string
		category     domain.Category
		baseQuantity float64
		wantUnit     string
		wantQuantity float64
	}{
		{"grams stay grams", domain.CategoryWeight, 500, "g", 500},
		{"heavy flips to kg", domain.CategoryWeight, 2500, "kg", 2.5},
		{"milliliters stay ml", domain.CategoryVolume, 750, "ml", 750},
		{"large volume flips to L", domain.CategoryVolume, 2000, "L", 2},
		{"count never flips", domain.CategoryCount, 144, "unit", 144},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, quantity, _ := DisplayUnit(tt.category, tt.baseQuantity)
			if unit != tt.wantUnit {
				t.Errorf("unit = %q, want %q", unit, tt.wantUnit)
			}
			if math.Abs(quantity-tt.wantQuantity) > 1e-9 {
				t.Errorf("quantity = %v, want %v", quantity, tt.wantQuantity)
			}
		})
	}
}
