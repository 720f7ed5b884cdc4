package usecase

import (
	"math"

	"github.com/pricepersize/backend/internal/domain"
)

// shelfTagTolerancePercent is how far (in percent) the printed price may
// deviate from the computed price before the tag counts as wrong.
// Retailers round, so small differences are normal.
const shelfTagTolerancePercent = 2.0

// ShelfTagService checks retailer-printed unit-price claims against the
// price actually implied by a product's total price and size. It reuses
// the same conversions as the comparison engine; only the comparison
// target differs.
type ShelfTagService struct {
	tolerancePercent float64
}

// NewShelfTagService creates a shelf tag checker with the default 2%
// tolerance when the supplied value is not positive.
func NewShelfTagService(tolerancePercent float64) *ShelfTagService {
	if tolerancePercent <= 0 {
		tolerancePercent = shelfTagTolerancePercent
	}
	return &ShelfTagService{tolerancePercent: tolerancePercent}
}

// ShelfTagReference is the confirmed product side of the check: a
// per-base-unit price plus the pack's full quantity for impact math.
type ShelfTagReference struct {
	PerUnitPrice  float64 // price per base unit (g, ml or single item)
	TotalQuantity float64 // full pack size in its original unit
	Unit          string  // original unit of the reference product
}

// ReferenceFromOffer derives a check reference from a raw total price
// and size, for when the user types the numbers straight off the pack.
func ReferenceFromOffer(price, quantity float64, unit string) (*ShelfTagReference, error) {
	baseQuantity, err := ToBase(quantity, unit)
	if err != nil {
		return nil, err
	}
	if baseQuantity <= 0 || price <= 0 {
		return nil, domain.ErrInvalidRequest
	}
	return &ShelfTagReference{
		PerUnitPrice:  price / baseQuantity,
		TotalQuantity: quantity,
		Unit:          unit,
	}, nil
}

// Check converts the claim's denomination into base units, scales the
// reference per-base-unit price to the same denomination, and compares.
// Within tolerance the tag is "correct"; otherwise the report carries
// both prices, which side is higher, and the impact projected across the
// full pack.
func (s *ShelfTagService) Check(ref ShelfTagReference, claim domain.ShelfTagClaim) (*domain.ShelfTagReport, error) {
	compat := Compatible(ref.Unit, claim.Unit)
	if !compat.Compatible {
		return nil, compat.Err
	}

	claimAmountBase, err := ToBase(claim.Amount, claim.Unit)
	if err != nil {
		return nil, err
	}
	if claimAmountBase <= 0 || claim.Price <= 0 {
		return nil, domain.ErrInvalidRequest
	}

	actualPrice := ref.PerUnitPrice * claimAmountBase
	difference := math.Abs(claim.Price - actualPrice)
	percentDiff := difference / actualPrice * 100

	report := &domain.ShelfTagReport{
		ShelfPrice:  claim.Price,
		ActualPrice: actualPrice,
		PerAmount:   claim.Amount,
		Unit:        claim.Unit,
		PercentDiff: percentDiff,
	}

	if percentDiff <= s.tolerancePercent {
		report.Verdict = domain.VerdictCorrect
		return report, nil
	}

	packQuantityBase, err := ToBase(ref.TotalQuantity, ref.Unit)
	if err != nil {
		return nil, err
	}

	report.Verdict = domain.VerdictMismatch
	report.ShelfIsLower = claim.Price < actualPrice
	report.Impact = difference / claimAmountBase * packQuantityBase
	return report, nil
}
