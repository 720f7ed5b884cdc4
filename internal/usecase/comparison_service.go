package usecase

import (
	"fmt"
	"sort"

	"github.com/pricepersize/backend/internal/domain"
)

// tiePriceTolerance is the absolute per-base-unit price difference below
// which the top two offers count as a tie. Tied to assumed currency
// precision; always absolute, never relative to price magnitude.
const tiePriceTolerance = 0.0001

// ComparisonConfig holds configuration for the comparison service
type ComparisonConfig struct {
	TieTolerance float64
}

// ComparisonService normalizes product offers to per-base-unit prices,
// ranks them and derives savings. It is stateless: every call recomputes
// from scratch, so identical inputs always produce identical results.
type ComparisonService struct {
	tieTolerance float64
}

// NewComparisonService creates a new comparison service with the given
// configuration, falling back to the default tie tolerance when unset.
func NewComparisonService(config ComparisonConfig) *ComparisonService {
	tolerance := config.TieTolerance
	if tolerance <= 0 {
		tolerance = tiePriceTolerance
	}
	return &ComparisonService{tieTolerance: tolerance}
}

// CompareMany compares two or more product offers and returns rankings,
// the winner (nil when the top two are within tie tolerance) and savings
// against the worst deal. Offer 1's category is authoritative: every
// other offer is checked against it in source order.
func (s *ComparisonService) CompareMany(offers []domain.ProductOffer) (*domain.ComparisonResult, error) {
	if len(offers) < 2 {
		return nil, domain.ErrTooFewOffers
	}

	for i, offer := range offers {
		if err := validateOffer(i+1, offer); err != nil {
			return nil, err
		}
	}

	firstUnit := offers[0].Unit
	for i := 1; i < len(offers); i++ {
		compat := Compatible(firstUnit, offers[i].Unit)
		if !compat.Compatible {
			return nil, fmt.Errorf("product %d has incompatible units with product 1: %w", i+1, compat.Err)
		}
	}

	category, _ := CategoryOf(firstUnit)
	baseUnit := domain.BaseUnitName(category)

	products := make([]domain.NormalizedOffer, 0, len(offers))
	for i, offer := range offers {
		normalized, err := normalizeOffer(i+1, offer)
		if err != nil {
			return nil, err
		}
		products = append(products, normalized)
	}

	// Ascending by per-unit price; sort.SliceStable keeps input order for
	// equal prices so there is no secondary sort key.
	rankings := make([]domain.NormalizedOffer, len(products))
	copy(rankings, products)
	sort.SliceStable(rankings, func(a, b int) bool {
		return rankings[a].PerUnitPrice < rankings[b].PerUnitPrice
	})

	best := rankings[0]
	worst := rankings[len(rankings)-1]

	savingsPerUnit := worst.PerUnitPrice - best.PerUnitPrice
	savingsPercentage := 0.0
	if worst.PerUnitPrice > 0 {
		savingsPercentage = savingsPerUnit / worst.PerUnitPrice * 100
	}

	// A tie only looks at the top two entries; ties further down the
	// rankings do not affect the winner.
	isTie := rankings[1].PerUnitPrice-rankings[0].PerUnitPrice < s.tieTolerance

	var winner *domain.NormalizedOffer
	if !isTie {
		w := best
		winner = &w
	}

	return &domain.ComparisonResult{
		Winner:   winner,
		IsTie:    isTie,
		Category: category,
		BaseUnit: baseUnit,
		Rankings: rankings,
		Products: products,
		Savings: domain.Savings{
			PerUnit:       savingsPerUnit,
			Percentage:    savingsPercentage,
			IfBuy10Units:  savingsPerUnit * 10,
			IfBuy100Units: savingsPerUnit * 100,
		},
		ProductCount: len(offers),
	}, nil
}

// PerUnitPrice computes the per-base-unit price of a single offer. It
// never fails: any missing or non-positive input, or an unknown unit,
// yields nil. Used for live previews against incomplete form input.
func (s *ComparisonService) PerUnitPrice(price, quantity float64, unit string) *domain.UnitPriceResult {
	if price <= 0 || quantity <= 0 || unit == "" {
		return nil
	}

	baseQuantity, err := ToBase(quantity, unit)
	if err != nil || baseQuantity <= 0 {
		return nil
	}

	category, _ := CategoryOf(unit)

	return &domain.UnitPriceResult{
		PerUnitPrice: price / baseQuantity,
		BaseUnit:     domain.BaseUnitName(category),
		Category:     category,
		BaseQuantity: baseQuantity,
	}
}

// validateOffer rejects offers with missing or non-positive fields,
// naming the offer by its 1-based position.
func validateOffer(position int, offer domain.ProductOffer) error {
	if offer.Price <= 0 || offer.Quantity <= 0 || offer.Unit == "" {
		return &domain.ValidationError{Position: position, Reason: "is missing required fields"}
	}
	if offer.Packs < 0 {
		return &domain.ValidationError{Position: position, Reason: "has a negative pack count"}
	}
	return nil
}

// normalizeOffer applies the pack count to both price and quantity before
// the base conversion: buying N packs multiplies cost and amount alike.
func normalizeOffer(position int, offer domain.ProductOffer) (domain.NormalizedOffer, error) {
	packs := offer.Packs
	if packs == 0 {
		packs = 1
	}

	currency := offer.Currency
	if currency == "" {
		currency = "USD"
	}

	name := offer.Name
	if name == "" {
		name = fmt.Sprintf("Product %d", position)
	}

	totalPrice := offer.Price * float64(packs)
	totalQty := offer.Quantity * float64(packs)

	baseQuantity, err := ToBase(totalQty, offer.Unit)
	if err != nil {
		return domain.NormalizedOffer{}, err
	}

	return domain.NormalizedOffer{
		Index:        position,
		Name:         name,
		Price:        offer.Price,
		Quantity:     offer.Quantity,
		Unit:         offer.Unit,
		Currency:     currency,
		Packs:        packs,
		TotalPrice:   totalPrice,
		TotalQty:     totalQty,
		BaseQuantity: baseQuantity,
		PerUnitPrice: totalPrice / baseQuantity,
	}, nil
}
