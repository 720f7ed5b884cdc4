package domain

// ProductOffer describes one purchasable option supplied by the caller.
// Price is a currency-agnostic magnitude; Currency is carried only for
// display formatting. Packs models buying N identical packs at Price each.
type ProductOffer struct {
	Name     string  `json:"name,omitempty"`
	Price    float64 `json:"price" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
	Unit     string  `json:"unit" binding:"required"`
	Currency string  `json:"currency,omitempty"`
	Packs    int     `json:"packs,omitempty"`
}

// NormalizedOffer is a ProductOffer reduced to the category base unit.
// PerUnitPrice is always expressed per base unit (per g, per ml or per
// single item), which is what makes offers in different units comparable.
type NormalizedOffer struct {
	Index        int     `json:"index"` // 1-based input position
	Name         string  `json:"name"`
	Price        float64 `json:"originalPrice"`
	Quantity     float64 `json:"originalQuantity"`
	Unit         string  `json:"originalUnit"`
	Currency     string  `json:"currency"`
	Packs        int     `json:"packs"`
	TotalPrice   float64 `json:"totalPrice"`
	TotalQty     float64 `json:"totalQuantity"`
	BaseQuantity float64 `json:"baseQuantity"`
	PerUnitPrice float64 `json:"perUnitPrice"`
}

// Savings summarizes what buying the best-ranked offer saves over the
// worst-ranked one. Projections scale the per-base-unit difference.
type Savings struct {
	PerUnit       float64 `json:"perUnit"`
	Percentage    float64 `json:"percentage"`
	IfBuy10Units  float64 `json:"ifBuy10Units"`
	IfBuy100Units float64 `json:"ifBuy100Units"`
}

// ComparisonResult is the output of a multi-offer comparison. Rankings
// are sorted ascending by per-unit price; Winner is nil when the top two
// entries are within tie tolerance.
type ComparisonResult struct {
	Winner       *NormalizedOffer  `json:"winner"`
	IsTie        bool              `json:"isTie"`
	Category     Category          `json:"category"`
	BaseUnit     string            `json:"baseUnit"`
	Rankings     []NormalizedOffer `json:"rankings"`
	Products     []NormalizedOffer `json:"products"` // original input order
	Savings      Savings           `json:"savings"`
	ProductCount int               `json:"productCount"`
}

// UnitPriceResult is the single-offer preview: the per-base-unit price
// of one partially entered offer.
type UnitPriceResult struct {
	PerUnitPrice float64  `json:"perUnitPrice"`
	BaseUnit     string   `json:"baseUnit"`
	Category     Category `json:"category"`
	BaseQuantity float64  `json:"baseQuantity"`
}

// ShelfTagVerdict classifies a shelf tag check outcome.
type ShelfTagVerdict string

const (
	VerdictCorrect  ShelfTagVerdict = "correct"
	VerdictMismatch ShelfTagVerdict = "mismatch"
)

// ShelfTagClaim is the retailer-printed "price per amount unit" line as
// entered by the user.
type ShelfTagClaim struct {
	Price  float64 `json:"price" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
	Unit   string  `json:"unit" binding:"required"`
}

// ShelfTagReport compares a printed claim against the computed price for
// the same denomination. Impact is the monetized error projected across
// the full pack quantity.
type ShelfTagReport struct {
	Verdict      ShelfTagVerdict `json:"verdict"`
	ShelfPrice   float64         `json:"shelfPrice"`
	ActualPrice  float64         `json:"actualPrice"`
	PerAmount    float64         `json:"perAmount"`
	Unit         string          `json:"unit"`
	PercentDiff  float64         `json:"percentDiff"`
	ShelfIsLower bool            `json:"shelfIsLower"`
	Impact       float64         `json:"impact"`
}
