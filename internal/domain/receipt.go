package domain

import "time"

// ReceiptItem is one line item extracted from a receipt image. The
// extraction service fills what it can read; fields it cannot see are
// zero-valued and Confidence reflects text clarity, not correctness.
type ReceiptItem struct {
	ItemName     string  `json:"item_name"`
	Brand        string  `json:"brand,omitempty"`
	Size         float64 `json:"size,omitempty"`
	Unit         string  `json:"unit,omitempty"`
	Price        float64 `json:"price"`
	PricePerUnit float64 `json:"price_per_unit,omitempty"`
	Confidence   float64 `json:"confidence"`
}

// Receipt holds the structured extraction of a single receipt image.
type Receipt struct {
	ID                string        `json:"receipt_id,omitempty"`
	StoreName         string        `json:"store_name,omitempty"`
	PurchaseDate      string        `json:"purchase_date,omitempty"` // YYYY-MM-DD
	TotalAmount       float64       `json:"total_amount,omitempty"`
	OverallConfidence float64       `json:"overall_confidence"`
	Items             []ReceiptItem `json:"items"`
}

// PantryItemStatus tracks whether the user still has an item.
type PantryItemStatus string

const (
	StatusHave PantryItemStatus = "have"
	StatusLow  PantryItemStatus = "low"
	StatusOut  PantryItemStatus = "out"
)

// PantryItem is one item in a user's pantry inventory, typically created
// from a confirmed receipt line.
type PantryItem struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	ReceiptID    string           `json:"receipt_id,omitempty"`
	ItemName     string           `json:"item_name"`
	Brand        string           `json:"brand,omitempty"`
	Size         float64          `json:"size,omitempty"`
	Unit         string           `json:"unit,omitempty"`
	LastPrice    float64          `json:"last_price,omitempty"`
	LastStore    string           `json:"last_store,omitempty"`
	Status       PantryItemStatus `json:"status"`
	PurchaseDate string           `json:"purchase_date,omitempty"`
	Confidence   float64          `json:"confidence,omitempty"`
	CreatedAt    time.Time        `json:"created_at,omitempty"`
}

// PricePoint is one historical price observation for an item name.
type PricePoint struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ItemName     string    `json:"item_name"`
	Price        float64   `json:"price"`
	Store        string    `json:"store,omitempty"`
	PurchaseDate string    `json:"purchase_date,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// PantrySearchHit is a pantry item with its search relevance score.
type PantrySearchHit struct {
	Item  PantryItem `json:"item"`
	Score float64    `json:"score"`
}
