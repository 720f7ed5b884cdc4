package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ReceiptExtractor defines the interface for the external image-to-data
// extraction service. The core treats it as an opaque function from
// image bytes to a structured item list.
type ReceiptExtractor interface {
	ExtractReceipt(ctx context.Context, image []byte, mimeType string) (*Receipt, error)
}

// PantryRepository defines the interface for the hosted item store.
// Every operation is scoped to the owning user.
type PantryRepository interface {
	InsertItems(ctx context.Context, items []PantryItem) ([]PantryItem, error)
	InsertPriceHistory(ctx context.Context, points []PricePoint) error
	ListByUser(ctx context.Context, userID string) ([]PantryItem, error)
	UpdateStatus(ctx context.Context, userID, itemID string, status PantryItemStatus) error
	Delete(ctx context.Context, userID, itemID string) error
}
