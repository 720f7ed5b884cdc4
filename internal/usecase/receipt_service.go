package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pricepersize/backend/internal/domain"
)

// ReceiptServiceConfig holds configuration for the receipt service
type ReceiptServiceConfig struct {
	PendingTTL time.Duration
}

// ReceiptService orchestrates receipt scanning: it hands the image to
// the external extractor, parks the extraction in the cache under a
// fresh receipt ID, and on confirmation writes pantry items and price
// history through the repository. Extraction itself is opaque to us; we
// only shape its output. The repository may be nil: scanning still
// works, confirmation then fails with ErrStoreUnavailable.
type ReceiptService struct {
	extractor  domain.ReceiptExtractor
	repo       domain.PantryRepository
	cache      domain.CacheRepository
	pendingTTL time.Duration
}

// NewReceiptService creates a new receipt service with dependencies
func NewReceiptService(
	extractor domain.ReceiptExtractor,
	repo domain.PantryRepository,
	cache domain.CacheRepository,
	config ReceiptServiceConfig,
) *ReceiptService {
	pendingTTL := config.PendingTTL
	if pendingTTL == 0 {
		pendingTTL = 30 * time.Minute // scans the user never confirms expire
	}

	return &ReceiptService{
		extractor:  extractor,
		repo:       repo,
		cache:      cache,
		pendingTTL: pendingTTL,
	}
}

// Scan extracts line items from a receipt image and returns them for
// user review. The extraction stays cached under the returned receipt ID
// until the user confirms or the TTL lapses.
func (s *ReceiptService) Scan(ctx context.Context, image []byte, mimeType string) (*domain.Receipt, error) {
	receipt, err := s.extractor.ExtractReceipt(ctx, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	if len(receipt.Items) == 0 {
		return nil, domain.ErrNoItemsExtracted
	}

	receipt.ID = uuid.NewString()

	if err := s.cache.Set(ctx, pendingKey(receipt.ID), receipt, s.pendingTTL); err != nil {
		// A failed cache write only loses the scan/confirm linkage; the
		// caller still gets the extraction back.
		return receipt, nil
	}

	return receipt, nil
}

// Confirm persists the user-reviewed items of a receipt into the pantry
// and records one price-history point per priced item. The items passed
// in are the reviewed versions, not the raw extraction: the user may
// have fixed names, sizes or prices before confirming.
func (s *ReceiptService) Confirm(
	ctx context.Context,
	userID, receiptID, storeName, purchaseDate string,
	items []domain.ReceiptItem,
) ([]domain.PantryItem, error) {
	if s.repo == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if userID == "" || len(items) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	if purchaseDate == "" {
		purchaseDate = time.Now().Format("2006-01-02")
	}

	pantryItems := make([]domain.PantryItem, 0, len(items))
	for _, item := range items {
		pantryItems = append(pantryItems, domain.PantryItem{
			UserID:       userID,
			ReceiptID:    receiptID,
			ItemName:     item.ItemName,
			Brand:        item.Brand,
			Size:         item.Size,
			Unit:         item.Unit,
			LastPrice:    item.Price,
			LastStore:    storeName,
			Status:       domain.StatusHave,
			PurchaseDate: purchaseDate,
			Confidence:   item.Confidence,
		})
	}

	inserted, err := s.repo.InsertItems(ctx, pantryItems)
	if err != nil {
		return nil, fmt.Errorf("failed to save pantry items: %w", err)
	}

	var points []domain.PricePoint
	for _, item := range items {
		if item.Price <= 0 {
			continue
		}
		points = append(points, domain.PricePoint{
			UserID:       userID,
			ItemName:     item.ItemName,
			Price:        item.Price,
			Store:        storeName,
			PurchaseDate: purchaseDate,
		})
	}
	if len(points) > 0 {
		if err := s.repo.InsertPriceHistory(ctx, points); err != nil {
			// Pantry items are already saved; a lost history point is not
			// worth failing the confirmation over.
			return inserted, nil
		}
	}

	if receiptID != "" {
		s.cache.Delete(ctx, pendingKey(receiptID))
	}

	return inserted, nil
}

// Pending returns a cached, unconfirmed extraction by receipt ID.
func (s *ReceiptService) Pending(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	value, err := s.cache.Get(ctx, pendingKey(receiptID))
	if err != nil {
		return nil, domain.ErrReceiptNotFound
	}
	receipt, ok := value.(*domain.Receipt)
	if !ok {
		return nil, domain.ErrReceiptNotFound
	}
	return receipt, nil
}

func pendingKey(receiptID string) string {
	return "receipt:pending:" + receiptID
}
