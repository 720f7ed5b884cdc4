package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pricepersize/backend/internal/domain"
	"github.com/pricepersize/backend/internal/infrastructure/cache"
)

// fakeExtractor returns a canned receipt or error.
type fakeExtractor struct {
	receipt *domain.Receipt
	err     error
	calls   int
}

func (e *fakeExtractor) ExtractReceipt(ctx context.Context, image []byte, mimeType string) (*domain.Receipt, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	// Copy so ID assignment in the service doesn't mutate the fixture.
	receipt := *e.receipt
	return &receipt, nil
}

func sampleExtraction() *domain.Receipt {
	return &domain.Receipt{
		StoreName:         "Trader Joe's",
		PurchaseDate:      "2025-03-14",
		TotalAmount:       23.47,
		OverallConfidence: 0.91,
		Items: []domain.ReceiptItem{
			{ItemName: "Basmati Rice", Brand: "Royal", Size: 2, Unit: "lb", Price: 6.99, Confidence: 0.95},
			{ItemName: "Whole Milk", Size: 1, Unit: "gal", Price: 4.29, Confidence: 0.88},
			{ItemName: "Reusable Bag", Price: 0, Confidence: 0.99},
		},
	}
}

func newReceiptTestService(extractor domain.ReceiptExtractor, repo domain.PantryRepository) (*ReceiptService, domain.CacheRepository) {
	memCache := cache.NewMemoryCache()
	svc := NewReceiptService(extractor, repo, memCache, ReceiptServiceConfig{PendingTTL: time.Minute})
	return svc, memCache
}

func TestReceiptScan(t *testing.T) {
	ctx := context.Background()

	t.Run("successful scan assigns ID and caches extraction", func(t *testing.T) {
		extractor := &fakeExtractor{receipt: sampleExtraction()}
		svc, _ := newReceiptTestService(extractor, newFakePantryRepo())

		receipt, err := svc.Scan(ctx, []byte("image-bytes"), "image/jpeg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if receipt.ID == "" {
			t.Error("receipt ID not assigned")
		}
		if len(receipt.Items) != 3 {
			t.Errorf("len(Items) = %d, want 3", len(receipt.Items))
		}

		pending, err := svc.Pending(ctx, receipt.ID)
		if err != nil {
			t.Fatalf("Pending() error = %v", err)
		}
		if pending.StoreName != "Trader Joe's" {
			t.Errorf("pending StoreName = %q", pending.StoreName)
		}
	})

	t.Run("extractor failure wraps ErrExtractionFailed", func(t *testing.T) {
		extractor := &fakeExtractor{err: errors.New("api timeout")}
		svc, _ := newReceiptTestService(extractor, newFakePantryRepo())

		_, err := svc.Scan(ctx, []byte("image-bytes"), "image/jpeg")
		if !errors.Is(err, domain.ErrExtractionFailed) {
			t.Errorf("err = %v, want ErrExtractionFailed", err)
		}
	})

	t.Run("empty extraction returns ErrNoItemsExtracted", func(t *testing.T) {
		extractor := &fakeExtractor{receipt: &domain.Receipt{StoreName: "Costco"}}
		svc, _ := newReceiptTestService(extractor, newFakePantryRepo())

		_, err := svc.Scan(ctx, []byte("image-bytes"), "image/png")
		if !errors.Is(err, domain.ErrNoItemsExtracted) {
			t.Errorf("err = %v, want ErrNoItemsExtracted", err)
		}
	})
}

func TestReceiptConfirm(t *testing.T) {
	ctx := context.Background()

	t.Run("confirm saves items and price history", func(t *testing.T) {
		extractor := &fakeExtractor{receipt: sampleExtraction()}
		repo := newFakePantryRepo()
		svc, _ := newReceiptTestService(extractor, repo)

		receipt, err := svc.Scan(ctx, []byte("image-bytes"), "image/jpeg")
		if err != nil {
			t.Fatalf("Scan() error = %v", err)
		}

		inserted, err := svc.Confirm(ctx, "user-1", receipt.ID, receipt.StoreName, receipt.PurchaseDate, receipt.Items)
		if err != nil {
			t.Fatalf("Confirm() error = %v", err)
		}
		if len(inserted) != 3 {
			t.Fatalf("len(inserted) = %d, want 3", len(inserted))
		}
		for _, item := range inserted {
			if item.ID == "" {
				t.Error("inserted item has no ID")
			}
			if item.Status != domain.StatusHave {
				t.Errorf("Status = %v, want have", item.Status)
			}
			if item.ReceiptID != receipt.ID {
				t.Errorf("ReceiptID = %q, want %q", item.ReceiptID, receipt.ID)
			}
			if item.PurchaseDate != "2025-03-14" {
				t.Errorf("PurchaseDate = %q", item.PurchaseDate)
			}
		}

		// Only priced items get a history point; the free bag does not.
		if len(repo.history) != 2 {
			t.Errorf("len(history) = %d, want 2", len(repo.history))
		}

		// Confirmation consumes the pending extraction.
		if _, err := svc.Pending(ctx, receipt.ID); !errors.Is(err, domain.ErrReceiptNotFound) {
			t.Errorf("Pending after confirm = %v, want ErrReceiptNotFound", err)
		}
	})

	t.Run("confirm without user is invalid", func(t *testing.T) {
		svc, _ := newReceiptTestService(&fakeExtractor{}, newFakePantryRepo())
		_, err := svc.Confirm(ctx, "", "r-1", "Store", "2025-03-14", sampleExtraction().Items)
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("err = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("confirm without items is invalid", func(t *testing.T) {
		svc, _ := newReceiptTestService(&fakeExtractor{}, newFakePantryRepo())
		_, err := svc.Confirm(ctx, "user-1", "r-1", "Store", "2025-03-14", nil)
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("err = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("missing purchase date defaults to today", func(t *testing.T) {
		repo := newFakePantryRepo()
		svc, _ := newReceiptTestService(&fakeExtractor{}, repo)

		inserted, err := svc.Confirm(ctx, "user-1", "", "Store", "", sampleExtraction().Items)
		if err != nil {
			t.Fatalf("Confirm() error = %v", err)
		}
		today := time.Now().Format("2006-01-02")
		if inserted[0].PurchaseDate != today {
			t.Errorf("PurchaseDate = %q, want %q", inserted[0].PurchaseDate, today)
		}
	})

	t.Run("no repository means store unavailable", func(t *testing.T) {
		extractor := &fakeExtractor{receipt: sampleExtraction()}
		memCache := cache.NewMemoryCache()
		svc := NewReceiptService(extractor, nil, memCache, ReceiptServiceConfig{})

		// Scanning does not need the store.
		receipt, err := svc.Scan(ctx, []byte("image-bytes"), "image/jpeg")
		if err != nil {
			t.Fatalf("Scan() error = %v", err)
		}

		_, err = svc.Confirm(ctx, "user-1", receipt.ID, receipt.StoreName, receipt.PurchaseDate, receipt.Items)
		if !errors.Is(err, domain.ErrStoreUnavailable) {
			t.Errorf("err = %v, want ErrStoreUnavailable", err)
		}
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		repo := newFakePantryRepo()
		repo.failAll = true
		svc, _ := newReceiptTestService(&fakeExtractor{}, repo)

		_, err := svc.Confirm(ctx, "user-1", "r-1", "Store", "2025-03-14", sampleExtraction().Items)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestReceiptPending_Unknown(t *testing.T) {
	svc, _ := newReceiptTestService(&fakeExtractor{}, newFakePantryRepo())
	_, err := svc.Pending(context.Background(), "nope")
	if !errors.Is(err, domain.ErrReceiptNotFound) {
		t.Errorf("err = %v, want ErrReceiptNotFound", err)
	}
}
