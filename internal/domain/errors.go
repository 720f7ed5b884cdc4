package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUnit is returned when a unit token is not in the taxonomy
	ErrUnknownUnit = errors.New("unknown unit type")

	// ErrTooFewOffers is returned when fewer than two offers are compared
	ErrTooFewOffers = errors.New("at least 2 products are required for comparison")

	// ErrExtractionFailed is returned when the receipt extraction API call fails
	ErrExtractionFailed = errors.New("receipt extraction failed")

	// ErrNoItemsExtracted is returned when a receipt yields zero line items
	ErrNoItemsExtracted = errors.New("no items extracted from receipt")

	// ErrReceiptNotFound is returned when a pending receipt ID is unknown or expired
	ErrReceiptNotFound = errors.New("receipt not found")

	// ErrItemNotFound is returned when a pantry item does not exist
	ErrItemNotFound = errors.New("pantry item not found")

	// ErrStoreUnavailable is returned when an operation needs the pantry
	// store but no database is configured
	ErrStoreUnavailable = errors.New("pantry store not configured")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)

// IncompatibleUnitsError reports a category mismatch between two units,
// carrying both category names for the user-facing message.
type IncompatibleUnitsError struct {
	CategoryA Category
	CategoryB Category
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("cannot compare %s with %s", e.CategoryA, e.CategoryB)
}

// ValidationError names the offending offer by its 1-based position.
type ValidationError struct {
	Position int
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("product %d %s", e.Position, e.Reason)
}
