package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pricepersize/backend/internal/domain"
	"github.com/pricepersize/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers. Receipt and pantry
// services may be nil when the datastore is not configured; their
// endpoints then answer 503.
type Handler struct {
	comparison   *usecase.ComparisonService
	shelfTag     *usecase.ShelfTagService
	receipts     *usecase.ReceiptService
	pantry       *usecase.PantryService
	maxUpload    int64
	imageTypes   map[string]bool
	typeErrorMsg string
}

// HandlerConfig bundles the upload guard settings for the scan endpoint.
type HandlerConfig struct {
	MaxUploadBytes    int64
	AllowedImageTypes []string
}

// NewHandler creates a new HTTP handler
func NewHandler(
	comparison *usecase.ComparisonService,
	shelfTag *usecase.ShelfTagService,
	receipts *usecase.ReceiptService,
	pantry *usecase.PantryService,
	cfg HandlerConfig,
) *Handler {
	imageTypes := make(map[string]bool, len(cfg.AllowedImageTypes))
	for _, t := range cfg.AllowedImageTypes {
		imageTypes[t] = true
	}

	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = 10 << 20
	}

	return &Handler{
		comparison:   comparison,
		shelfTag:     shelfTag,
		receipts:     receipts,
		pantry:       pantry,
		maxUpload:    maxUpload,
		imageTypes:   imageTypes,
		typeErrorMsg: "invalid file type, allowed: " + strings.Join(cfg.AllowedImageTypes, ", "),
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pricepersize-backend",
		"version": "1.0.0",
	})
}

// compareRequest is the body of POST /compare.
type compareRequest struct {
	Products []domain.ProductOffer `json:"products" binding:"required"`
}

// Compare ranks two or more product offers by per-base-unit price
func (h *Handler) Compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.comparison.CompareMany(req.Products)
	if err != nil {
		c.JSON(comparisonStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// previewRequest is the body of POST /compare/preview.
type previewRequest struct {
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Preview computes the live per-unit price for one partially entered
// offer. It never answers with an error status: incomplete input simply
// yields a null result.
func (h *Handler) Preview(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"result": nil})
		return
	}

	result := h.comparison.PerUnitPrice(req.Price, req.Quantity, req.Unit)
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"result": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":    result,
		"formatted": usecase.FormatPerUnitPrice(result.PerUnitPrice, "USD", result.BaseUnit),
	})
}

// shelfCheckRequest is the body of POST /shelf-check: the reference
// product as bought, plus the shelf's printed claim.
type shelfCheckRequest struct {
	Price    float64              `json:"price" binding:"required"`
	Quantity float64              `json:"quantity" binding:"required"`
	Unit     string               `json:"unit" binding:"required"`
	Claim    domain.ShelfTagClaim `json:"claim" binding:"required"`
}

// ShelfCheck verifies a retailer-printed unit price against the math
func (h *Handler) ShelfCheck(c *gin.Context) {
	var req shelfCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ref, err := usecase.ReferenceFromOffer(req.Price, req.Quantity, req.Unit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.shelfTag.Check(*ref, req.Claim)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// ScanReceipt accepts a multipart receipt image, guards type and size,
// and returns the extracted line items for review.
func (h *Handler) ScanReceipt(c *gin.Context) {
	if h.receipts == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "receipt scanning not configured"})
		return
	}

	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no receipt image provided"})
		return
	}

	if fileHeader.Size > h.maxUpload {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !h.imageTypes[mimeType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.typeErrorMsg})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, h.maxUpload))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}

	receipt, err := h.receipts.Scan(c.Request.Context(), image, mimeType)
	if err != nil {
		if errors.Is(err, domain.ErrNoItemsExtracted) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "receipt": receipt})
}

// confirmRequest is the body of POST /receipts/confirm: the reviewed
// items the user accepted into the pantry.
type confirmRequest struct {
	UserID       string               `json:"user_id" binding:"required"`
	ReceiptID    string               `json:"receipt_id"`
	StoreName    string               `json:"store_name"`
	PurchaseDate string               `json:"purchase_date"`
	Items        []domain.ReceiptItem `json:"items" binding:"required"`
}

// ConfirmReceipt persists reviewed receipt items into the pantry
func (h *Handler) ConfirmReceipt(c *gin.Context) {
	if h.receipts == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "pantry store not configured"})
		return
	}

	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user_id or items"})
		return
	}

	items, err := h.receipts.Confirm(
		c.Request.Context(),
		req.UserID, req.ReceiptID, req.StoreName, req.PurchaseDate,
		req.Items,
	)
	if err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "items": items})
}

// ListPantry returns the caller's pantry items
func (h *Handler) ListPantry(c *gin.Context) {
	if h.pantry == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "pantry store not configured"})
		return
	}

	items, err := h.pantry.List(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// SearchPantry ranks pantry items against a free-text query
func (h *Handler) SearchPantry(c *gin.Context) {
	if h.pantry == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "pantry store not configured"})
		return
	}

	hits, err := h.pantry.Search(c.Request.Context(), c.Query("user_id"), c.Query("q"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and q are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hits": hits})
}

// statusRequest is the body of PATCH /pantry/:id.
type statusRequest struct {
	UserID string                  `json:"user_id" binding:"required"`
	Status domain.PantryItemStatus `json:"status" binding:"required"`
}

// UpdatePantryStatus marks an item have/low/out
func (h *Handler) UpdatePantryStatus(c *gin.Context) {
	if h.pantry == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "pantry store not configured"})
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user_id or status"})
		return
	}

	err := h.pantry.UpdateStatus(c.Request.Context(), req.UserID, c.Param("id"), req.Status)
	if err != nil {
		c.JSON(pantryStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeletePantryItem removes an item from the pantry
func (h *Handler) DeletePantryItem(c *gin.Context) {
	if h.pantry == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "pantry store not configured"})
		return
	}

	err := h.pantry.Delete(c.Request.Context(), c.Query("user_id"), c.Param("id"))
	if err != nil {
		c.JSON(pantryStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// comparisonStatus maps engine errors to HTTP codes. Everything the
// engine rejects is caller input, so it is all 400.
func comparisonStatus(err error) int {
	var validationErr *domain.ValidationError
	var incompatibleErr *domain.IncompatibleUnitsError
	switch {
	case errors.Is(err, domain.ErrTooFewOffers),
		errors.Is(err, domain.ErrUnknownUnit),
		errors.As(err, &validationErr),
		errors.As(err, &incompatibleErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// pantryStatus maps pantry errors to HTTP codes
func pantryStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
