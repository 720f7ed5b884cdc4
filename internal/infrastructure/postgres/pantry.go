package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pricepersize/backend/internal/domain"
)

// Connect opens a pgx pool against the hosted database and makes sure
// the schema exists.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return pool, nil
}

// initSchema creates the pantry tables when they do not exist yet.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	pantryTableSQL := `
		CREATE TABLE IF NOT EXISTS pantry_items (
			id UUID PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			receipt_id VARCHAR(255),
			item_name VARCHAR(500) NOT NULL,
			brand VARCHAR(255),
			size DOUBLE PRECISION,
			unit VARCHAR(50),
			last_price DOUBLE PRECISION,
			last_store VARCHAR(255),
			status VARCHAR(20) NOT NULL DEFAULT 'have',
			purchase_date DATE,
			confidence DOUBLE PRECISION,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, pantryTableSQL); err != nil {
		return err
	}

	historyTableSQL := `
		CREATE TABLE IF NOT EXISTS price_history (
			id UUID PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			item_name VARCHAR(500) NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			store VARCHAR(255),
			purchase_date DATE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, historyTableSQL); err != nil {
		return err
	}

	indexSQL := `
		CREATE INDEX IF NOT EXISTS idx_pantry_items_user ON pantry_items (user_id)
	`
	_, err := pool.Exec(ctx, indexSQL)
	return err
}

// PantryRepository persists pantry items and price history in postgres.
type PantryRepository struct {
	db *pgxpool.Pool
}

// NewPantryRepository creates a new postgres-backed pantry repository
func NewPantryRepository(db *pgxpool.Pool) *PantryRepository {
	return &PantryRepository{db: db}
}

// InsertItems stores a batch of pantry items and returns them with IDs
// and creation timestamps filled in.
func (r *PantryRepository) InsertItems(ctx context.Context, items []domain.PantryItem) ([]domain.PantryItem, error) {
	query := `
		INSERT INTO pantry_items (
			id, user_id, receipt_id, item_name, brand, size, unit,
			last_price, last_store, status, purchase_date, confidence
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`

	inserted := make([]domain.PantryItem, 0, len(items))
	for _, item := range items {
		item.ID = uuid.NewString()
		err := r.db.QueryRow(
			ctx,
			query,
			item.ID,
			item.UserID,
			nullableString(item.ReceiptID),
			item.ItemName,
			nullableString(item.Brand),
			nullableFloat(item.Size),
			nullableString(item.Unit),
			nullableFloat(item.LastPrice),
			nullableString(item.LastStore),
			string(item.Status),
			nullableString(item.PurchaseDate),
			nullableFloat(item.Confidence),
		).Scan(&item.CreatedAt)
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, item)
	}

	return inserted, nil
}

// InsertPriceHistory records one row per price observation.
func (r *PantryRepository) InsertPriceHistory(ctx context.Context, points []domain.PricePoint) error {
	query := `
		INSERT INTO price_history (id, user_id, item_name, price, store, purchase_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, point := range points {
		_, err := r.db.Exec(
			ctx,
			query,
			uuid.NewString(),
			point.UserID,
			point.ItemName,
			point.Price,
			nullableString(point.Store),
			nullableString(point.PurchaseDate),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// ListByUser returns all pantry items owned by a user, newest first.
func (r *PantryRepository) ListByUser(ctx context.Context, userID string) ([]domain.PantryItem, error) {
	query := `
		SELECT
			id, user_id, COALESCE(receipt_id, ''), item_name,
			COALESCE(brand, ''), COALESCE(size, 0), COALESCE(unit, ''),
			COALESCE(last_price, 0), COALESCE(last_store, ''), status,
			COALESCE(purchase_date::text, ''), COALESCE(confidence, 0), created_at
		FROM pantry_items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.PantryItem
	for rows.Next() {
		var item domain.PantryItem
		var status string
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ReceiptID,
			&item.ItemName,
			&item.Brand,
			&item.Size,
			&item.Unit,
			&item.LastPrice,
			&item.LastStore,
			&status,
			&item.PurchaseDate,
			&item.Confidence,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.Status = domain.PantryItemStatus(status)
		items = append(items, item)
	}

	return items, rows.Err()
}

// UpdateStatus changes an item's have/low/out status.
func (r *PantryRepository) UpdateStatus(ctx context.Context, userID, itemID string, status domain.PantryItemStatus) error {
	query := `
		UPDATE pantry_items
		SET status = $1
		WHERE id = $2 AND user_id = $3
	`

	tag, err := r.db.Exec(ctx, query, string(status), itemID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrItemNotFound
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Delete removes a pantry item.
func (r *PantryRepository) Delete(ctx context.Context, userID, itemID string) error {
	query := `
		DELETE FROM pantry_items
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.db.Exec(ctx, query, itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// nullableString maps "" to SQL NULL
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// nullableFloat maps 0 to SQL NULL
func nullableFloat(f float64) interface{} {
	if f == 0 {
		return nil
	}
	return f
}
