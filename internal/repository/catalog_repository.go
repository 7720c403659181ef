package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/college-portal-api/internal/models"
)

// CatalogRepository provides access to the clubs_events catalog.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a new instance of CatalogRepository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListActive returns every active catalog entry regardless of type.
func (r *CatalogRepository) ListActive(ctx context.Context) ([]models.CatalogEntry, error) {
	const query = `SELECT id, name, type, is_active, created_at FROM clubs_events WHERE is_active = 1`
	var entries []models.CatalogEntry
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("list active catalog entries: %w", err)
	}
	return entries, nil
}

// Create inserts a new active catalog entry. No duplicate check: two
// clubs may share a name.
func (r *CatalogRepository) Create(ctx context.Context, entry *models.CatalogEntry) error {
	const query = `INSERT INTO clubs_events (name, type) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, entry.Name, entry.Type)
	if err != nil {
		return fmt.Errorf("create catalog entry: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		entry.ID = id
	}
	return nil
}
