package models

import "time"

// Catalog entry types. Distinct from the scheduled Event entity: these
// are the selectable club/event names offered on the permission form.
const (
	CatalogClub  = "club"
	CatalogEvent = "event"
)

// CatalogEntry is a selectable club or event in the clubs_events table.
type CatalogEntry struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Type      string    `db:"type" json:"type"`
	IsActive  bool      `db:"is_active" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}
