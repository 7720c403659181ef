package dto

import "github.com/noah-isme/college-portal-api/internal/models"

// AddCatalogEntryRequest is the payload for POST /api/add_club_event.
type AddCatalogEntryRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
}

// CatalogResponse is the body of GET /api/get_clubs_events: the active
// catalog split by type.
type CatalogResponse struct {
	Clubs  []models.CatalogEntry `json:"clubs"`
	Events []models.CatalogEntry `json:"events"`
}
