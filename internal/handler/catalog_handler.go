package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal-api/internal/dto"
	"github.com/noah-isme/college-portal-api/pkg/response"
)

type catalogService interface {
	ListActive(ctx context.Context) (*dto.CatalogResponse, error)
	Add(ctx context.Context, req dto.AddCatalogEntryRequest) (string, error)
}

// CatalogHandler exposes the clubs/events catalog endpoints.
type CatalogHandler struct {
	service catalogService
}

// NewCatalogHandler creates a new handler.
func NewCatalogHandler(svc catalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// List godoc
// @Summary List active clubs and events
// @Description Public endpoint; returns the catalog without the standard envelope
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Router /api/get_clubs_events [get]
func (h *CatalogHandler) List(c *gin.Context) {
	catalog, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}

	// The catalog predates the envelope and keeps its bare shape.
	response.Raw(c, catalog)
}

// Add godoc
// @Summary Add a club or event to the catalog
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body dto.AddCatalogEntryRequest true "Catalog entry payload"
// @Success 200 {object} response.Result
// @Router /api/add_club_event [post]
func (h *CatalogHandler) Add(c *gin.Context) {
	var req dto.AddCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c, "invalid payload")
		return
	}

	message, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, message)
}
