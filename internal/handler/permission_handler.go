package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal-api/internal/dto"
	"github.com/noah-isme/college-portal-api/internal/middleware"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
	"github.com/noah-isme/college-portal-api/pkg/response"
)

type permissionService interface {
	Submit(ctx context.Context, studentID int64, req dto.AddPermissionRequest) error
	UpdateStatus(ctx context.Context, req dto.UpdatePermissionStatusRequest) error
}

// PermissionHandler exposes the leave-permission endpoints.
type PermissionHandler struct {
	service permissionService
}

// NewPermissionHandler creates a new handler.
func NewPermissionHandler(svc permissionService) *PermissionHandler {
	return &PermissionHandler{service: svc}
}

// Add godoc
// @Summary Submit a leave-permission request
// @Description Routes the request to the first faculty on record
// @Tags Permissions
// @Accept json
// @Produce json
// @Param payload body dto.AddPermissionRequest true "Permission payload"
// @Success 200 {object} response.Result
// @Router /api/add_permission [post]
func (h *PermissionHandler) Add(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Fail(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.AddPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c, "invalid payload")
		return
	}

	if err := h.service.Submit(c.Request.Context(), claims.UserID, req); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Permission request submitted successfully")
}

// UpdateStatus godoc
// @Summary Update a permission request's status
// @Tags Permissions
// @Accept json
// @Produce json
// @Param payload body dto.UpdatePermissionStatusRequest true "Status payload"
// @Success 200 {object} response.Result
// @Router /api/update_permission_status [post]
func (h *PermissionHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdatePermissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c, "invalid payload")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), req); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Permission updated successfully")
}
