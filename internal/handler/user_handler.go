package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal-api/internal/dto"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
	"github.com/noah-isme/college-portal-api/pkg/response"
)

type userService interface {
	AddStudent(ctx context.Context, req dto.AddStudentRequest) error
	AddFaculty(ctx context.Context, req dto.AddFacultyRequest) error
	DeleteUser(ctx context.Context, id int64) error
}

// UserHandler exposes the admin user-management endpoints.
type UserHandler struct {
	service userService
}

// NewUserHandler creates a new handler.
func NewUserHandler(svc userService) *UserHandler {
	return &UserHandler{service: svc}
}

// AddStudent godoc
// @Summary Create a student account
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body dto.AddStudentRequest true "Student payload"
// @Success 200 {object} response.Result
// @Router /api/add_user [post]
func (h *UserHandler) AddStudent(c *gin.Context) {
	var req dto.AddStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c, "invalid payload")
		return
	}

	if err := h.service.AddStudent(c.Request.Context(), req); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Student added successfully")
}

// AddFaculty godoc
// @Summary Create a faculty account
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body dto.AddFacultyRequest true "Faculty payload"
// @Success 200 {object} response.Result
// @Router /api/add_faculty [post]
func (h *UserHandler) AddFaculty(c *gin.Context) {
	var req dto.AddFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c, "invalid payload")
		return
	}

	if err := h.service.AddFaculty(c.Request.Context(), req); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Faculty added successfully")
}

// DeleteUser godoc
// @Summary Delete any user by id
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Result
// @Router /api/delete_user/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, appErrors.ErrValidation)
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "User deleted successfully")
}
