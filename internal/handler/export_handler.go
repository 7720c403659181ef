package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
	"github.com/noah-isme/college-portal-api/pkg/response"
)

type exportService interface {
	AttendanceReport(ctx context.Context, studentID int64, format string) ([]byte, string, error)
}

// ExportHandler serves downloadable attendance reports.
type ExportHandler struct {
	service exportService
}

// NewExportHandler creates a new handler.
func NewExportHandler(svc exportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// AttendanceReport godoc
// @Summary Download a student's attendance report
// @Tags Exports
// @Produce octet-stream
// @Param id path int true "Student ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /api/attendance_report/{id} [get]
func (h *ExportHandler) AttendanceReport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, appErrors.ErrValidation)
		return
	}

	format := c.DefaultQuery("format", "csv")
	data, filename, err := h.service.AttendanceReport(c.Request.Context(), id, format)
	if err != nil {
		response.Fail(c, err)
		return
	}

	contentType := "text/csv"
	if format == "pdf" {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}
