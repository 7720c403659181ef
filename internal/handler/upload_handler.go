package handler

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal-api/internal/dto"
	"github.com/noah-isme/college-portal-api/internal/models"
	"github.com/noah-isme/college-portal-api/internal/service"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
	"github.com/noah-isme/college-portal-api/pkg/response"
)

type importService interface {
	ImportUsers(ctx context.Context, r io.Reader, filename string, role models.UserRole) (*dto.ImportSummary, string, error)
}

type uploadStore interface {
	Save(originalName string, r io.Reader) (string, error)
	Open(filename string) (io.ReadCloser, error)
}

// UploadHandler accepts spreadsheet uploads and feeds them to the bulk
// import service.
type UploadHandler struct {
	service importService
	store   uploadStore
	maxSize int64
}

// NewUploadHandler creates a new handler. maxSize caps the accepted
// upload size in bytes.
func NewUploadHandler(svc importService, store uploadStore, maxSize int64) *UploadHandler {
	return &UploadHandler{service: svc, store: store, maxSize: maxSize}
}

// UploadStudents godoc
// @Summary Bulk-import students from a spreadsheet
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet (.xlsx/.xls)"
// @Success 200 {object} response.Result
// @Router /api/upload_students [post]
func (h *UploadHandler) UploadStudents(c *gin.Context) {
	h.upload(c, models.RoleStudent)
}

// UploadFaculty godoc
// @Summary Bulk-import faculty from a spreadsheet
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet (.xlsx/.xls)"
// @Success 200 {object} response.Result
// @Router /api/upload_faculty [post]
func (h *UploadHandler) UploadFaculty(c *gin.Context) {
	h.upload(c, models.RoleFaculty)
}

func (h *UploadHandler) upload(c *gin.Context, role models.UserRole) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, appErrors.ErrNoFileUploaded)
		return
	}
	if header.Filename == "" {
		response.FailMessage(c, "No file selected")
		return
	}
	if header.Size > h.maxSize {
		response.FailMessage(c, "File too large")
		return
	}
	if !service.AllowedFile(header.Filename) {
		response.Fail(c, appErrors.ErrInvalidFileType)
		return
	}

	src, err := header.Open()
	if err != nil {
		response.Fail(c, appErrors.ErrStore)
		return
	}
	defer src.Close()

	// Every accepted upload lands on disk first; the import reads the
	// stored copy, not the request body.
	stored, err := h.store.Save(header.Filename, src)
	if err != nil {
		response.Fail(c, appErrors.ErrStore)
		return
	}
	file, err := h.store.Open(stored)
	if err != nil {
		response.Fail(c, appErrors.ErrStore)
		return
	}
	defer file.Close()

	summary, message, err := h.service.ImportUsers(c.Request.Context(), file, header.Filename, role)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Raw(c, gin.H{
		"success":       true,
		"message":       message,
		"success_count": summary.Success,
		"error_count":   summary.Failed,
	})
}
