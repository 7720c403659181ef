package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/dto"
	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

type permissionRepository interface {
	Create(ctx context.Context, p *models.Permission) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type facultyPicker interface {
	FirstFacultyID(ctx context.Context) (int64, error)
}

// PermissionService implements the leave-request workflow.
type PermissionService struct {
	repo      permissionRepository
	users     facultyPicker
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPermissionService constructs a PermissionService instance.
func NewPermissionService(repo permissionRepository, users facultyPicker, validate *validator.Validate, logger *zap.Logger) *PermissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &PermissionService{repo: repo, users: users, validator: validate, logger: logger}
}

// Submit files a pending request for the student. The target faculty is
// the first faculty row by insertion order; there is no class-based
// routing. With no faculty on record the request is rejected.
func (s *PermissionService) Submit(ctx context.Context, studentID int64, req dto.AddPermissionRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid permission payload")
	}

	facultyID, err := s.users.FirstFacultyID(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNoFaculty, "")
		}
		return appErrors.Wrap(err, appErrors.ErrStore.Code, "failed to pick faculty")
	}

	proof := req.Proof
	p := &models.Permission{
		StudentID: studentID,
		FacultyID: facultyID,
		Date:      req.Date,
		Reason:    req.Reason,
		Proof:     &proof,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}

	s.logger.Info("permission submitted", zap.Int64("student_id", studentID), zap.Int64("faculty_id", facultyID))
	return nil
}

// UpdateStatus writes the caller-supplied status string verbatim. No
// check that the permission belongs to the calling faculty, and no
// validation against the pending/approved/rejected set: repeated
// identical calls are idempotent, arbitrary strings stick.
func (s *PermissionService) UpdateStatus(ctx context.Context, req dto.UpdatePermissionStatusRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid status payload")
	}
	return s.repo.UpdateStatus(ctx, req.PermissionID, req.Status)
}
