package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/dto"
	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

type userRepository interface {
	Create(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error)
}

// UserService implements the admin directory operations.
type UserService struct {
	repo      userRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService constructs a UserService instance.
func NewUserService(repo userRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &UserService{repo: repo, validator: validate, logger: logger}
}

// AddStudent inserts a student account. A taken username reports
// DuplicateUsername and leaves the store unchanged.
func (s *UserService) AddStudent(ctx context.Context, req dto.AddStudentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid student payload")
	}

	user := &models.User{
		Username: req.Username,
		Password: req.Password,
		Role:     models.RoleStudent,
		Name:     req.Name,
		Email:    optional(req.Email),
		Class:    optional(req.Class),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("student added", zap.String("username", user.Username))
	return nil
}

// AddFaculty inserts a faculty account; department replaces class.
func (s *UserService) AddFaculty(ctx context.Context, req dto.AddFacultyRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid faculty payload")
	}

	user := &models.User{
		Username:   req.Username,
		Password:   req.Password,
		Role:       models.RoleFaculty,
		Name:       req.Name,
		Email:      optional(req.Email),
		Department: optional(req.Department),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("faculty added", zap.String("username", user.Username))
	return nil
}

// DeleteUser hard-deletes by primary key. References from attendance,
// permissions and classes are not checked or cleaned up.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Int64("user_id", id))
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
