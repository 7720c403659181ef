package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/dto"
	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

type authUserRepository interface {
	FindByCredentials(ctx context.Context, username, password string, role models.UserRole) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	UpdatePassword(ctx context.Context, id int64, password string) error
}

// AuthConfig defines configuration for session issuing.
type AuthConfig struct {
	Secret string
	TTL    time.Duration
}

// AuthService authenticates logins and manages session tokens. The
// credential check is an exact, case-sensitive three-field match
// against stored clear-text values; nothing is hashed.
type AuthService struct {
	repo      authUserRepository
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authUserRepository, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.TTL <= 0 {
		config.TTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, validator: validate, logger: logger, config: config}
}

// Login authenticates the form triple and returns a signed session
// token plus the claims it carries. Any mismatch, including an unknown
// role string, reports invalid credentials.
func (s *AuthService) Login(ctx context.Context, form dto.LoginForm) (string, *models.SessionClaims, error) {
	if err := s.validator.Struct(form); err != nil {
		return "", nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	user, err := s.repo.FindByCredentials(ctx, form.Username, form.Password, models.UserRole(form.Role))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return "", nil, appErrors.Wrap(err, appErrors.ErrStore.Code, "failed to fetch user")
	}

	now := time.Now().UTC()
	claims := &models.SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Name:     user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", nil, appErrors.Wrap(err, appErrors.ErrStore.Code, "failed to sign session token")
	}

	s.logger.Info("login", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return token, claims, nil
}

// ValidateToken parses and verifies a session cookie value.
func (s *AuthService) ValidateToken(token string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, appErrors.ErrUnauthorized
	}
	if !claims.Role.Valid() {
		return nil, appErrors.ErrUnauthorized
	}
	return claims, nil
}

// ChangePassword overwrites the caller's password after a clear-text
// check of the current one. New and confirm must match; no complexity
// rules apply.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req dto.ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid change password payload")
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrWrongPassword, "")
		}
		return appErrors.Wrap(err, appErrors.ErrStore.Code, "failed to fetch user")
	}

	if user.Password != req.CurrentPassword {
		return appErrors.Clone(appErrors.ErrWrongPassword, "")
	}
	if req.NewPassword != req.ConfirmPassword {
		return appErrors.Clone(appErrors.ErrPasswordMismatch, "")
	}

	if err := s.repo.UpdatePassword(ctx, userID, req.NewPassword); err != nil {
		return err
	}
	return nil
}

// DashboardPath maps a role to its landing page after login.
func DashboardPath(role models.UserRole) string {
	switch role {
	case models.RoleAdmin:
		return "/admin/dashboard"
	case models.RoleFaculty:
		return "/faculty/dashboard"
	default:
		return "/student/dashboard"
	}
}
