package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/dto"
	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

type catalogRepository interface {
	ListActive(ctx context.Context) ([]models.CatalogEntry, error)
	Create(ctx context.Context, entry *models.CatalogEntry) error
}

// CatalogService manages the selectable clubs/events catalog.
type CatalogService struct {
	repo      catalogRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCatalogService constructs a CatalogService instance.
func NewCatalogService(repo catalogRepository, validate *validator.Validate, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CatalogService{repo: repo, validator: validate, logger: logger}
}

// ListActive returns the active catalog split by type. Public: no
// session required.
func (s *CatalogService) ListActive(ctx context.Context) (*dto.CatalogResponse, error) {
	entries, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	clubs, events := splitCatalog(entries)
	return &dto.CatalogResponse{Clubs: clubs, Events: events}, nil
}

// Add inserts an active entry. Duplicate names are allowed.
func (s *CatalogService) Add(ctx context.Context, req dto.AddCatalogEntryRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid catalog payload")
	}

	entry := &models.CatalogEntry{Name: req.Name, Type: req.Type, IsActive: true}
	if err := s.repo.Create(ctx, entry); err != nil {
		return "", err
	}

	s.logger.Info("catalog entry added", zap.String("name", entry.Name), zap.String("type", entry.Type))
	return fmt.Sprintf("%s added successfully", titleCase(req.Type)), nil
}

// titleCase uppercases the first letter of every space-separated word,
// so "sports event" reads back as "Sports Event" in the message.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
