package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/noah-isme/college-portal-api/internal/dto"
	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

var allowedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
}

type importUserRepository interface {
	Create(ctx context.Context, user *models.User) error
}

// ImportService turns uploaded spreadsheets into batches of account
// inserts. Rows are processed independently with no transaction across
// them: a duplicate username fails that row and the rest continue.
type ImportService struct {
	repo   importUserRepository
	logger *zap.Logger
}

// NewImportService constructs an ImportService instance.
func NewImportService(repo importUserRepository, logger *zap.Logger) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{repo: repo, logger: logger}
}

// requiredColumns lists the spreadsheet columns that must be present
// before any row is processed. Email is optional either way.
func requiredColumns(role models.UserRole) []string {
	if role == models.RoleFaculty {
		return []string{"name", "username", "password", "department"}
	}
	return []string{"name", "username", "password", "class"}
}

// AllowedFile checks the upload's extension against the allow-list.
func AllowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ImportUsers parses the spreadsheet and inserts one account per data
// row with the given role. It returns per-row success/failure counts
// and the summary message reported to the admin.
func (s *ImportService) ImportUsers(ctx context.Context, r io.Reader, filename string, role models.UserRole) (*dto.ImportSummary, string, error) {
	if !AllowedFile(filename) {
		return nil, "", appErrors.Clone(appErrors.ErrInvalidFileType, "")
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrStore.Code, fmt.Sprintf("Error processing file: %v", err))
	}
	defer f.Close() //nolint:errcheck

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, "", appErrors.Clone(appErrors.ErrInvalidFileType, "Error processing file: no sheets found")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrStore.Code, fmt.Sprintf("Error processing file: %v", err))
	}
	if len(rows) == 0 {
		return nil, "", appErrors.Clone(appErrors.ErrMissingColumn, "Missing required column: name")
	}

	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(header))] = i
	}
	// The whole import fails before any row when a column is absent.
	for _, col := range requiredColumns(role) {
		if _, ok := columns[col]; !ok {
			return nil, "", appErrors.Clone(appErrors.ErrMissingColumn, fmt.Sprintf("Missing required column: %s", col))
		}
	}

	summary := &dto.ImportSummary{}
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		user := &models.User{
			Username: cell(row, columns, "username"),
			Password: cell(row, columns, "password"),
			Role:     role,
			Name:     cell(row, columns, "name"),
			Email:    optional(cell(row, columns, "email")),
		}
		if role == models.RoleFaculty {
			user.Department = optional(cell(row, columns, "department"))
		} else {
			user.Class = optional(cell(row, columns, "class"))
		}

		if err := s.repo.Create(ctx, user); err != nil {
			if errors.Is(err, appErrors.ErrDuplicateUsername) {
				summary.Failed++
				continue
			}
			return nil, "", err
		}
		summary.Success++
	}

	noun := "students"
	if role == models.RoleFaculty {
		noun = "faculty"
	}
	message := fmt.Sprintf("Successfully added %d %s. %d failed due to duplicate usernames.", summary.Success, noun, summary.Failed)

	s.logger.Info("bulk import finished",
		zap.String("role", string(role)),
		zap.Int("success", summary.Success),
		zap.Int("failed", summary.Failed),
	)
	return summary, message, nil
}

func cell(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func emptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
