package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// UploadStore keeps accepted spreadsheet uploads on disk under a base
// directory. Stored names are sanitized and prefixed with a UUID so
// repeated uploads of the same file never collide.
type UploadStore struct {
	baseDir string
}

// NewUploadStore ensures the uploads directory exists.
func NewUploadStore(baseDir string) (*UploadStore, error) {
	if baseDir == "" {
		baseDir = "uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	return &UploadStore{baseDir: baseDir}, nil
}

// Save copies the upload to disk and returns the stored filename.
func (s *UploadStore) Save(originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.NewString(), SanitizeFilename(originalName))
	path := filepath.Join(s.baseDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer file.Close() //nolint:errcheck

	if _, err := io.Copy(file, r); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return name, nil
}

// Open returns a read-only handle for a stored upload.
func (s *UploadStore) Open(filename string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(s.baseDir, SanitizeFilename(filename)))
	if err != nil {
		return nil, fmt.Errorf("open upload file: %w", err)
	}
	return file, nil
}

// SanitizeFilename strips path components and replaces characters that
// are unsafe in a stored filename. Content is not otherwise validated.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	if name == "" || name == "." || name == ".." {
		return "upload"
	}
	return name
}
