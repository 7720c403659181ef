package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-portal-api/internal/dto"
	"github.com/noah-isme/college-portal-api/internal/models"
)

type mockCatalogRepo struct {
	entries []models.CatalogEntry
}

func (m *mockCatalogRepo) ListActive(context.Context) ([]models.CatalogEntry, error) {
	var active []models.CatalogEntry
	for _, e := range m.entries {
		if e.IsActive {
			active = append(active, e)
		}
	}
	return active, nil
}

func (m *mockCatalogRepo) Create(_ context.Context, entry *models.CatalogEntry) error {
	entry.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, *entry)
	return nil
}

func TestListActiveSplitsByType(t *testing.T) {
	repo := &mockCatalogRepo{entries: []models.CatalogEntry{
		{ID: 1, Name: "Tech Club", Type: models.CatalogClub, IsActive: true},
		{ID: 2, Name: "Old Club", Type: models.CatalogClub, IsActive: false},
		{ID: 3, Name: "Tech Fest", Type: models.CatalogEvent, IsActive: true},
	}}
	svc := NewCatalogService(repo, nil, nil)

	out, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Clubs, 1)
	assert.Equal(t, "Tech Club", out.Clubs[0].Name)
	require.Len(t, out.Events, 1)
	assert.Equal(t, "Tech Fest", out.Events[0].Name)
}

func TestAddCatalogEntry(t *testing.T) {
	repo := &mockCatalogRepo{}
	svc := NewCatalogService(repo, nil, nil)

	msg, err := svc.Add(context.Background(), dto.AddCatalogEntryRequest{Name: "Chess Club", Type: "club"})
	require.NoError(t, err)
	assert.Equal(t, "Club added successfully", msg)
	require.Len(t, repo.entries, 1)
	assert.True(t, repo.entries[0].IsActive)
}

func TestAddCatalogEntryTitleCasesEveryWord(t *testing.T) {
	repo := &mockCatalogRepo{}
	svc := NewCatalogService(repo, nil, nil)

	msg, err := svc.Add(context.Background(), dto.AddCatalogEntryRequest{Name: "Annual Meet", Type: "sports event"})
	require.NoError(t, err)
	assert.Equal(t, "Sports Event added successfully", msg)
}

func TestAddCatalogEntryAllowsDuplicates(t *testing.T) {
	repo := &mockCatalogRepo{}
	svc := NewCatalogService(repo, nil, nil)

	req := dto.AddCatalogEntryRequest{Name: "Chess Club", Type: "club"}
	_, err := svc.Add(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, repo.entries, 2)
}
