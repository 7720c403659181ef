package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-portal-api/internal/dto"
	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

type mockDirectoryRepo struct {
	created   []*models.User
	deleted   []int64
	usernames map[string]bool
}

func (m *mockDirectoryRepo) Create(_ context.Context, user *models.User) error {
	if m.usernames == nil {
		m.usernames = map[string]bool{}
	}
	if m.usernames[user.Username] {
		return appErrors.ErrDuplicateUsername
	}
	m.usernames[user.Username] = true
	user.ID = int64(len(m.created) + 1)
	copy := *user
	m.created = append(m.created, &copy)
	return nil
}

func (m *mockDirectoryRepo) Delete(_ context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockDirectoryRepo) ListByRole(context.Context, models.UserRole) ([]models.User, error) {
	return nil, nil
}

func TestAddStudent(t *testing.T) {
	repo := &mockDirectoryRepo{}
	svc := NewUserService(repo, nil, nil)

	err := svc.AddStudent(context.Background(), dto.AddStudentRequest{
		Username: "student3",
		Password: "pass",
		Name:     "New Student",
		Class:    "B.Tech CSE",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, models.RoleStudent, repo.created[0].Role)
	require.NotNil(t, repo.created[0].Class)
	assert.Equal(t, "B.Tech CSE", *repo.created[0].Class)
	assert.Nil(t, repo.created[0].Department)
}

func TestAddStudentDuplicateLeavesStoreUnchanged(t *testing.T) {
	repo := &mockDirectoryRepo{}
	svc := NewUserService(repo, nil, nil)

	req := dto.AddStudentRequest{Username: "student3", Password: "pass", Name: "New Student"}
	require.NoError(t, svc.AddStudent(context.Background(), req))

	err := svc.AddStudent(context.Background(), req)
	assert.ErrorIs(t, err, appErrors.ErrDuplicateUsername)
	assert.Len(t, repo.created, 1)
}

func TestAddFacultySetsDepartment(t *testing.T) {
	repo := &mockDirectoryRepo{}
	svc := NewUserService(repo, nil, nil)

	err := svc.AddFaculty(context.Background(), dto.AddFacultyRequest{
		Username:   "faculty3",
		Password:   "pass",
		Name:       "Dr. New",
		Department: "Mathematics",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, models.RoleFaculty, repo.created[0].Role)
	require.NotNil(t, repo.created[0].Department)
	assert.Equal(t, "Mathematics", *repo.created[0].Department)
	assert.Nil(t, repo.created[0].Class)
}

func TestAddStudentMissingFields(t *testing.T) {
	repo := &mockDirectoryRepo{}
	svc := NewUserService(repo, nil, nil)

	err := svc.AddStudent(context.Background(), dto.AddStudentRequest{Username: "x"})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation.Code))
	assert.Empty(t, repo.created)
}

func TestDeleteUser(t *testing.T) {
	repo := &mockDirectoryRepo{}
	svc := NewUserService(repo, nil, nil)

	require.NoError(t, svc.DeleteUser(context.Background(), 4))
	assert.Equal(t, []int64{4}, repo.deleted)
}
