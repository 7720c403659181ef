package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/college-portal-api/internal/dto"
	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

type mockUserRepo struct {
	users     map[int64]*models.User
	passwords map[int64]string
}

func newMockUserRepo(users ...*models.User) *mockUserRepo {
	m := &mockUserRepo{users: map[int64]*models.User{}, passwords: map[int64]string{}}
	for _, u := range users {
		copy := *u
		m.users[u.ID] = &copy
	}
	return m
}

func (m *mockUserRepo) FindByCredentials(_ context.Context, username, password string, role models.UserRole) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username && u.Password == password && u.Role == role {
			copy := *u
			return &copy, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) FindByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id int64, password string) error {
	if u, ok := m.users[id]; ok {
		u.Password = password
	}
	m.passwords[id] = password
	return nil
}

func testUsers() []*models.User {
	return []*models.User{
		{ID: 1, Username: "admin", Password: "admin123", Role: models.RoleAdmin, Name: "System Administrator"},
		{ID: 2, Username: "faculty1", Password: "faculty123", Role: models.RoleFaculty, Name: "Dr. Robert Brown"},
		{ID: 4, Username: "student1", Password: "student123", Role: models.RoleStudent, Name: "John Doe"},
	}
}

func newAuthService(repo authUserRepository) *AuthService {
	return NewAuthService(repo, nil, nil, AuthConfig{Secret: "test-secret", TTL: time.Hour})
}

func TestLoginExactMatch(t *testing.T) {
	svc := newAuthService(newMockUserRepo(testUsers()...))

	token, claims, err := svc.Login(context.Background(), dto.LoginForm{Username: "student1", Password: "student123", Role: "student"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(4), claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, "John Doe", claims.Name)

	// The token round-trips through validation.
	parsed, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, parsed.UserID)
	assert.Equal(t, claims.Role, parsed.Role)
}

func TestLoginAnyFieldMismatchFails(t *testing.T) {
	svc := newAuthService(newMockUserRepo(testUsers()...))

	cases := []dto.LoginForm{
		{Username: "studentX", Password: "student123", Role: "student"},
		{Username: "student1", Password: "wrong", Role: "student"},
		{Username: "student1", Password: "student123", Role: "faculty"},
		{Username: "Student1", Password: "student123", Role: "student"}, // case-sensitive
	}
	for _, form := range cases {
		_, _, err := svc.Login(context.Background(), form)
		assert.True(t, appErrors.Is(err, appErrors.ErrInvalidCredentials.Code), "form %+v", form)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newAuthService(newMockUserRepo())

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := newAuthService(newMockUserRepo(testUsers()...))
	token, _, err := issuer.Login(context.Background(), dto.LoginForm{Username: "admin", Password: "admin123", Role: "admin"})
	require.NoError(t, err)

	other := NewAuthService(newMockUserRepo(), nil, nil, AuthConfig{Secret: "different-secret", TTL: time.Hour})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	repo := newMockUserRepo(testUsers()...)
	svc := newAuthService(repo)

	err := svc.ChangePassword(context.Background(), 4, dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new",
		ConfirmPassword: "new",
	})
	assert.True(t, appErrors.Is(err, appErrors.ErrWrongPassword.Code))
	assert.Empty(t, repo.passwords)
}

func TestChangePasswordMismatchEvenWithCorrectCurrent(t *testing.T) {
	repo := newMockUserRepo(testUsers()...)
	svc := newAuthService(repo)

	err := svc.ChangePassword(context.Background(), 4, dto.ChangePasswordRequest{
		CurrentPassword: "student123",
		NewPassword:     "new1",
		ConfirmPassword: "new2",
	})
	assert.True(t, appErrors.Is(err, appErrors.ErrPasswordMismatch.Code))
	assert.Empty(t, repo.passwords)
}

func TestChangePasswordOverwrites(t *testing.T) {
	repo := newMockUserRepo(testUsers()...)
	svc := newAuthService(repo)

	err := svc.ChangePassword(context.Background(), 4, dto.ChangePasswordRequest{
		CurrentPassword: "student123",
		NewPassword:     "short", // no complexity rules
		ConfirmPassword: "short",
	})
	require.NoError(t, err)
	assert.Equal(t, "short", repo.passwords[4])
}
