package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/college-portal-api/internal/dto"
	"github.com/noah-isme/college-portal-api/internal/models"
	appErrors "github.com/noah-isme/college-portal-api/pkg/errors"
)

type fakePermissionService struct {
	submitErr error
	updateErr error

	gotStudentID int64
	gotSubmit    dto.AddPermissionRequest
	gotUpdate    dto.UpdatePermissionStatusRequest
}

func (f *fakePermissionService) Submit(_ context.Context, studentID int64, req dto.AddPermissionRequest) error {
	f.gotStudentID = studentID
	f.gotSubmit = req
	return f.submitErr
}

func (f *fakePermissionService) UpdateStatus(_ context.Context, req dto.UpdatePermissionStatusRequest) error {
	f.gotUpdate = req
	return f.updateErr
}

func TestAddPermissionUsesSessionStudent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePermissionService{}
	h := NewPermissionHandler(svc)

	router := gin.New()
	router.POST("/api/add_permission", withClaims(&models.SessionClaims{UserID: 4, Role: models.RoleStudent}), h.Add)

	body := `{"date":"2023-11-01","reason":"Family function"}`
	req := httptest.NewRequest(http.MethodPost, "/api/add_permission", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(4), svc.gotStudentID)
	assert.Equal(t, "Family function", svc.gotSubmit.Reason)
	assertEnvelope(t, w.Body.Bytes(), true, "Permission request submitted successfully")
}

func TestAddPermissionWithoutFaculty(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePermissionService{submitErr: appErrors.ErrNoFaculty}
	h := NewPermissionHandler(svc)

	router := gin.New()
	router.POST("/api/add_permission", withClaims(&models.SessionClaims{UserID: 4, Role: models.RoleStudent}), h.Add)

	body := `{"date":"2023-11-01","reason":"Family function"}`
	req := httptest.NewRequest(http.MethodPost, "/api/add_permission", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assertEnvelope(t, w.Body.Bytes(), false, "No faculty found")
}

func TestUpdatePermissionStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePermissionService{}
	h := NewPermissionHandler(svc)

	router := gin.New()
	router.POST("/api/update_permission_status", h.UpdateStatus)

	body := `{"permission_id":1,"status":"approved"}`
	req := httptest.NewRequest(http.MethodPost, "/api/update_permission_status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), svc.gotUpdate.PermissionID)
	assert.Equal(t, "approved", svc.gotUpdate.Status)
	assertEnvelope(t, w.Body.Bytes(), true, "Permission updated successfully")
}
