package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerBody(role string) string {
	return `{
		"first_name": "Ama",
		"last_name": "Mensah",
		"email": "ama@example.edu",
		"role": "` + role + `",
		"password": "hunter22"
	}`
}

func TestHandleRegister(t *testing.T) {
	h := setupTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(registerBody("student")))
	rec := httptest.NewRecorder()

	h.HandleRegister(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"ama@example.edu"`)
	assert.NotContains(t, rec.Body.String(), "password")

	profile, err := h.service.Store.GetProfileByEmail("ama@example.edu")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.NotEmpty(t, profile.PasswordHash)
	assert.NotEqual(t, "hunter22", profile.PasswordHash)
}

func TestHandleRegisterRejectsAdminRole(t *testing.T) {
	h := setupTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(registerBody("admin")))
	rec := httptest.NewRecorder()

	h.HandleRegister(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	profile, err := h.service.Store.GetProfileByEmail("ama@example.edu")
	require.NoError(t, err)
	assert.Nil(t, profile)
}
