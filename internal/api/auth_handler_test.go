package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"peakform/coach-app/internal/domain"
	"peakform/coach-app/internal/service"
)

func TestRegisterSuccess(t *testing.T) {
	env := newTestEnv()

	created := &domain.User{
		ID:      primitive.NewObjectID(),
		Name:    "Jeanne Martin",
		Email:   "jeanne@example.com",
		IsCoach: true,
	}
	env.auth.On("Register", mock.Anything, "Jeanne Martin", "jeanne@example.com", "motdepasse", true).
		Return(created, nil)

	body := `{"name":"Jeanne Martin","email":"jeanne@example.com","password":"motdepasse","isCoach":true}`
	rec := env.doRequest(http.MethodPost, "/api/v1/auth/register", "", body)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string       `json:"message"`
		User    UserResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, created.ID.Hex(), resp.User.ID)
	assert.True(t, resp.User.IsCoach)

	// The password hash must never appear in the payload.
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv()

	env.auth.On("Register", mock.Anything, "Jeanne Martin", "jeanne@example.com", "motdepasse", false).
		Return(nil, service.ErrUserAlreadyExists)

	body := `{"name":"Jeanne Martin","email":"jeanne@example.com","password":"motdepasse"}`
	rec := env.doRequest(http.MethodPost, "/api/v1/auth/register", "", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, MsgInvalidData, resp.Error)
	assert.Contains(t, resp.Details, "email")
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	env := newTestEnv()

	body := `{"name":"Jeanne","email":"jeanne@example.com","password":"court"}`
	rec := env.doRequest(http.MethodPost, "/api/v1/auth/register", "", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv()

	user := &domain.User{ID: primitive.NewObjectID(), Email: "coach@example.com", IsCoach: true}
	env.auth.On("Login", mock.Anything, "coach@example.com", "motdepasse").
		Return("signed-token", user, nil)

	body := `{"email":"coach@example.com","password":"motdepasse"}`
	rec := env.doRequest(http.MethodPost, "/api/v1/auth/login", "", body)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, user.ID.Hex(), resp.User.ID)
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv()

	env.auth.On("Login", mock.Anything, "coach@example.com", "mauvais").
		Return("", nil, service.ErrAuthenticationFailed)

	body := `{"email":"coach@example.com","password":"mauvais"}`
	rec := env.doRequest(http.MethodPost, "/api/v1/auth/login", "", body)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Non authentifié"}`, rec.Body.String())
}
