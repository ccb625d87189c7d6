package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/2beens/gymlog/internal/middleware"
	"github.com/2beens/gymlog/internal/telemetry/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	repo := NewMockAuthRepo()
	tokens := NewTokenService("test-secret", 30*time.Minute)
	return NewHandler(NewService(repo, tokens), metrics.NewTestManager())
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleRegister(t *testing.T) {
	handler := newTestHandler()

	rr := httptest.NewRecorder()
	handler.HandleRegister(rr, jsonRequest(
		"POST", "/api/auth/register",
		`{"email": "serj@tubin.com", "password": "testpass"}`,
	))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp RegisterResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.UserID)
}

func TestHandleRegister_EmailTaken(t *testing.T) {
	handler := newTestHandler()

	rr := httptest.NewRecorder()
	handler.HandleRegister(rr, jsonRequest(
		"POST", "/api/auth/register",
		`{"email": "serj@tubin.com", "password": "testpass"}`,
	))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.HandleRegister(rr, jsonRequest(
		"POST", "/api/auth/register",
		`{"email": "serj@tubin.com", "password": "otherpass"}`,
	))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "email already registered")
}

func TestHandleRegister_BadInput(t *testing.T) {
	handler := newTestHandler()

	testCases := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"email": `},
		{name: "empty email", body: `{"email": "", "password": "testpass"}`},
		{name: "empty password", body: `{"email": "serj@tubin.com", "password": ""}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.HandleRegister(rr, jsonRequest("POST", "/api/auth/register", tc.body))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestHandleLogin(t *testing.T) {
	handler := newTestHandler()

	rr := httptest.NewRecorder()
	handler.HandleRegister(rr, jsonRequest(
		"POST", "/api/auth/register",
		`{"email": "serj@tubin.com", "password": "testpass"}`,
	))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.HandleLogin(rr, jsonRequest(
		"POST", "/api/auth/login",
		`{"email": "serj@tubin.com", "password": "testpass"}`,
	))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestHandleLogin_BadCredentials(t *testing.T) {
	handler := newTestHandler()

	rr := httptest.NewRecorder()
	handler.HandleRegister(rr, jsonRequest(
		"POST", "/api/auth/register",
		`{"email": "serj@tubin.com", "password": "testpass"}`,
	))
	require.Equal(t, http.StatusOK, rr.Code)

	unknownEmail := httptest.NewRecorder()
	handler.HandleLogin(unknownEmail, jsonRequest(
		"POST", "/api/auth/login",
		`{"email": "who@tubin.com", "password": "testpass"}`,
	))

	wrongPassword := httptest.NewRecorder()
	handler.HandleLogin(wrongPassword, jsonRequest(
		"POST", "/api/auth/login",
		`{"email": "serj@tubin.com", "password": "wrongpass"}`,
	))

	// both failure modes must be indistinguishable to the caller
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, unknownEmail.Body.String(), wrongPassword.Body.String())
}

func TestHandleMe(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req = req.WithContext(middleware.SetAuthUser(context.Background(), middleware.AuthUser{
		UserID: "user-1",
		Email:  "serj@tubin.com",
	}))

	rr := httptest.NewRecorder()
	handler.HandleMe(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp MeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "serj@tubin.com", resp.Email)
}

func TestHandleMe_NoAuthUser(t *testing.T) {
	handler := newTestHandler()

	rr := httptest.NewRecorder()
	handler.HandleMe(rr, httptest.NewRequest("GET", "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
