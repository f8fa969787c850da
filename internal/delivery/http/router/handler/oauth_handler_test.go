package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/internal/domain/entity"
	mockUsecase "catalog/internal/mocks/usecase"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOAuthTestHandler(t *testing.T) (*OAuthHandler, *mockUsecase.MockOAuthUsecase) {
	uc := mockUsecase.NewMockOAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewOAuthHandler(uc, logger), uc
}

func TestOAuthHandler_GoogleLogin_ReturnsURL(t *testing.T) {
	handler, uc := newOAuthTestHandler(t)
	uc.On("GoogleAuthURL").Return("https://accounts.google.com/o/oauth2/v2/auth?state=abc")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/oauth/google", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GoogleLogin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "oauth_url")
	assert.Contains(t, rec.Body.String(), "state=abc")
}

func TestOAuthHandler_GoogleLogin_Redirects(t *testing.T) {
	handler, uc := newOAuthTestHandler(t)
	uc.On("GoogleAuthURL").Return("https://accounts.google.com/o/oauth2/v2/auth?state=abc")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/oauth/google?redirect=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GoogleLogin(c))
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth?state=abc", rec.Header().Get(echo.HeaderLocation))
}

func TestOAuthHandler_GoogleCallback_MissingParams(t *testing.T) {
	handler, _ := newOAuthTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/oauth/google/callback", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GoogleCallback(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOAuthHandler_GoogleCallback_ProviderError(t *testing.T) {
	handler, _ := newOAuthTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/oauth/google/callback?error=access_denied", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GoogleCallback(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_denied")
}

func TestOAuthHandler_GoogleFail(t *testing.T) {
	handler, _ := newOAuthTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/oauth/google/fail", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GoogleFail(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "OAUTH_FAILED")
}

func TestOAuthHandler_GoogleCallback_Success(t *testing.T) {
	handler, uc := newOAuthTestHandler(t)
	user := &entity.User{
		ID:       uuid.New(),
		Email:    "user@example.com",
		Provider: entity.ProviderGoogle,
	}
	uc.On("GoogleCallback", mock.Anything, &usecase.GoogleCallbackInput{
		State: "state-1",
		Code:  "code-1",
	}).Return(&usecase.TokenOutput{Token: "signed-token", User: user}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/oauth/google/callback?code=code-1&state=state-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GoogleCallback(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
	assert.Contains(t, rec.Body.String(), user.ID.String())
}
