package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "catalog/internal/delivery/context"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"
	mockService "catalog/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c := newAuthTestContext("")
	err := m.Authenticate(func(echo.Context) error { return nil })(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMissing))
}

func TestAuthMiddleware_NonBearerScheme(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c := newAuthTestContext("Basic dXNlcjpwYXNz")
	err := m.Authenticate(func(echo.Context) error { return nil })(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.On("Verify", "bad-token").Return(nil, errors.New("signature is invalid"))
	m := NewAuthMiddleware(tokenSvc)

	c := newAuthTestContext("Bearer bad-token")
	err := m.Authenticate(func(echo.Context) error { return nil })(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	identity := &service.Identity{SubjectID: uuid.New(), Email: "user@example.com"}
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.On("Verify", "good-token").Return(identity, nil)
	m := NewAuthMiddleware(tokenSvc)

	c := newAuthTestContext("Bearer good-token")

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, identity, deliverycontext.GetIdentity(c))
}
