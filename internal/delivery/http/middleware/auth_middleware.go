package middleware

import (
	"strings"

	deliverycontext "catalog/internal/delivery/context"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards routes behind bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the verified identity on
// the context. Verification is stateless; the store is never consulted.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrTokenMissing
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrTokenMissing.WithDetails("Authorization header must use the Bearer scheme")
		}

		identity, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}
