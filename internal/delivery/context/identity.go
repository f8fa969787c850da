package context

import (
	"catalog/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for storing the authenticated caller's identity.
const KeyIdentity ContextKey = "identity"

// SetIdentity stores the verified token identity in echo.Context.
func SetIdentity(c echo.Context, identity *service.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity extracts the verified token identity from echo.Context.
// Returns nil when the request was not authenticated.
func GetIdentity(c echo.Context) *service.Identity {
	if identity, ok := c.Get(string(KeyIdentity)).(*service.Identity); ok {
		return identity
	}

	return nil
}
