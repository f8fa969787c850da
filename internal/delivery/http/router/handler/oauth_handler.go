package handler

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/http/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OAuthHandler holds dependencies for the Google sign-in handlers.
type OAuthHandler struct {
	uc     usecase.OAuthUsecase
	logger *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler, injected by Fx.
func NewOAuthHandler(uc usecase.OAuthUsecase, logger *slog.Logger) *OAuthHandler {
	return &OAuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// GoogleLogin initiates the Google Sign-In flow. With ?redirect=true the
// client is sent straight to the consent screen, otherwise the URL is
// returned as JSON for frontend use.
func (h *OAuthHandler) GoogleLogin(c echo.Context) error {
	oauthURL := h.uc.GoogleAuthURL()

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, oauthURL)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"oauth_url": oauthURL,
	}, "Google OAuth URL generated successfully")
}

// GoogleCallback completes the Google Sign-In flow from the redirect query
// parameters.
func (h *OAuthHandler) GoogleCallback(c echo.Context) error {
	code := c.QueryParam("code")
	state := c.QueryParam("state")

	if errParam := c.QueryParam("error"); errParam != "" {
		return response.BadRequest(c, "OAUTH_DENIED", "Google reported: "+errParam)
	}
	if code == "" || state == "" {
		return response.BadRequest(c, "INVALID_INPUT", "code and state query parameters are required")
	}

	output, err := h.uc.GoogleCallback(c.Request().Context(), &usecase.GoogleCallbackInput{
		State: state,
		Code:  code,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTokenView(output), "Google OAuth authentication successful")
}

// GoogleFail is the terminal route for sign-in attempts the provider
// aborted. It always answers 401.
func (h *OAuthHandler) GoogleFail(c echo.Context) error {
	return response.Error(c, http.StatusUnauthorized, "OAUTH_FAILED", "Google OAuth failed", "")
}
