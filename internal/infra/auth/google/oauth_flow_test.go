package google

import (
	"net/url"
	"strings"
	"testing"

	"catalog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlow(t *testing.T) *oauthFlow {
	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURI:  "https://example.com/oauth/google/callback",
		},
	}

	flow, err := NewOAuthFlow(cfg)
	require.NoError(t, err)

	return flow.(*oauthFlow)
}

func TestNewOAuthFlow_RequiresClientID(t *testing.T) {
	_, err := NewOAuthFlow(&config.Config{})

	require.Error(t, err)
}

func TestOAuthFlow_BuildAuthorizationURL(t *testing.T) {
	flow := newTestFlow(t)

	rawURL := flow.BuildAuthorizationURL()
	require.True(t, strings.HasPrefix(rawURL, googleOAuthURL))

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, defaultScopes, query.Get("scope"))
	assert.NotEmpty(t, query.Get("state"))
}

func TestOAuthFlow_StateValidatesOnce(t *testing.T) {
	flow := newTestFlow(t)

	parsed, err := url.Parse(flow.BuildAuthorizationURL())
	require.NoError(t, err)
	state := parsed.Query().Get("state")

	assert.True(t, flow.ValidateState(state))
	// A replayed state never validates twice.
	assert.False(t, flow.ValidateState(state))
}

func TestOAuthFlow_UnknownStateRejected(t *testing.T) {
	flow := newTestFlow(t)

	assert.False(t, flow.ValidateState("never-issued"))
}
