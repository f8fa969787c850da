// Package google implements the Google side of the OAuth sign-in flow:
// consent URL building, authorization-code exchange and ID token verification.
package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"catalog/config"
	"catalog/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	googleOAuthURL = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL = "https://oauth2.googleapis.com/token"

	defaultScopes = "openid email profile"

	stateTTL             = 10 * time.Minute
	tokenExchangeTimeout = 10 * time.Second
)

// oauthFlow drives the redirect-based authorization-code handshake with Google.
type oauthFlow struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string
	httpClient   *http.Client

	// State storage for CSRF protection.
	stateStore map[string]time.Time
	stateMutex sync.Mutex
}

// NewOAuthFlow creates the Google OAuth flow from configuration.
func NewOAuthFlow(cfg *config.Config) (service.OAuthFlow, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, errors.New("google oauth client id must be provided")
	}

	scopes := cfg.GoogleOAuth.Scopes
	if scopes == "" {
		scopes = defaultScopes
	}

	return &oauthFlow{
		clientID:     cfg.GoogleOAuth.ClientID,
		clientSecret: cfg.GoogleOAuth.ClientSecret,
		redirectURI:  cfg.GoogleOAuth.RedirectURI,
		scopes:       scopes,
		httpClient:   &http.Client{Timeout: tokenExchangeTimeout},
		stateStore:   make(map[string]time.Time),
	}, nil
}

// BuildAuthorizationURL constructs the Google consent URL with a state
// parameter for CSRF protection.
func (s *oauthFlow) BuildAuthorizationURL() string {
	state := s.generateState()
	s.storeState(state)

	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("response_type", "code")
	params.Set("scope", s.scopes)
	params.Set("state", state)

	return googleOAuthURL + "?" + params.Encode()
}

// ValidateState consumes a previously issued state parameter.
func (s *oauthFlow) ValidateState(state string) bool {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	expiry, ok := s.stateStore[state]
	if !ok {
		return false
	}
	// One-shot: a state never validates twice.
	delete(s.stateStore, state)

	return time.Now().Before(expiry)
}

// ExchangeCode trades an authorization code for Google's ID token.
func (s *oauthFlow) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)
	form.Set("redirect_uri", s.redirectURI)
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to build token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "token exchange request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read token response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var tokenResp struct {
		IDToken string `json:"id_token"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}
	if tokenResp.IDToken == "" {
		return "", errors.New("token response carried no id_token")
	}

	return tokenResp.IDToken, nil
}

// generateState generates a cryptographically secure random state string.
func (s *oauthFlow) generateState() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// storeState stores a state parameter with expiration time.
func (s *oauthFlow) storeState(state string) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	s.stateStore[state] = time.Now().Add(stateTTL)

	// Opportunistic cleanup of expired states.
	now := time.Now()
	for st, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, st)
		}
	}
}
