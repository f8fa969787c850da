package auth

import (
	"testing"
	"time"

	"catalog/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttl

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig("", time.Hour))

	require.Error(t, err)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", time.Hour))
	require.NoError(t, err)

	subjectID := uuid.New()
	token, err := svc.Issue(subjectID, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, subjectID, identity.SubjectID)
	assert.Equal(t, "user@example.com", identity.Email)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", -time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("secret-one", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("secret-two", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTService_Verify_Malformed(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", time.Hour))
	require.NoError(t, err)

	_, err = svc.Verify("not.a.token")
	require.Error(t, err)
}

func TestJWTService_Verify_RejectsUnsignedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", time.Hour))
	require.NoError(t, err)

	// alg=none token with an arbitrary payload.
	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJhYmMifQ."

	_, err = svc.Verify(unsigned)
	require.Error(t, err)
}
