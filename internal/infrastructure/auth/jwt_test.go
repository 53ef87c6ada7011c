package auth

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/infrastructure/config"
)

func newTestService(secret string) *TokenService {
	return NewTokenService(config.JWTConfig{
		Secret: secret,
		Issuer: "storefront-test",
	})
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := newTestService("test-secret-key-for-unit-tests")

	user := TokenUser{ID: 7, FirstName: "Ada", LastName: "Lovelace"}
	tokenString, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.Validate(tokenString)
	require.NoError(t, err)

	assert.Equal(t, user, claims.User)
	assert.Equal(t, "storefront-test", claims.Issuer)
	assert.Equal(t, "7", claims.Subject)
	// Tokens are issued without an expiry
	assert.Nil(t, claims.ExpiresAt)
}

func TestTokenService_PayloadOmitsPasswordHash(t *testing.T) {
	svc := newTestService("test-secret-key-for-unit-tests")

	tokenString, err := svc.Issue(TokenUser{ID: 1, FirstName: "a", LastName: "b"})
	require.NoError(t, err)

	// Decode the payload segment without verifying to inspect raw claims
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	require.NoError(t, err)

	mapClaims := token.Claims.(jwt.MapClaims)
	userClaim, ok := mapClaims["user"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, userClaim, "password")
	assert.NotContains(t, userClaim, "passwordHash")
}

func TestTokenService_Validate_WrongSecret(t *testing.T) {
	issuer := newTestService("secret-one")
	verifier := newTestService("secret-two")

	tokenString, err := issuer.Issue(TokenUser{ID: 1})
	require.NoError(t, err)

	claims, err := verifier.Validate(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenService_Validate_Malformed(t *testing.T) {
	svc := newTestService("test-secret-key-for-unit-tests")

	claims, err := svc.Validate("not-a-token")
	assert.Nil(t, claims)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "malformed"))
	assert.NotErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenService_Validate_WrongAlgorithm(t *testing.T) {
	svc := newTestService("test-secret-key-for-unit-tests")

	// Token signed with "none" must be rejected
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		User: TokenUser{ID: 1},
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)
	assert.Nil(t, claims)
	assert.Error(t, err)
}
