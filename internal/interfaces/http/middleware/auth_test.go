package middleware_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/tests/testutil"
)

func newAuthEngine(t *testing.T) (*gin.Engine, *auth.TokenService) {
	t.Helper()

	tokens := auth.NewTokenService(config.JWTConfig{
		Secret: "middleware-test-secret",
		Issuer: "storefront-api",
	})

	engine := gin.New()
	engine.GET("/protected", middleware.RequireToken(tokens), func(c *gin.Context) {
		claims := middleware.TokenClaims(c)
		require.NotNil(t, claims)
		c.JSON(http.StatusOK, gin.H{"userId": claims.User.ID})
	})
	return engine, tokens
}

func TestRequireToken_MissingHeader(t *testing.T) {
	engine, _ := newAuthEngine(t)

	w := testutil.PerformRequest(t, engine, http.MethodGet, "/protected", nil, nil)

	testutil.AssertErrorMsg(t, w, http.StatusUnauthorized, "Token doesn't exist in the auth headers")
}

func TestRequireToken_EmptyToken(t *testing.T) {
	engine, _ := newAuthEngine(t)

	w := testutil.PerformRequest(t, engine, http.MethodGet, "/protected", nil, map[string]string{
		"Authorization": "Bearer ",
	})

	testutil.AssertErrorMsg(t, w, http.StatusUnauthorized, "Token is not provided !")
}

func TestRequireToken_BadSignature(t *testing.T) {
	engine, _ := newAuthEngine(t)

	other := auth.NewTokenService(config.JWTConfig{Secret: "some-other-secret", Issuer: "storefront-api"})
	token, err := other.Issue(auth.TokenUser{ID: 1, FirstName: "Hamada", LastName: "Helal"})
	require.NoError(t, err)

	w := testutil.PerformRequest(t, engine, http.MethodGet, "/protected", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	testutil.AssertErrorMsg(t, w, http.StatusUnauthorized, "Invalid token is provided")
}

func TestRequireToken_MalformedToken(t *testing.T) {
	engine, _ := newAuthEngine(t)

	w := testutil.PerformRequest(t, engine, http.MethodGet, "/protected", nil, map[string]string{
		"Authorization": "Bearer not.a.token",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := testutil.JSONBody(t, w)
	assert.Contains(t, body["errorMsg"], "malformed")
}

func TestRequireToken_ValidToken(t *testing.T) {
	engine, tokens := newAuthEngine(t)

	token, err := tokens.Issue(auth.TokenUser{ID: 7, FirstName: "Mohammed", LastName: "Salah"})
	require.NoError(t, err)

	w := testutil.PerformRequest(t, engine, http.MethodGet, "/protected", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := testutil.JSONBody(t, w)
	assert.EqualValues(t, 7, body["userId"])
}
