package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/tests/testutil"
)

func TestUserCreate_ReturnsToken(t *testing.T) {
	server := newTestServer(t)

	token := server.register(t, "Hamada", "Helal")

	claims, err := server.tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "Hamada", claims.User.FirstName)
	assert.Equal(t, "Helal", claims.User.LastName)
	assert.Positive(t, claims.User.ID)
}

func TestUserCreate_RejectsDuplicateName(t *testing.T) {
	server := newTestServer(t)
	server.register(t, "Hamada", "Helal")

	w := testutil.PerformRequest(t, server.engine, http.MethodPost, "/users", gin.H{
		"firstName": "Hamada",
		"lastName":  "Helal",
		"password":  "password123",
	}, nil)

	testutil.AssertErrorMsg(t, w, http.StatusUnauthorized, "A user exists with the same first name and last name")
}

func TestUserCreate_ValidationErrors(t *testing.T) {
	server := newTestServer(t)

	w := testutil.PerformRequest(t, server.engine, http.MethodPost, "/users", gin.H{
		"firstName": "Jo",
		"lastName":  "Salah",
		"password":  "short",
	}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := testutil.JSONBody(t, w)
	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 2)

	first := errs[0].(map[string]any)
	assert.Equal(t, "firstName", first["param"])
	assert.Equal(t, "Please provide a valid first name with at least 5 characters", first["msg"])
	second := errs[1].(map[string]any)
	assert.Equal(t, "password", second["param"])
	assert.Equal(t, "Please provide a strong password with a length of 8 characters at least", second["msg"])
}

func TestUserAuthenticate(t *testing.T) {
	server := newTestServer(t)
	server.register(t, "Mohammed", "Salah")

	w := testutil.PerformRequest(t, server.engine, http.MethodGet, "/users/auth", gin.H{
		"firstName": "Mohammed",
		"lastName":  "Salah",
		"password":  "password123",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	testutil.AssertTokenResponse(t, w)
}

func TestUserAuthenticate_WrongPassword(t *testing.T) {
	server := newTestServer(t)
	server.register(t, "Mohammed", "Salah")

	w := testutil.PerformRequest(t, server.engine, http.MethodGet, "/users/auth", gin.H{
		"firstName": "Mohammed",
		"lastName":  "Salah",
		"password":  "wrongpassword",
	}, nil)

	testutil.AssertErrorMsg(t, w, http.StatusUnauthorized, "Incorrect password for this user")
}

func TestUserAuthenticate_UnknownUser(t *testing.T) {
	server := newTestServer(t)

	w := testutil.PerformRequest(t, server.engine, http.MethodGet, "/users/auth", gin.H{
		"firstName": "Nobody",
		"lastName":  "Nowhere",
		"password":  "password123",
	}, nil)

	testutil.AssertErrorMsg(t, w, http.StatusUnauthorized, "User is not found !")
}

func TestUserIndex(t *testing.T) {
	server := newTestServer(t)
	token := server.register(t, "Hamada", "Helal")
	server.register(t, "Mohammed", "Salah")

	w := testutil.PerformRequest(t, server.engine, http.MethodGet, "/users", nil, server.authHeader(token))

	require.Equal(t, http.StatusOK, w.Code)
	users := testutil.JSONBodyAs[[]map[string]any](t, w)
	require.Len(t, users, 2)
	assert.Equal(t, "Hamada", users[0]["firstName"])
	_, hasPassword := users[0]["password"]
	assert.False(t, hasPassword)
}

func TestUserIndex_Empty(t *testing.T) {
	server := newTestServer(t)
	token, err := server.tokens.Issue(authTokenUser())
	require.NoError(t, err)

	w := testutil.PerformRequest(t, server.engine, http.MethodGet, "/users", nil, server.authHeader(token))

	testutil.AssertErrorMsg(t, w, http.StatusNotFound, "No users found")
}

func TestUserIndex_RequiresToken(t *testing.T) {
	server := newTestServer(t)

	w := testutil.PerformRequest(t, server.engine, http.MethodGet, "/users", nil, nil)

	testutil.AssertErrorMsg(t, w, http.StatusUnauthorized, "Token doesn't exist in the auth headers")
}

func TestUserShow(t *testing.T) {
	server := newTestServer(t)
	token := server.register(t, "Hamada", "Helal")

	w := testutil.PerformRequest(t, server.engine, http.MethodGet, "/users/1", nil, server.authHeader(token))

	require.Equal(t, http.StatusOK, w.Code)
	body := testutil.JSONBody(t, w)
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "Hamada", body["firstName"])
}

func TestUserShow_NotFound(t *testing.T) {
	server := newTestServer(t)
	token := server.register(t, "Hamada", "Helal")

	w := testutil.PerformRequest(t, server.engine, http.MethodGet, "/users/99", nil, server.authHeader(token))

	testutil.AssertErrorMsg(t, w, http.StatusUnauthorized, "User associated with this id is not found")
}

func TestUserShow_NonPositiveID(t *testing.T) {
	server := newTestServer(t)
	token := server.register(t, "Hamada", "Helal")

	w := testutil.PerformRequest(t, server.engine, http.MethodGet, "/users/0", nil, server.authHeader(token))

	testutil.AssertErrorMsg(t, w, http.StatusUnauthorized, "Please provide non-negative id")
}
