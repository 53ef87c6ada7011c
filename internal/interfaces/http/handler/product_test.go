package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/tests/testutil"
)

func TestProductCreate(t *testing.T) {
	server := newTestServer(t)
	token := server.register(t, "Hamada", "Helal")

	w := testutil.PerformRequest(t, server.engine, http.MethodPost, "/products", gin.H{
		"name":     "Keyboard",
		"price":    49.99,
		"category": "electronics",
	}, server.authHeader(token))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := testutil.JSONBody(t, w)
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "Keyboard", body["name"])
	assert.InDelta(t, 49.99, body["price"], 0.0001)
	assert.Equal(t, "electronics", body["category"])
}

func TestProductCreate_RequiresToken(t *testing.T) {
	server := newTestServer(t)

	w := testutil.PerformRequest(t, server.engine, http.MethodPost, "/products", gin.H{
		"name":     "Keyboard",
		"price":    49.99,
		"category": "electronics",
	}, nil)

	testutil.AssertErrorMsg(t, w, http.StatusUnauthorized, "Token doesn't exist in the auth headers")
}

func TestProductCreate_Duplicate(t *testing.T) {
	server := newTestServer(t)
	token := server.register(t, "Hamada", "Helal")
	server.createProduct(t, token, "Keyboard", 49.99, "electronics")

	w := testutil.PerformRequest(t, server.engine, http.MethodPost, "/products", gin.H{
		"name":     "Keyboard",
		"price":    49.99,
		"category": "electronics",
	}, server.authHeader(token))

	testutil.AssertErrorMsg(t, w, http.StatusBadRequest, "Product already exists.")
}

func TestProductCreate_ValidationErrors(t *testing.T) {
	server := newTestServer(t)
	token := server.register(t, "Hamada", "Helal")

	w := testutil.PerformRequest(t, server.engine, http.MethodPost, "/products", gin.H{
		"name":  "Keyboard",
		"price": 0.5,
	}, server.authHeader(token))

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := testutil.JSONBody(t, w)
	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 2)
	assert.Equal(t, "Please provide a valid price for the product", errs[0].(map[string]any)["msg"])
	assert.Equal(t, "Please provide a valid category for the product", errs[1].(map[string]any)["msg"])
}

func TestProductIndex(t *testing.T) {
	server := newTestServer(t)
	token := server.register(t, "Hamada", "Helal")
	server.createProduct(t, token, "Keyboard", 49.99, "electronics")
	server.createProduct(t, token, "Mouse", 19.99, "electronics")

	w := testutil.PerformRequest(t, server.engine, http.MethodGet, "/products", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	products := testutil.JSONBodyAs[[]map[string]any](t, w)
	require.Len(t, products, 2)
	assert.Equal(t, "Keyboard", products[0]["name"])
	assert.Equal(t, "Mouse", products[1]["name"])
}

func TestProductIndex_Empty(t *testing.T) {
	server := newTestServer(t)

	w := testutil.PerformRequest(t, server.engine, http.MethodGet, "/products", nil, nil)

	testutil.AssertErrorMsg(t, w, http.StatusNotFound, "No products found")
}

func TestProductShow(t *testing.T) {
	server := newTestServer(t)
	token := server.register(t, "Hamada", "Helal")
	id := server.createProduct(t, token, "Keyboard", 49.99, "electronics")

	w := testutil.PerformRequest(t, server.engine, http.MethodGet, "/products/1", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := testutil.JSONBody(t, w)
	assert.EqualValues(t, id, body["id"])
	assert.Equal(t, "Keyboard", body["name"])
}

func TestProductShow_NotFound(t *testing.T) {
	server := newTestServer(t)

	w := testutil.PerformRequest(t, server.engine, http.MethodGet, "/products/99", nil, nil)

	testutil.AssertErrorMsg(t, w, http.StatusNotFound, "Product associated with this id is not found")
}

func TestProductShow_NonPositiveID(t *testing.T) {
	server := newTestServer(t)

	w := testutil.PerformRequest(t, server.engine, http.MethodGet, "/products/0", nil, nil)

	testutil.AssertErrorMsg(t, w, http.StatusNotFound, "Please provide non-negative product id")
}

func TestProductShow_MalformedID(t *testing.T) {
	server := newTestServer(t)

	w := testutil.PerformRequest(t, server.engine, http.MethodGet, "/products/abcd", nil, nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	body := testutil.JSONBody(t, w)
	assert.Contains(t, body["errorMsg"], "invalid syntax")
}
