package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/inventory-tracker/internal/models"
)

func TestLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Login successful",
			"data": map[string]any{
				"token": "jwt-token",
				"user":  map[string]string{"id": "uid-123", "username": "alice"},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	result, err := c.Login(context.Background(), "alice", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", result.Token)
	assert.Equal(t, "uid-123", result.User.ID)
	assert.Equal(t, "jwt-token", c.token)
}

func TestBearerTokenIsSent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Categories retrieved successfully",
			"data":    []string{"Uncategorized", "Snacks"},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("jwt-token")

	names, err := c.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Uncategorized", "Snacks"}, names)
}

func TestAPIErrorFromEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Product not found",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("jwt-token")

	_, err := c.GetProduct(context.Background(), "p-ghost")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Product not found", apiErr.Message)
}

func TestListProductsQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Snacks", r.URL.Query().Get("category"))
		assert.Equal(t, "chip", r.URL.Query().Get("search"))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Products retrieved successfully",
			"data":    []models.Product{{ID: "p-1", Name: "Chips", Category: "Snacks"}},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	products, err := c.ListProducts(context.Background(), models.ProductFilter{Category: "Snacks", Search: "chip"})

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Chips", products[0].Name)
}
