package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/linkkeeper/pkg/api"
)

func TestClient_Register(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "testuser", req.Username)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.UserResponse{ID: "user-1", Username: req.Username})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	resp, err := client.Register(context.Background(), api.RegisterRequest{
		Username: "testuser",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.ID)
	assert.Equal(t, "testuser", resp.Username)
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.LoginResponse{
			Message:     "Login successful",
			AccessToken: "token123",
			TokenType:   "bearer",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	resp, err := client.Login(context.Background(), api.LoginRequest{
		Username: "testuser",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "token123", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{
			Error: api.ErrorDetail{Code: "unauthorized", Message: "Invalid credentials"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	_, err := client.Login(context.Background(), api.LoginRequest{
		Username: "testuser",
		Password: "wrongpassword",
	})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "unauthorized", apiErr.Code)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestClient_APIError_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	_, err := client.ListCollections(context.Background(), "")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	// Код неизвестен, сообщение берется из статуса
	assert.Empty(t, apiErr.Code)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestClient_AuthorizedRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/collections":
			assert.Equal(t, "desc", r.URL.Query().Get("sort_order"))
			_ = json.NewEncoder(w).Encode([]api.CollectionResponse{
				{ID: "col-1", Title: "Articles", UserID: "user-1"},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/collections":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(api.CollectionResponse{ID: "col-2", Title: "Videos", UserID: "user-1"})
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/collections/col-1/items":
			_ = json.NewEncoder(w).Encode([]api.ItemResponse{
				{ID: "item-1", Title: "Effective Go", CollectionID: "col-1"},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/collections/col-1/items":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(api.ItemResponse{ID: "item-2", Title: "New", CollectionID: "col-1"})
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	client := NewClient(srv.URL)
	client.SetToken("token123")

	collections, err := client.ListCollections(ctx, "desc")
	require.NoError(t, err)
	require.Len(t, collections, 1)
	assert.Equal(t, "Articles", collections[0].Title)

	created, err := client.CreateCollection(ctx, api.CreateCollectionRequest{Title: "Videos"})
	require.NoError(t, err)
	assert.Equal(t, "col-2", created.ID)

	items, err := client.ListItems(ctx, "col-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Effective Go", items[0].Title)

	item, err := client.CreateItem(ctx, "col-1", api.CreateItemRequest{Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, "item-2", item.ID)
}
