package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platziflix/catalog/client"
)

func TestClientGetUserRating(t *testing.T) {
	t.Run("returns the rating", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/courses/7/ratings/user/42", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": 1, "course_id": 7, "user_id": 42, "rating": 4}`))
		}))
		defer server.Close()

		c := client.NewClient(server.URL, nil)
		rating, err := c.GetUserRating(context.Background(), 7, 42)
		require.NoError(t, err)
		require.NotNil(t, rating)
		assert.Equal(t, int64(1), rating.ID)
		assert.Equal(t, 4, rating.Score)
	})

	t.Run("204 means no rating", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		c := client.NewClient(server.URL, nil)
		rating, err := c.GetUserRating(context.Background(), 7, 42)
		require.NoError(t, err)
		assert.Nil(t, rating)
	})

	t.Run("structured error body becomes an APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"kind": "not_found", "message": "course 7 not found"}`))
		}))
		defer server.Close()

		c := client.NewClient(server.URL, nil)
		_, err := c.GetUserRating(context.Background(), 7, 42)

		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "not_found", apiErr.Kind)
		assert.Equal(t, "course 7 not found", apiErr.Message)
	})
}

func TestClientCreateRating(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/courses/7/ratings", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 5, payload["rating"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 1, "course_id": 7, "user_id": 42, "rating": 5}`))
	}))
	defer server.Close()

	c := client.NewClient(server.URL, client.StaticToken("test-token"))
	rating, err := c.CreateRating(context.Background(), 7, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, rating.Score)
	assert.Equal(t, int64(42), rating.UserID)
}

func TestClientGetRatingStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/7/ratings/stats", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"average_rating": 4.21, "total_ratings": 85, "rating_distribution": {"1": 0, "2": 3, "3": 10, "4": 38, "5": 34}}`))
	}))
	defer server.Close()

	c := client.NewClient(server.URL, nil)
	stats, err := c.GetRatingStats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 4.21, stats.AverageRating)
	assert.Equal(t, int64(85), stats.TotalRatings)
	assert.Equal(t, 38, stats.Distribution[4])
}

func TestClientDeleteRating(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/courses/7/ratings/42", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := client.NewClient(server.URL, client.StaticToken("test-token"))
	err := c.DeleteRating(context.Background(), 7, 42)
	require.NoError(t, err)
}
