package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/platziflix/catalog/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCreate_ServeHTTP(t *testing.T) {
	issuer := auth.TokenIssuer{
		Secret: []byte("test-secret"),
		TTL:    time.Hour,
	}
	ctrl := TokenCreate{Issuer: issuer}

	t.Run("issues a usable token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/token?user_id=42&email=dev@example.com", nil)
		req = testContext()(req)
		rec := httptest.NewRecorder()

		ctrl.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
			UserID      int64  `json:"user_id"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, int64(42), resp.UserID)

		claims, err := issuer.Validate(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "dev@example.com", claims.Email)
	})

	t.Run("rejects bad user ids", func(t *testing.T) {
		for _, query := range []string{"", "user_id=0", "user_id=-3", "user_id=abc"} {
			req := httptest.NewRequest(http.MethodPost, "/auth/token?"+query, nil)
			req = testContext()(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code, "query %q", query)
		}
	})
}
