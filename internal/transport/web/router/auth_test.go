package router

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/platziflix/catalog/internal/auth"
	"github.com/platziflix/catalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest(target string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	return r.WithContext(ctx)
}

func TestAuthMiddleware(t *testing.T) {
	var seenUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = domain.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("successful validation attaches the user ID", func(t *testing.T) {
		seenUserID = 0
		validator := func(r *http.Request) (*AuthResult, error) {
			return &AuthResult{UserID: 42}, nil
		}
		handler := NewAuthMiddleware([]AuthValidator{validator})(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, testRequest("/courses"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(42), seenUserID)
	})

	t.Run("no applicable validator passes through unauthenticated", func(t *testing.T) {
		seenUserID = -1
		validator := func(r *http.Request) (*AuthResult, error) {
			return nil, nil
		}
		handler := NewAuthMiddleware([]AuthValidator{validator})(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, testRequest("/courses"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(0), seenUserID)
	})

	t.Run("failure body stays well-formed JSON", func(t *testing.T) {
		validator := func(r *http.Request) (*AuthResult, error) {
			return nil, errors.New(`token audience "catalog" not accepted`)
		}
		handler := NewAuthMiddleware([]AuthValidator{validator})(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, testRequest("/courses"))

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "unauthorized", body["kind"])
		assert.Equal(t, `token audience "catalog" not accepted`, body["message"])
	})
}

func TestJWTValidator(t *testing.T) {
	issuer := auth.TokenIssuer{
		Secret: []byte("test-secret"),
		TTL:    time.Hour,
	}
	validator := NewJWTValidator(issuer)

	t.Run("valid bearer token", func(t *testing.T) {
		token, err := issuer.Issue(42, "")
		require.NoError(t, err)

		r := testRequest("/courses")
		r.Header.Set("Authorization", "Bearer "+token)

		result, err := validator(r)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, int64(42), result.UserID)
	})

	t.Run("no bearer header does not apply", func(t *testing.T) {
		result, err := validator(testRequest("/courses"))
		assert.Nil(t, result)
		assert.NoError(t, err)
	})

	t.Run("garbage token fails", func(t *testing.T) {
		r := testRequest("/courses")
		r.Header.Set("Authorization", "Bearer not-a-token")

		result, err := validator(r)
		assert.Nil(t, result)
		assert.Error(t, err)
	})
}
