package controller

import (
	"net/http"
	"strconv"

	"github.com/platziflix/catalog/internal/auth"
	"github.com/platziflix/catalog/internal/domain"
)

// TokenCreate issues a bearer token for a caller-chosen user ID. It exists
// for development and testing against the API; real deployments sit behind an
// identity provider and disable it.
type TokenCreate struct {
	Issuer auth.TokenIssuer
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int64  `json:"user_id"`
}

func (c TokenCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	userID, err := strconv.ParseInt(q.Get("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, r, domain.ValidationError{Message: "user_id must be a positive integer"})
		return
	}

	token, err := c.Issuer.Issue(userID, q.Get("email"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      userID,
	})
}
