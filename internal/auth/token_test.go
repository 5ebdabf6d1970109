package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := TokenIssuer{Secret: []byte("test-secret"), TTL: time.Hour}

	token, err := issuer.Issue(42, "test@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenIssuer_Validate(t *testing.T) {
	issuer := TokenIssuer{Secret: []byte("test-secret"), TTL: time.Hour}

	cases := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "garbage",
			token: func(t *testing.T) string {
				return "not-a-token"
			},
		},
		{
			name: "wrong_secret",
			token: func(t *testing.T) string {
				other := TokenIssuer{Secret: []byte("other-secret"), TTL: time.Hour}
				token, err := other.Issue(42, "")
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				expired := TokenIssuer{Secret: []byte("test-secret"), TTL: -time.Minute}
				token, err := expired.Issue(42, "")
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "missing_user_id",
			token: func(t *testing.T) string {
				token, err := issuer.Issue(0, "")
				require.NoError(t, err)
				return token
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := issuer.Validate(tc.token(t))
			assert.Error(t, err)
		})
	}
}
