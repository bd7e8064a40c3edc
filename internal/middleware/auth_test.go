package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shelfmark/core/internal/config"
	"github.com/shelfmark/core/internal/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	rows map[string]uint
}

func (m *memStore) Insert(_ context.Context, userID uint, tok string, _ time.Time) error {
	m.rows[tok] = userID
	return nil
}

func (m *memStore) Exists(_ context.Context, tok string) (bool, error) {
	_, ok := m.rows[tok]
	return ok, nil
}

func authTestSetup(t *testing.T) (*gin.Engine, *token.Service, *memStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &memStore{rows: map[string]uint{}}
	tokens, err := token.New(config.AuthConfig{
		JWTSecret:    "test-secret",
		JWTAlgorithm: "HS256",
		TokenTTLMin:  30,
	}, store)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/whoami", Auth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c)})
	})
	return r, tokens, store
}

func doRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		r, tokens, _ := authTestSetup(t)
		tok, err := tokens.Issue(context.Background(), 11)
		require.NoError(t, err)

		w := doRequest(r, "Bearer "+tok)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id": 11}`, w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		r, _, _ := authTestSetup(t)
		w := doRequest(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		r, tokens, _ := authTestSetup(t)
		tok, err := tokens.Issue(context.Background(), 11)
		require.NoError(t, err)

		w := doRequest(r, "Basic "+tok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		r, _, _ := authTestSetup(t)
		w := doRequest(r, "Bearer definitely-not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		r, tokens, _ := authTestSetup(t)
		tok, err := tokens.IssueWithTTL(context.Background(), 11, -time.Minute)
		require.NoError(t, err)

		w := doRequest(r, "Bearer "+tok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked token is forbidden", func(t *testing.T) {
		r, tokens, store := authTestSetup(t)
		tok, err := tokens.Issue(context.Background(), 11)
		require.NoError(t, err)
		delete(store.rows, tok)

		w := doRequest(r, "Bearer "+tok)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"standard", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"case insensitive scheme", "bearer abc", "abc", true},
		{"no scheme", "abc", "", false},
		{"empty token", "Bearer   ", "", false},
		{"empty header", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}
			got, ok := bearerToken(c)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
