package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shelfmark/core/internal/pkg/response"
	"github.com/shelfmark/core/internal/pkg/token"
)

const ContextKeyUserID = "user_id"

// Auth returns a middleware enforcing bearer-token authentication. The token
// must arrive as "Authorization: Bearer <token>"; any other scheme is a
// rejection. On success the resolved user id is stored on the context for
// resource-level authorization checks.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			response.Unauthorized(c, "missing or invalid authorization header")
			return
		}

		userID, err := tokens.Verify(c.Request.Context(), raw)
		if err != nil {
			switch {
			case errors.Is(err, token.ErrExpired):
				response.Unauthorized(c, "token has expired")
			case errors.Is(err, token.ErrMalformed):
				response.Unauthorized(c, "invalid token")
			case errors.Is(err, token.ErrUnknown):
				response.Forbidden(c, "token not recognized")
			default:
				response.InternalError(c, err)
			}
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(uint)
	return id
}

// IsAuthenticated reports whether the request carries a resolved identity.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != 0
}

func bearerToken(c *gin.Context) (string, bool) {
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if auth == "" {
		return "", false
	}
	scheme, rest, found := strings.Cut(auth, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(rest)
	if tok == "" {
		return "", false
	}
	return tok, true
}
