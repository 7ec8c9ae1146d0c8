package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/padel-booking-backend/auth"
	"github.com/hanksha/padel-booking-backend/user"
)

//go:generate mockgen -source=auth_middleware.go -destination=mocks/mock_auth.go -package=mocks

const principalKey = "principal"

type TokenParser interface {
	Parse(token string) (auth.Principal, error)
}

type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, id int64) (auth.Principal, error)
}

// Authenticate reads the bearer token and stores the caller's current
// principal in the context. The role comes from the user record, not from
// the token, so demotions apply before the token expires.
func Authenticate(tokens TokenParser, principals PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")

		if !found || len(strings.TrimSpace(token)) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			return
		}

		claimed, err := tokens.Parse(strings.TrimSpace(token))

		if err != nil {
			c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			return
		}

		principal, err := principals.ResolvePrincipal(c.Request.Context(), claimed.UserID)

		if errors.Is(err, user.ErrUserNotFound) {
			c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			return
		}

		if err != nil {
			respondError(c, err, "failed to authenticate")
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !principalFrom(c).IsAdministrator() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			return
		}
	}
}

func principalFrom(c *gin.Context) auth.Principal {
	return c.MustGet(principalKey).(auth.Principal)
}
