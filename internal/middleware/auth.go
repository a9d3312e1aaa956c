package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fixnow/internal/domain"
	jwtsvc "fixnow/internal/pkg/jwt"
	"fixnow/internal/pkg/response"
)

type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Auth validates the bearer token, re-loads the user so deleted
// accounts are rejected, and attaches identity to the request context.
func Auth(jwt *jwtsvc.Service, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, jwtsvc.ErrExpiredToken) {
				msg = "Token expired"
			}
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", msg)
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User no longer exists")
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user_name", user.Name)
		c.Set("user_email", user.Email)
		c.Set("role", string(user.Role))

		c.Next()
	}
}
