package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/auth"
)

// AuthMiddleware verifies the bearer token and attaches the actor. It never
// touches the store.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			_ = c.Error(apperror.Unauthorized("Access denied. No token provided."))
			c.Abort()
			return
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
			_ = c.Error(apperror.Unauthorized("Authorization header must be 'Bearer <token>'"))
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			_ = c.Error(apperror.InvalidToken("Invalid or expired token", err))
			c.Abort()
			return
		}

		c.Set(string(domain.KeyActor), &domain.Actor{
			ID:    claims.ID,
			Email: claims.Email,
			Phone: claims.Phone,
			Role:  claims.Role,
		})
		c.Next()
	}
}

// ActorFrom returns the actor attached by AuthMiddleware, or nil.
func ActorFrom(c *gin.Context) *domain.Actor {
	v, ok := c.Get(string(domain.KeyActor))
	if !ok {
		return nil
	}
	actor, _ := v.(*domain.Actor)
	return actor
}
