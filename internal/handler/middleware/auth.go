package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Jes6241/parquimetros-api/internal/pkg/cookie"
	"github.com/Jes6241/parquimetros-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxAgentIDKey    = "agent_id"
	ctxAgentEmailKey = "agent_email"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Access token required",
			})
			c.Abort()
			return
		}

		agentID, email, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAgentIDKey, agentID.String())
		c.Set(ctxAgentEmailKey, email)
		c.Next()
	}
}

func GetAgentID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString(ctxAgentIDKey)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func GetAgentEmail(c *gin.Context) (string, bool) {
	email := c.GetString(ctxAgentEmailKey)
	return email, email != ""
}
