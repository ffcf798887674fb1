package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"waste-report-server/types"
	"waste-report-server/utils"
)

// Context keys set by AuthMiddleware
const (
	ContextClaims    = "claims"
	ContextSubjectID = "subject_id"
	ContextRole      = "role"
	ContextWorkerID  = "worker_id"
)

// AuthMiddleware validates the bearer token and requires one of roles
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authorization header required",
				"message": "Please provide a valid token",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid token format",
				"message": "Token must be in format: Bearer <token>",
			})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			log.Printf("🔍 AuthMiddleware: Token parsing error: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid token",
				"message": "Token is invalid or expired",
			})
			c.Abort()
			return
		}

		if !hasRole(claims.Role, roles) {
			log.Printf("🚫 AuthMiddleware: role %q denied on %s %s", claims.Role, c.Request.Method, c.FullPath())
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Forbidden",
				"message": "Your role cannot access this resource",
			})
			c.Abort()
			return
		}

		c.Set(ContextClaims, claims)
		c.Set(ContextSubjectID, claims.SubjectID)
		c.Set(ContextRole, claims.Role)
		if claims.Role == types.RoleWorker {
			c.Set(ContextWorkerID, claims.SubjectID)
		}

		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return AuthMiddleware(types.RoleAdmin)
}

func WorkerOnly() gin.HandlerFunc {
	return AuthMiddleware(types.RoleWorker)
}

func hasRole(role string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
