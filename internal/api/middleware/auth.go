package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/config"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/domain/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RequireRoles rejects authenticated requests whose token role is not
// in the allowed set. Must run after JWTAuthMiddleware.
func RequireRoles(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			c.Abort()
			return
		}
		for _, r := range roles {
			if claims.Role == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Insufficient permissions."})
		c.Abort()
	}
}

// CORSMiddleware allows the local dev frontends plus the configured
// production origin.
func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost:") {
				return true
			}
			if strings.HasPrefix(origin, "http://127.0.0.1:") {
				return true
			}
			return config.AllowedOrigin != "" && origin == config.AllowedOrigin
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	return cors.New(cfg)
}

// LoggingMiddleware logs one line per request with latency and status.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
