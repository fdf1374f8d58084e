package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware mengizinkan frontend (beda origin) akses API.
// Origin produksi diambil dari FRONTEND_URL, sisanya localhost buat dev.
func CORSMiddleware() gin.HandlerFunc {
	allowed := []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}
	if frontend := strings.TrimSuffix(os.Getenv("FRONTEND_URL"), "/"); frontend != "" {
		allowed = append(allowed, frontend)
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		for _, o := range allowed {
			if origin == o {
				c.Header("Access-Control-Allow-Origin", origin)
				break
			}
		}
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Preflight ga perlu diterusin ke handler
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
