package pkg

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultPort = "8080"

func GetServerPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}

	return defaultPort
}

// GetClientIP resolves the caller address behind proxies. X-Forwarded-For
// may carry a chain; the leftmost hop is the original client.
func GetClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}

	if ip := c.ClientIP(); ip != "" {
		return ip
	}

	return "unknown"
}
