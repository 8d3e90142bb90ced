package config

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HTTPSEnforcer redirects plain HTTP to HTTPS when running in release mode
// or when ENFORCE_HTTPS is set. Local hosts are exempt so development and
// test traffic stays untouched.
type HTTPSEnforcer struct {
	enabled bool
	logger  *zap.Logger
}

func NewHTTPSEnforcer(logger *zap.Logger) *HTTPSEnforcer {
	enabled := os.Getenv("GIN_MODE") == "release" || os.Getenv("ENFORCE_HTTPS") == "true"

	return &HTTPSEnforcer{enabled: enabled, logger: logger}
}

func (he *HTTPSEnforcer) HTTPSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !he.enabled || he.secure(c) || he.localHost(c) {
			c.Next()
			return
		}

		host := c.GetHeader("Host")
		target := "https://" + host + c.Request.RequestURI

		he.logger.Info("Redirecting to HTTPS",
			zap.String("original_url", c.Request.URL.String()),
			zap.String("https_url", target),
			zap.String("user_agent", c.GetHeader("User-Agent")))

		c.Redirect(http.StatusMovedPermanently, target)
		c.Abort()
	}
}

func (he *HTTPSEnforcer) secure(c *gin.Context) bool {
	return c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https"
}

func (he *HTTPSEnforcer) localHost(c *gin.Context) bool {
	host := c.GetHeader("Host")
	return strings.Contains(host, "localhost") || strings.Contains(host, "127.0.0.1")
}

func (he *HTTPSEnforcer) SetEnabled(enabled bool) {
	he.enabled = enabled
}

func (he *HTTPSEnforcer) IsEnabled() bool {
	return he.enabled
}
