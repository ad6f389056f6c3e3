package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"realty-uae-backend/config"
)

// CORSMiddleware adds CORS headers for the site frontend.
//
// SECURITY: This middleware is strict about allowed origins:
// - Production: Only the site domains and FRONTEND_URL
// - Development: Also allows localhost
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	isProduction := cfg.IsProduction()

	// Production domains (always allowed)
	productionOrigins := map[string]bool{
		"https://www.realtyuae.ae": true,
		"https://realtyuae.ae":     true,
	}
	if cfg.FrontendURL != "" {
		productionOrigins[strings.TrimSuffix(cfg.FrontendURL, "/")] = true
	}

	// Development domains (only in non-production mode)
	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
		"http://localhost:5173": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		isAllowed := origin == "" || productionOrigins[origin] || (!isProduction && devOrigins[origin])

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Expose-Headers", "X-Request-ID")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}
		// If not allowed, no CORS headers are sent - browser will block the request

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			if isAllowed {
				c.AbortWithStatus(http.StatusNoContent)
			} else {
				c.AbortWithStatus(http.StatusForbidden)
			}
			return
		}

		c.Next()
	}
}
