package middleware

import (
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the SPA dev servers to call the API directly.
// Only well-known local origins are accepted; anything else gets no CORS
// headers and the browser blocks the request.
func CORSMiddleware(extraOrigin string) gin.HandlerFunc {
	allowed := map[string]bool{
		"http://localhost:3000": true,
		"http://localhost:5173": true,
		"http://127.0.0.1:3000": true,
		"http://127.0.0.1:5173": true,
	}
	if extraOrigin != "" {
		allowed[extraOrigin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// same-origin requests carry no Origin header
		isAllowed := origin == "" || allowed[origin]

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
			c.Header("Access-Control-Max-Age", "86400")
		}
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
