package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/arabic-learning-backend/internal/response"
)

// AllowedMethods are the only methods the API dispatches. Anything else is 405.
var AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}

// OpenCORS allows every origin. Used when no origin list is configured.
func OpenCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Next()
	}
}

// JSONContentType marks every response as JSON, including empty ones.
func JSONContentType() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.Next()
	}
}

// MethodGuard answers OPTIONS with an empty 200 and rejects methods outside
// AllowedMethods before any route is dispatched.
func MethodGuard(withStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		for _, m := range AllowedMethods {
			if m == method {
				c.Next()
				return
			}
		}
		response.Fail(c, response.MethodNotAllowed(), withStack)
	}
}
