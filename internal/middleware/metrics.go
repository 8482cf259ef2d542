package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/arabic-learning-backend/internal/response"
)

// RequestObserver receives one observation per finished request.
type RequestObserver interface {
	ObserveRequest(route, method string, status int, elapsed time.Duration)
	ObserveError(code string)
}

// Metrics feeds request outcomes to obs. Routes are labelled by their
// pattern so ids do not explode the label set.
func Metrics(obs RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		obs.ObserveRequest(c.FullPath(), c.Request.Method, c.Writer.Status(), time.Since(start))
		if code := c.GetString(response.ContextKeyErrorCode); code != "" {
			obs.ObserveError(code)
		}
	}
}
