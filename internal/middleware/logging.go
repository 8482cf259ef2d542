package middleware

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stemsi/arabic-learning-backend/internal/response"
)

// RequestLogger writes one structured line per request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		evt := log.Info()
		switch {
		case status >= 500:
			evt = log.Error()
		case status >= 400:
			evt = log.Warn()
		}

		evt = evt.
			Str("request_id", response.RequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP())
		if code := c.GetString(response.ContextKeyErrorCode); code != "" {
			evt = evt.Str("error_code", code)
		}
		if last := c.Errors.Last(); last != nil {
			evt = evt.Err(last.Err)
		}
		evt.Msg("request completed")
	}
}

// Recovery turns a handler panic into a 500 error body.
func Recovery(log zerolog.Logger, withStack bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		err := errors.WithStack(fmt.Errorf("panic: %v", recovered))
		log.Error().
			Str("request_id", response.RequestID(c)).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Msg("handler panicked")
		response.Fail(c, err, withStack)
	})
}
