package middleware

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

// bufferedWriter holds the body until the handler chain returns so the
// compression decision can use the full length.
type bufferedWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bufferedWriter) Write(data []byte) (int, error) {
	return w.buf.Write(data)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	return w.buf.WriteString(s)
}

// Brotli compresses bodies of at least minBytes for clients that accept br.
// Content listings carry inline file data, so they are the usual beneficiaries.
func Brotli(minBytes int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodHead || !acceptsBrotli(c.Request) {
			c.Next()
			return
		}

		c.Header("Vary", "Accept-Encoding")
		orig := c.Writer
		bw := &bufferedWriter{ResponseWriter: orig}
		c.Writer = bw

		c.Next()

		c.Writer = orig
		body := bw.buf.Bytes()
		if len(body) == 0 {
			return
		}
		if len(body) < minBytes {
			if _, err := orig.Write(body); err != nil {
				_ = c.Error(err)
			}
			return
		}

		orig.Header().Set("Content-Encoding", "br")
		orig.Header().Del("Content-Length")
		zw := brotli.NewWriterLevel(orig, brotli.DefaultCompression)
		if _, err := zw.Write(body); err != nil {
			_ = c.Error(err)
		}
		if err := zw.Close(); err != nil {
			_ = c.Error(err)
		}
	}
}

func acceptsBrotli(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(enc), ";")
		if strings.EqualFold(name, "br") {
			return true
		}
	}
	return false
}
