package response

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// ContextKeyErrorCode carries the failure code to the logging and metrics middleware.
const ContextKeyErrorCode = "error_code"

// ErrorBody is the JSON body of every failed request. It is also returned with a
// 200 status for GET-by-id misses.
type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
	Stack  string            `json:"stack,omitempty"`
}

// Message is the body of informational responses such as DELETE and the API root.
type Message struct {
	Message string `json:"message"`
	Version string `json:"version,omitempty"`
}

// OK writes data as a 200 JSON response.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Fail aborts the request with the status and message carried by err.
// Untagged errors answer 500 with their raw message; for PostgreSQL errors
// that is the server's message text. The stack trace is
// included only when withStack is set.
func Fail(c *gin.Context, err error, withStack bool) {
	body := ErrorBody{Error: err.Error()}
	var tagged *Error
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &tagged):
		body.Error = tagged.Message
		body.Fields = tagged.Fields
	case errors.As(err, &pgErr):
		// Server message only, without severity and SQLSTATE decoration.
		body.Error = pgErr.Message
	}
	if body.Error == "" {
		body.Error = MsgInternal
	}
	if withStack {
		body.Stack = stackOf(err)
	}

	c.Set(ContextKeyErrorCode, string(CodeOf(err)))
	_ = c.Error(err)
	c.AbortWithStatusJSON(StatusOf(err), body)
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func stackOf(err error) string {
	var st stackTracer
	if !errors.As(err, &st) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%+v", st.StackTrace()))
}
