package response

import (
	"net/http"

	"github.com/pkg/errors"
)

// ErrCode classifies an API error for logs and metrics. It never reaches the body.
type ErrCode string

const (
	ErrValidation        ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload    ErrCode = "INVALID_PAYLOAD"
	ErrInvalidID         ErrCode = "INVALID_ID"
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrMethodNotAllowed  ErrCode = "METHOD_NOT_ALLOWED"
	ErrNotImplemented    ErrCode = "NOT_IMPLEMENTED"
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"
	ErrInternal          ErrCode = "INTERNAL_ERROR"
)

// Fixed messages shared by the router and handlers.
const (
	MsgBodyRequired     = "Request body is required"
	MsgInvalidJSON      = "Invalid JSON body"
	MsgEndpointNotFound = "Endpoint not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgNotImplemented   = "Not implemented"
	MsgRateLimited      = "Too many requests"
	MsgInternal         = "Internal server error"
)

// Error is an error tagged with the HTTP status the boundary answers with.
type Error struct {
	Status  int
	Code    ErrCode
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string { return e.Message }

func newError(status int, code ErrCode, msg string, fields map[string]string) error {
	return errors.WithStack(&Error{Status: status, Code: code, Message: msg, Fields: fields})
}

// BadRequest tags a client input error.
func BadRequest(msg string) error {
	return newError(http.StatusBadRequest, ErrInvalidPayload, msg, nil)
}

// Validation tags a missing or invalid required field error.
func Validation(msg string, fields map[string]string) error {
	return newError(http.StatusBadRequest, ErrValidation, msg, fields)
}

// InvalidID tags a malformed path id.
func InvalidID(msg string) error {
	return newError(http.StatusBadRequest, ErrInvalidID, msg, nil)
}

func NotFound(msg string) error {
	return newError(http.StatusNotFound, ErrNotFound, msg, nil)
}

func MethodNotAllowed() error {
	return newError(http.StatusMethodNotAllowed, ErrMethodNotAllowed, MsgMethodNotAllowed, nil)
}

func NotImplemented() error {
	return newError(http.StatusNotImplemented, ErrNotImplemented, MsgNotImplemented, nil)
}

func TooManyRequests() error {
	return newError(http.StatusTooManyRequests, ErrRateLimitExceeded, MsgRateLimited, nil)
}

// StatusOf returns the tagged status of err, or 500 when untagged.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// CodeOf returns the tagged code of err, or ErrInternal when untagged.
func CodeOf(err error) ErrCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrInternal
}
