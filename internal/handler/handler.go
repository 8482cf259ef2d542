// Package handler parses requests, validates input through the validator
// package and calls the service layer. Handlers return their result or a
// tagged error; the router writes both.
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stemsi/arabic-learning-backend/internal/response"
)

// Func is the signature every resource endpoint implements.
type Func func(c *gin.Context) (interface{}, error)

// missing answers a GET-by-id miss. By default the miss is a 200 carrying an
// error body, which existing clients rely on; strict mode turns it into a 404.
func missing(strict bool, msg string) (interface{}, error) {
	if strict {
		return nil, response.NotFound(msg)
	}
	return response.ErrorBody{Error: msg}, nil
}
