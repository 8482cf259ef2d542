package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/arabic-learning-backend/internal/response"
)

const (
	apiName    = "Arabic Learning Platform API"
	apiVersion = "1.0.0"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// APIHandler serves the API root and the health probe.
type APIHandler struct {
	db Pinger
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(db Pinger) *APIHandler {
	return &APIHandler{db: db}
}

// Root godoc
// GET /
func (h *APIHandler) Root(c *gin.Context) (interface{}, error) {
	return response.Message{Message: apiName, Version: apiVersion}, nil
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health godoc
// GET /health
// Answers 503 when the database cannot be reached.
func (h *APIHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthStatus{Status: "degraded", Database: err.Error()})
		return
	}
	c.JSON(http.StatusOK, HealthStatus{Status: "ok", Database: "ok"})
}
