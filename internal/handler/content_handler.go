package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/arabic-learning-backend/internal/model"
	"github.com/stemsi/arabic-learning-backend/internal/repository"
	"github.com/stemsi/arabic-learning-backend/internal/response"
	"github.com/stemsi/arabic-learning-backend/internal/service"
	"github.com/stemsi/arabic-learning-backend/internal/validator"
)

const (
	msgContentNotFound = "Content not found"
	msgContentRequired = "Chapter ID, section, and title are required"
	msgContentDeleted  = "Content deleted successfully"
)

// DeleteContentResponse is returned by DELETE /contents/:id.
type DeleteContentResponse struct {
	Message string                 `json:"message"`
	Deleted *model.LearningContent `json:"deleted"`
}

// ContentHandler serves /contents.
type ContentHandler struct {
	contentService service.ContentService
	strictNotFound bool
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentService, strictNotFound bool) *ContentHandler {
	return &ContentHandler{contentService: contentService, strictNotFound: strictNotFound}
}

// List godoc
// GET /contents?chapter=&section=
// Both filters are optional and AND-combined.
func (h *ContentHandler) List(c *gin.Context) (interface{}, error) {
	var filter model.ContentFilter

	if raw := c.Query("chapter"); raw != "" {
		chapter, err := strconv.Atoi(raw)
		if err != nil {
			return nil, response.BadRequest("Invalid chapter")
		}
		filter.ChapterID = &chapter
	}
	if raw := c.Query("section"); raw != "" {
		section := model.Section(raw)
		filter.Section = &section
	}

	return h.contentService.List(c.Request.Context(), filter)
}

// Get godoc
// GET /contents/:id
func (h *ContentHandler) Get(c *gin.Context) (interface{}, error) {
	id, err := contentID(c)
	if err != nil {
		return nil, err
	}

	content, err := h.contentService.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return missing(h.strictNotFound, msgContentNotFound)
	}
	if err != nil {
		return nil, err
	}
	return content, nil
}

// Create godoc
// POST /contents
func (h *ContentHandler) Create(c *gin.Context) (interface{}, error) {
	var req model.CreateContentRequest
	if err := validator.BindJSON(c, &req, msgContentRequired); err != nil {
		return nil, err
	}
	return h.contentService.Create(c.Request.Context(), req)
}

// Delete godoc
// DELETE /contents/:id
// A second delete of the same id answers 404.
func (h *ContentHandler) Delete(c *gin.Context) (interface{}, error) {
	id, err := contentID(c)
	if err != nil {
		return nil, err
	}

	deleted, err := h.contentService.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, response.NotFound(msgContentNotFound)
	}
	if err != nil {
		return nil, err
	}
	return DeleteContentResponse{Message: msgContentDeleted, Deleted: deleted}, nil
}

func contentID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, response.InvalidID("Invalid content id")
	}
	return id, nil
}
