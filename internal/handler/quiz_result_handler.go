package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stemsi/arabic-learning-backend/internal/model"
	"github.com/stemsi/arabic-learning-backend/internal/service"
	"github.com/stemsi/arabic-learning-backend/internal/validator"
)

const msgQuizResultRequired = "Missing required fields"

// QuizResultHandler serves /quiz-results.
type QuizResultHandler struct {
	resultService service.QuizResultService
}

func NewQuizResultHandler(resultService service.QuizResultService) *QuizResultHandler {
	return &QuizResultHandler{resultService: resultService}
}

// List godoc
// GET /quiz-results?student_id=
func (h *QuizResultHandler) List(c *gin.Context) (interface{}, error) {
	return h.resultService.List(c.Request.Context(), c.Query("student_id"))
}

// Submit godoc
// POST /quiz-results
func (h *QuizResultHandler) Submit(c *gin.Context) (interface{}, error) {
	var req model.SubmitQuizResultRequest
	if err := validator.BindJSON(c, &req, msgQuizResultRequired); err != nil {
		return nil, err
	}
	return h.resultService.Submit(c.Request.Context(), req)
}
