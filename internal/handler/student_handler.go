package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/arabic-learning-backend/internal/model"
	"github.com/stemsi/arabic-learning-backend/internal/repository"
	"github.com/stemsi/arabic-learning-backend/internal/service"
	"github.com/stemsi/arabic-learning-backend/internal/validator"
)

const (
	msgStudentNotFound = "Student not found"
	msgStudentRequired = "ID and name are required"
)

// StudentHandler serves /students.
type StudentHandler struct {
	studentService service.StudentService
	strictNotFound bool
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService service.StudentService, strictNotFound bool) *StudentHandler {
	return &StudentHandler{studentService: studentService, strictNotFound: strictNotFound}
}

// List godoc
// GET /students
func (h *StudentHandler) List(c *gin.Context) (interface{}, error) {
	return h.studentService.List(c.Request.Context())
}

// Get godoc
// GET /students/:id
func (h *StudentHandler) Get(c *gin.Context) (interface{}, error) {
	student, err := h.studentService.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return missing(h.strictNotFound, msgStudentNotFound)
	}
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Create godoc
// POST /students
func (h *StudentHandler) Create(c *gin.Context) (interface{}, error) {
	var req model.CreateStudentRequest
	if err := validator.BindJSON(c, &req, msgStudentRequired); err != nil {
		return nil, err
	}
	return h.studentService.Create(c.Request.Context(), req)
}
