package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/stemsi/arabic-learning-backend/internal/model"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrContentNotFound = errors.New("content not found")
)

// StudentsAPI wraps /students.
type StudentsAPI struct {
	c *Client
}

func (a *StudentsAPI) List(ctx context.Context) ([]model.Student, error) {
	var out []model.Student
	_, err := a.c.Do(ctx, http.MethodGet, "/students", nil, &out)
	return out, err
}

func (a *StudentsAPI) Create(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error) {
	var out model.Student
	if _, err := a.c.Do(ctx, http.MethodPost, "/students", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByID returns ErrStudentNotFound when the API answers with an error body.
func (a *StudentsAPI) GetByID(ctx context.Context, id string) (*model.Student, error) {
	var out struct {
		model.Student
		Error string `json:"error"`
	}
	if _, err := a.c.Do(ctx, http.MethodGet, "/students/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, ErrStudentNotFound
	}
	return &out.Student, nil
}

// ContentsAPI wraps /contents.
type ContentsAPI struct {
	c *Client
}

// List filters by chapter when it is non-zero and by section when non-empty.
func (a *ContentsAPI) List(ctx context.Context, chapter int, section model.Section) ([]model.LearningContent, error) {
	params := url.Values{}
	if chapter != 0 {
		params.Set("chapter", strconv.Itoa(chapter))
	}
	if section != "" {
		params.Set("section", string(section))
	}
	endpoint := "/contents"
	if q := params.Encode(); q != "" {
		endpoint += "?" + q
	}

	var out []model.LearningContent
	_, err := a.c.Do(ctx, http.MethodGet, endpoint, nil, &out)
	return out, err
}

func (a *ContentsAPI) Create(ctx context.Context, req model.CreateContentRequest) (*model.LearningContent, error) {
	var out model.LearningContent
	if _, err := a.c.Do(ctx, http.MethodPost, "/contents", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByID returns ErrContentNotFound when the API answers with an error body.
func (a *ContentsAPI) GetByID(ctx context.Context, id int) (*model.LearningContent, error) {
	var out struct {
		model.LearningContent
		Error string `json:"error"`
	}
	if _, err := a.c.Do(ctx, http.MethodGet, "/contents/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, ErrContentNotFound
	}
	return &out.LearningContent, nil
}

// DeleteResult is the answer of a successful delete.
type DeleteResult struct {
	Message string                 `json:"message"`
	Deleted *model.LearningContent `json:"deleted"`
}

func (a *ContentsAPI) Delete(ctx context.Context, id int) (*DeleteResult, error) {
	var out DeleteResult
	if _, err := a.c.Do(ctx, http.MethodDelete, "/contents/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QuizResultsAPI wraps /quiz-results.
type QuizResultsAPI struct {
	c *Client
}

// Submission is the body of a quiz result submission.
type Submission struct {
	StudentID      string      `json:"student_id"`
	ChapterID      int         `json:"chapter_id"`
	Score          int         `json:"score"`
	TotalQuestions int         `json:"total_questions"`
	Answers        interface{} `json:"answers,omitempty"`
}

func (a *QuizResultsAPI) Submit(ctx context.Context, sub Submission) (*model.QuizResult, error) {
	var out model.QuizResult
	if _, err := a.c.Do(ctx, http.MethodPost, "/quiz-results", sub, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns every result, or only studentID's when it is non-empty.
func (a *QuizResultsAPI) List(ctx context.Context, studentID string) ([]model.QuizResult, error) {
	endpoint := "/quiz-results"
	if studentID != "" {
		endpoint += "?" + url.Values{"student_id": {studentID}}.Encode()
	}
	var out []model.QuizResult
	_, err := a.c.Do(ctx, http.MethodGet, endpoint, nil, &out)
	return out, err
}

// answersOrNil keeps an absent answer set out of the request body so the
// server stores its default.
func answersOrNil(answers interface{}) interface{} {
	if raw, ok := answers.(json.RawMessage); ok && len(raw) == 0 {
		return nil
	}
	return answers
}
