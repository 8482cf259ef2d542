package router

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pkgerrors "github.com/pkg/errors"
	"github.com/stemsi/arabic-learning-backend/internal/model"
	"github.com/stemsi/arabic-learning-backend/internal/repository"
)

var errStore = &pgconn.PgError{
	Severity:       "ERROR",
	Code:           "23503",
	Message:        `insert or update on table "quiz_results" violates foreign key constraint "quiz_results_student_id_fkey"`,
	ConstraintName: "quiz_results_student_id_fkey",
}

type fakeStudents struct {
	rows      []model.Student
	panicList bool
}

func (f *fakeStudents) List(ctx context.Context) ([]model.Student, error) {
	if f.panicList {
		panic("boom")
	}
	return f.rows, nil
}

func (f *fakeStudents) GetByID(ctx context.Context, id string) (*model.Student, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStudents) Create(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error) {
	st := model.Student{ID: req.ID, Name: req.Name, CreatedAt: time.Now()}
	f.rows = append([]model.Student{st}, f.rows...)
	return &st, nil
}

type fakeContents struct {
	nextID     int
	rows       map[int]model.LearningContent
	lastFilter model.ContentFilter
}

func newFakeContents() *fakeContents {
	return &fakeContents{nextID: 1, rows: make(map[int]model.LearningContent)}
}

func (f *fakeContents) List(ctx context.Context, filter model.ContentFilter) ([]model.LearningContent, error) {
	f.lastFilter = filter
	out := make([]model.LearningContent, 0, len(f.rows))
	for _, c := range f.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeContents) GetByID(ctx context.Context, id int) (*model.LearningContent, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (f *fakeContents) Create(ctx context.Context, req model.CreateContentRequest) (*model.LearningContent, error) {
	c := model.LearningContent{
		ID:          f.nextID,
		ChapterID:   req.ChapterID,
		Section:     req.Section,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	f.rows[c.ID] = c
	f.nextID++
	return &c, nil
}

func (f *fakeContents) Delete(ctx context.Context, id int) (*model.LearningContent, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(f.rows, id)
	return &c, nil
}

type fakeResults struct {
	rows       []model.QuizResult
	knownIDs   map[string]bool
	lastFilter string
}

func (f *fakeResults) List(ctx context.Context, studentID string) ([]model.QuizResult, error) {
	f.lastFilter = studentID
	out := []model.QuizResult{}
	for _, r := range f.rows {
		if studentID == "" || r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResults) Submit(ctx context.Context, req model.SubmitQuizResultRequest) (*model.QuizResult, error) {
	if !f.knownIDs[req.StudentID] {
		return nil, pkgerrors.WithStack(errStore)
	}
	answers := req.Answers
	if len(answers) == 0 {
		answers = json.RawMessage(`{}`)
	}
	r := model.QuizResult{
		ID:             len(f.rows) + 1,
		StudentID:      req.StudentID,
		ChapterID:      req.ChapterID,
		Score:          *req.Score,
		TotalQuestions: req.TotalQuestions,
		Answers:        answers,
		CreatedAt:      time.Now(),
	}
	f.rows = append(f.rows, r)
	return &r, nil
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	return f.err
}
