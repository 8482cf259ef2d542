package service

import (
	"context"
	"errors"
	"time"

	"github.com/stemsi/arabic-learning-backend/internal/database"
	"github.com/stemsi/arabic-learning-backend/internal/model"
	"github.com/stemsi/arabic-learning-backend/internal/repository"
)

var errDuplicate = errors.New(`ERROR: duplicate key value violates unique constraint "students_pkey" (SQLSTATE 23505)`)

// fakeTx mimics commit/rollback bookkeeping without a database.
type fakeTx struct {
	commits   int
	rollbacks int
}

func (f *fakeTx) WithTransaction(ctx context.Context, fn func(q database.Querier) error) error {
	if err := fn(nil); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

type fakeStudentRepo struct {
	rows []model.Student
}

func (f *fakeStudentRepo) List(ctx context.Context) ([]model.Student, error) {
	return f.rows, nil
}

func (f *fakeStudentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStudentRepo) Create(ctx context.Context, q database.Querier, id, name string) (*model.Student, error) {
	if _, err := f.GetByID(ctx, id); err == nil {
		return nil, errDuplicate
	}
	st := model.Student{ID: id, Name: name, CreatedAt: time.Now()}
	f.rows = append(f.rows, st)
	return &st, nil
}

type fakeContentRepo struct {
	nextID int
	rows   []model.LearningContent
}

func (f *fakeContentRepo) List(ctx context.Context, filter model.ContentFilter) ([]model.LearningContent, error) {
	return f.rows, nil
}

func (f *fakeContentRepo) GetByID(ctx context.Context, id int) (*model.LearningContent, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeContentRepo) Create(ctx context.Context, q database.Querier, c *model.LearningContent) (*model.LearningContent, error) {
	f.nextID++
	stored := *c
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.rows = append(f.rows, stored)
	return &stored, nil
}

func (f *fakeContentRepo) Delete(ctx context.Context, id int) (*model.LearningContent, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			deleted := f.rows[i]
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeQuizRepo struct {
	students map[string]bool
	rows     []model.QuizResult
}

func (f *fakeQuizRepo) List(ctx context.Context, studentID string) ([]model.QuizResult, error) {
	var out []model.QuizResult
	for _, r := range f.rows {
		if studentID == "" || r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeQuizRepo) Create(ctx context.Context, q database.Querier, r *model.QuizResult) (*model.QuizResult, error) {
	if !f.students[r.StudentID] {
		return nil, errors.New(`ERROR: insert or update on table "quiz_results" violates foreign key constraint (SQLSTATE 23503)`)
	}
	stored := *r
	stored.ID = len(f.rows) + 1
	f.rows = append(f.rows, stored)
	return &stored, nil
}
