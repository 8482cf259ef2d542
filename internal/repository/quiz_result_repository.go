package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/stemsi/arabic-learning-backend/internal/database"
	"github.com/stemsi/arabic-learning-backend/internal/model"
)

const quizResultColumns = `id,
	COALESCE(student_id, '') AS student_id,
	chapter_id, score, total_questions,
	COALESCE(answers, '{}'::jsonb) AS answers,
	created_at`

// QuizResultRepository handles quiz result data access. Results are append-only.
type QuizResultRepository interface {
	List(ctx context.Context, studentID string) ([]model.QuizResult, error)
	Create(ctx context.Context, q database.Querier, r *model.QuizResult) (*model.QuizResult, error)
}

type quizResultRepository struct {
	db database.Querier
}

func NewQuizResultRepository(db database.Querier) QuizResultRepository {
	return &quizResultRepository{db: db}
}

// List returns results newest first, limited to studentID when it is not empty.
func (r *quizResultRepository) List(ctx context.Context, studentID string) ([]model.QuizResult, error) {
	query := `SELECT ` + quizResultColumns + ` FROM quiz_results`
	var args []any
	if studentID != "" {
		query += ` WHERE student_id = $1`
		args = append(args, studentID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.QuizResult])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return results, nil
}

// Create inserts res through q. An unknown student id fails on the foreign key.
func (r *quizResultRepository) Create(ctx context.Context, q database.Querier, res *model.QuizResult) (*model.QuizResult, error) {
	rows, err := q.Query(ctx,
		`INSERT INTO quiz_results (student_id, chapter_id, score, total_questions, answers)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+quizResultColumns,
		res.StudentID, res.ChapterID, res.Score, res.TotalQuestions, res.Answers,
	)
	if err != nil {
		return nil, err
	}
	return collectOne[model.QuizResult](rows)
}
