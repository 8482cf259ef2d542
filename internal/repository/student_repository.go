package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/stemsi/arabic-learning-backend/internal/database"
	"github.com/stemsi/arabic-learning-backend/internal/model"
)

const studentColumns = `id, name, created_at`

// StudentRepository handles student data access.
type StudentRepository interface {
	List(ctx context.Context) ([]model.Student, error)
	GetByID(ctx context.Context, id string) (*model.Student, error)
	Create(ctx context.Context, q database.Querier, id, name string) (*model.Student, error)
}

type studentRepository struct {
	db database.Querier
}

// NewStudentRepository creates a StudentRepository reading through db.
func NewStudentRepository(db database.Querier) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.db.Query(ctx, `SELECT `+studentColumns+` FROM students ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	students, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Student])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return students, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*model.Student, error) {
	rows, err := r.db.Query(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return collectOne[model.Student](rows)
}

// Create inserts a student through q, usually a transaction. A duplicate id
// surfaces the unique-constraint violation untouched.
func (r *studentRepository) Create(ctx context.Context, q database.Querier, id, name string) (*model.Student, error) {
	rows, err := q.Query(ctx,
		`INSERT INTO students (id, name)
		 VALUES ($1, $2)
		 RETURNING `+studentColumns,
		id, name,
	)
	if err != nil {
		return nil, err
	}
	return collectOne[model.Student](rows)
}

// collectOne scans exactly one row into T, mapping an empty result to ErrNotFound.
func collectOne[T any](rows pgx.Rows) (*T, error) {
	v, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return v, nil
}
