package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/stemsi/arabic-learning-backend/internal/database"
	"github.com/stemsi/arabic-learning-backend/internal/model"
)

// Nullable columns are coalesced so rows written outside the API still scan.
const contentColumns = `id, chapter_id, section, title,
	COALESCE(description, '') AS description,
	COALESCE(file_names, '{}') AS file_names,
	COALESCE(file_types, '{}') AS file_types,
	COALESCE(file_sizes, '{}') AS file_sizes,
	COALESCE(file_contents, '{}') AS file_contents,
	COALESCE(file_datas, '{}') AS file_datas,
	COALESCE(file_count, 0) AS file_count,
	created_at`

// ContentRepository handles learning content data access.
type ContentRepository interface {
	List(ctx context.Context, filter model.ContentFilter) ([]model.LearningContent, error)
	GetByID(ctx context.Context, id int) (*model.LearningContent, error)
	Create(ctx context.Context, q database.Querier, c *model.LearningContent) (*model.LearningContent, error)
	Delete(ctx context.Context, id int) (*model.LearningContent, error)
}

type contentRepository struct {
	db database.Querier
}

// NewContentRepository creates a ContentRepository reading through db.
func NewContentRepository(db database.Querier) ContentRepository {
	return &contentRepository{db: db}
}

// List returns contents matching every set filter, newest first.
func (r *contentRepository) List(ctx context.Context, filter model.ContentFilter) ([]model.LearningContent, error) {
	query, args := buildContentListQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	contents, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.LearningContent])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return contents, nil
}

func buildContentListQuery(filter model.ContentFilter) (string, []any) {
	query := `SELECT ` + contentColumns + ` FROM learning_contents`
	var conditions []string
	var args []any

	if filter.ChapterID != nil {
		args = append(args, *filter.ChapterID)
		conditions = append(conditions, `chapter_id = $`+strconv.Itoa(len(args)))
	}
	if filter.Section != nil {
		args = append(args, string(*filter.Section))
		conditions = append(conditions, `section = $`+strconv.Itoa(len(args)))
	}

	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	query += ` ORDER BY created_at DESC`
	return query, args
}

func (r *contentRepository) GetByID(ctx context.Context, id int) (*model.LearningContent, error) {
	rows, err := r.db.Query(ctx, `SELECT `+contentColumns+` FROM learning_contents WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return collectOne[model.LearningContent](rows)
}

// Create inserts c through q and returns the stored row.
func (r *contentRepository) Create(ctx context.Context, q database.Querier, c *model.LearningContent) (*model.LearningContent, error) {
	rows, err := q.Query(ctx,
		`INSERT INTO learning_contents
		 (chapter_id, section, title, description, file_names, file_types, file_sizes, file_contents, file_datas, file_count)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+contentColumns,
		c.ChapterID, string(c.Section), c.Title, c.Description,
		c.FileNames, c.FileTypes, c.FileSizes, c.FileContents, c.FileDatas,
		c.FileCount,
	)
	if err != nil {
		return nil, err
	}
	return collectOne[model.LearningContent](rows)
}

// Delete removes the content and returns the deleted row, or ErrNotFound.
func (r *contentRepository) Delete(ctx context.Context, id int) (*model.LearningContent, error) {
	rows, err := r.db.Query(ctx, `DELETE FROM learning_contents WHERE id = $1 RETURNING `+contentColumns, id)
	if err != nil {
		return nil, err
	}
	return collectOne[model.LearningContent](rows)
}
