package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/arabic-learning-backend/internal/database"
	"github.com/stemsi/arabic-learning-backend/internal/logger"
	"github.com/stemsi/arabic-learning-backend/internal/model"
	"github.com/stemsi/arabic-learning-backend/internal/repository"
)

// ContentService handles learning content business logic.
type ContentService interface {
	List(ctx context.Context, filter model.ContentFilter) ([]model.LearningContent, error)
	GetByID(ctx context.Context, id int) (*model.LearningContent, error)
	Create(ctx context.Context, req model.CreateContentRequest) (*model.LearningContent, error)
	Delete(ctx context.Context, id int) (*model.LearningContent, error)
}

type contentService struct {
	contentRepo repository.ContentRepository
	tx          database.Transactor
	log         zerolog.Logger
}

// NewContentService creates a ContentService writing through tx.
func NewContentService(contentRepo repository.ContentRepository, tx database.Transactor, log zerolog.Logger) ContentService {
	return &contentService{
		contentRepo: contentRepo,
		tx:          tx,
		log:         logger.Component(log, "content_service"),
	}
}

func (s *contentService) List(ctx context.Context, filter model.ContentFilter) ([]model.LearningContent, error) {
	contents, err := s.contentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if contents == nil {
		contents = []model.LearningContent{}
	}
	return contents, nil
}

func (s *contentService) GetByID(ctx context.Context, id int) (*model.LearningContent, error) {
	return s.contentRepo.GetByID(ctx, id)
}

// Create stores the content with defaults applied to every optional field.
func (s *contentService) Create(ctx context.Context, req model.CreateContentRequest) (*model.LearningContent, error) {
	content := newContent(req)

	created, err := database.InTransaction(ctx, s.tx, func(q database.Querier) (*model.LearningContent, error) {
		return s.contentRepo.Create(ctx, q, content)
	})
	if err != nil {
		s.log.Error().Err(err).Int("chapter_id", req.ChapterID).Str("section", string(req.Section)).Msg("failed to create content")
		return nil, err
	}

	s.log.Info().Int("content_id", created.ID).Int("file_count", created.FileCount).Msg("content created")
	return created, nil
}

// Delete returns the deleted row, or repository.ErrNotFound.
func (s *contentService) Delete(ctx context.Context, id int) (*model.LearningContent, error) {
	deleted, err := s.contentRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("content_id", id).Msg("content deleted")
	return deleted, nil
}

func newContent(req model.CreateContentRequest) *model.LearningContent {
	description := req.Description
	if description == "" {
		description = model.DefaultContentDescription
	}

	return &model.LearningContent{
		ChapterID:    req.ChapterID,
		Section:      req.Section,
		Title:        req.Title,
		Description:  description,
		FileNames:    orEmpty(req.FileNames),
		FileTypes:    orEmpty(req.FileTypes),
		FileSizes:    orEmpty(req.FileSizes),
		FileContents: orEmpty(req.FileContents),
		FileDatas:    orEmpty(req.FileDatas),
		FileCount:    req.FileCount,
	}
}

// orEmpty keeps nil slices from being stored as NULL arrays.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
