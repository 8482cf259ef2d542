package service

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/stemsi/arabic-learning-backend/internal/database"
	"github.com/stemsi/arabic-learning-backend/internal/logger"
	"github.com/stemsi/arabic-learning-backend/internal/model"
	"github.com/stemsi/arabic-learning-backend/internal/repository"
)

var emptyAnswers = json.RawMessage(`{}`)

// QuizResultService records and lists quiz attempts.
type QuizResultService interface {
	List(ctx context.Context, studentID string) ([]model.QuizResult, error)
	Submit(ctx context.Context, req model.SubmitQuizResultRequest) (*model.QuizResult, error)
}

type quizResultService struct {
	resultRepo repository.QuizResultRepository
	tx         database.Transactor
	log        zerolog.Logger
}

func NewQuizResultService(resultRepo repository.QuizResultRepository, tx database.Transactor, log zerolog.Logger) QuizResultService {
	return &quizResultService{
		resultRepo: resultRepo,
		tx:         tx,
		log:        logger.Component(log, "quiz_result_service"),
	}
}

func (s *quizResultService) List(ctx context.Context, studentID string) ([]model.QuizResult, error) {
	results, err := s.resultRepo.List(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []model.QuizResult{}
	}
	return results, nil
}

// Submit stores the attempt. Absent or null answers are stored as an empty object.
func (s *quizResultService) Submit(ctx context.Context, req model.SubmitQuizResultRequest) (*model.QuizResult, error) {
	result := &model.QuizResult{
		StudentID:      req.StudentID,
		ChapterID:      req.ChapterID,
		Score:          *req.Score,
		TotalQuestions: req.TotalQuestions,
		Answers:        normalizeAnswers(req.Answers),
	}

	created, err := database.InTransaction(ctx, s.tx, func(q database.Querier) (*model.QuizResult, error) {
		return s.resultRepo.Create(ctx, q, result)
	})
	if err != nil {
		s.log.Error().Err(err).Str("student_id", req.StudentID).Int("chapter_id", req.ChapterID).Msg("failed to submit quiz result")
		return nil, err
	}

	s.log.Info().
		Str("student_id", created.StudentID).
		Int("chapter_id", created.ChapterID).
		Int("score", created.Score).
		Int("total_questions", created.TotalQuestions).
		Msg("quiz result recorded")
	return created, nil
}

func normalizeAnswers(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return emptyAnswers
	}
	return trimmed
}
