package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/arabic-learning-backend/internal/database"
	"github.com/stemsi/arabic-learning-backend/internal/logger"
	"github.com/stemsi/arabic-learning-backend/internal/model"
	"github.com/stemsi/arabic-learning-backend/internal/repository"
)

// StudentService handles student business logic.
type StudentService interface {
	List(ctx context.Context) ([]model.Student, error)
	GetByID(ctx context.Context, id string) (*model.Student, error)
	Create(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
	tx          database.Transactor
	log         zerolog.Logger
}

// NewStudentService creates a StudentService writing through tx.
func NewStudentService(studentRepo repository.StudentRepository, tx database.Transactor, log zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		tx:          tx,
		log:         logger.Component(log, "student_service"),
	}
}

func (s *studentService) List(ctx context.Context) ([]model.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}

// GetByID returns repository.ErrNotFound when the student does not exist.
func (s *studentService) GetByID(ctx context.Context, id string) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func (s *studentService) Create(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error) {
	student, err := database.InTransaction(ctx, s.tx, func(q database.Querier) (*model.Student, error) {
		return s.studentRepo.Create(ctx, q, req.ID, req.Name)
	})
	if err != nil {
		s.log.Error().Err(err).Str("student_id", req.ID).Msg("failed to create student")
		return nil, err
	}

	s.log.Info().Str("student_id", student.ID).Msg("student registered")
	return student, nil
}
