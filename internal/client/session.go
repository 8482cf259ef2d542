package client

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/stemsi/arabic-learning-backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// Role is who is using the front end.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Messages shown to the user, in Indonesian like the rest of the front end.
var (
	ErrNameTooShort       = errors.New("Nama harus minimal 3 karakter")
	ErrWrongPassword      = errors.New("Password guru salah")
	ErrStudentOnlySubmits = errors.New("Hanya siswa yang dapat mengumpulkan quiz")
)

// Session is the logged-in user. Callers keep it and pass it back in.
type Session struct {
	Role        Role   `json:"role"`
	StudentID   string `json:"student_id,omitempty"`
	StudentName string `json:"student_name,omitempty"`
}

// IsStudent reports whether s belongs to a logged-in student.
func (s *Session) IsStudent() bool {
	return s != nil && s.Role == RoleStudent
}

// LoginResult is the outcome of a student login.
type LoginResult struct {
	Session *Session
	IsNew   bool
}

// GenerateStudentID derives an id from the first three letters of name,
// upper-cased with anything outside A-Z replaced by X, followed by a random
// number in [1000, 9999].
func GenerateStudentID(name string, rng *rand.Rand) string {
	runes := []rune(name)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	prefix := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r
		}
		return 'X'
	}, strings.ToUpper(string(runes)))
	return fmt.Sprintf("%s%d", prefix, 1000+rng.IntN(9000))
}

// LoginStudent registers name under a fresh id. When the create fails but a
// student with that id already exists, it logs in as that student instead.
func (c *Client) LoginStudent(ctx context.Context, name string, rng *rand.Rand) (*LoginResult, error) {
	if utf8.RuneCountInString(name) < 3 {
		return nil, ErrNameTooShort
	}

	id := GenerateStudentID(name, rng)
	session := &Session{Role: RoleStudent, StudentID: id, StudentName: name}

	_, err := c.Students.Create(ctx, model.CreateStudentRequest{ID: id, Name: name})
	if err == nil {
		return &LoginResult{Session: session, IsNew: true}, nil
	}

	if _, lookupErr := c.Students.GetByID(ctx, id); lookupErr == nil {
		return &LoginResult{Session: session, IsNew: false}, nil
	}
	return nil, err
}

// LoginTeacher checks password against the configured bcrypt hash.
func LoginTeacher(password string, hash []byte) (*Session, error) {
	if len(hash) == 0 {
		return nil, ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}
	return &Session{Role: RoleTeacher}, nil
}

// SubmitQuizResult records a quiz attempt for the student in s.
func (c *Client) SubmitQuizResult(ctx context.Context, s *Session, chapterID, score, totalQuestions int, answers interface{}) (*model.QuizResult, error) {
	if !s.IsStudent() {
		return nil, ErrStudentOnlySubmits
	}
	return c.QuizResults.Submit(ctx, Submission{
		StudentID:      s.StudentID,
		ChapterID:      chapterID,
		Score:          score,
		TotalQuestions: totalQuestions,
		Answers:        answersOrNil(answers),
	})
}
