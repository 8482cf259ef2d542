package model

import (
	"encoding/json"
	"time"
)

// QuizResult is an append-only record of one quiz attempt.
type QuizResult struct {
	ID             int             `json:"id" db:"id"`
	StudentID      string          `json:"student_id" db:"student_id"`
	ChapterID      int             `json:"chapter_id" db:"chapter_id"`
	Score          int             `json:"score" db:"score"`
	TotalQuestions int             `json:"total_questions" db:"total_questions"`
	Answers        json.RawMessage `json:"answers" db:"answers"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

// SubmitQuizResultRequest is the payload for recording a quiz attempt.
// Score is a pointer so that a zero score still counts as present.
type SubmitQuizResultRequest struct {
	StudentID      string          `json:"student_id" binding:"required,max=20"`
	ChapterID      int             `json:"chapter_id" binding:"required"`
	Score          *int            `json:"score" binding:"required"`
	TotalQuestions int             `json:"total_questions" binding:"required"`
	Answers        json.RawMessage `json:"answers"`
}
