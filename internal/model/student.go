package model

import "time"

// Student is created on first login and never updated or deleted through the API.
type Student struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateStudentRequest is the payload for registering a student.
type CreateStudentRequest struct {
	ID   string `json:"id" binding:"required,max=20"`
	Name string `json:"name" binding:"required,max=100"`
}
