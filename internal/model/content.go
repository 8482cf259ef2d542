package model

import "time"

// Section is the learning area a content belongs to.
type Section string

const (
	SectionMufrodat Section = "mufrodat" // vocabulary
	SectionQiroah   Section = "qiroah"   // reading
	SectionHiwar    Section = "hiwar"    // conversation
	SectionQowaid   Section = "qowaid"   // grammar
	SectionQuiz     Section = "quiz"
)

// DefaultContentDescription is stored when a content is created without a description.
const DefaultContentDescription = "Tidak ada deskripsi"

// LearningContent is a teaching material with its attached files. The five
// File* slices are parallel and hold FileCount entries each; the schema does
// not enforce it.
type LearningContent struct {
	ID           int       `json:"id" db:"id"`
	ChapterID    int       `json:"chapter_id" db:"chapter_id"`
	Section      Section   `json:"section" db:"section"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	FileNames    []string  `json:"file_names" db:"file_names"`
	FileTypes    []string  `json:"file_types" db:"file_types"`
	FileSizes    []string  `json:"file_sizes" db:"file_sizes"`
	FileContents []string  `json:"file_contents" db:"file_contents"`
	FileDatas    []string  `json:"file_datas" db:"file_datas"`
	FileCount    int       `json:"file_count" db:"file_count"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// CreateContentRequest is the payload for uploading a content.
type CreateContentRequest struct {
	ChapterID    int      `json:"chapter_id" binding:"required"`
	Section      Section  `json:"section" binding:"required,max=50"`
	Title        string   `json:"title" binding:"required,max=200"`
	Description  string   `json:"description"`
	FileNames    []string `json:"file_names"`
	FileTypes    []string `json:"file_types"`
	FileSizes    []string `json:"file_sizes"`
	FileContents []string `json:"file_contents"`
	FileDatas    []string `json:"file_datas"`
	FileCount    int      `json:"file_count"`
}

// ContentFilter narrows a content listing. Nil fields are not applied.
type ContentFilter struct {
	ChapterID *int
	Section   *Section
}
