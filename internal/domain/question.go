package domain

import (
	"time"

	"github.com/95Seo/gachicoding/internal/common"
)

// Question domain model (question table)
type Question struct {
	Idx       int64     `gorm:"column:que_idx;primaryKey;autoIncrement" json:"idx"`
	WriterIdx int64     `gorm:"column:user_idx;not null;index" json:"writer_idx"`
	Title     string    `gorm:"column:que_title;size:255;not null" json:"title"`
	Contents  string    `gorm:"column:que_contents;type:text;not null" json:"contents"`
	Solved    bool      `gorm:"column:que_solved;not null;default:false" json:"solved"`
	Views     int64     `gorm:"column:que_views;not null;default:0" json:"views"`
	Activated bool      `gorm:"column:que_activated;not null;default:true" json:"activated"`
	CreatedAt time.Time `gorm:"column:que_regdate" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:que_updated_at" json:"updated_at"`
}

func (Question) TableName() string {
	return "question"
}

// NewQuestion validates title/contents and builds an open, activated question.
func NewQuestion(writerIdx int64, title, contents *string) (*Question, error) {
	t, err := ValidateTitle("title", title)
	if err != nil {
		return nil, err
	}
	c, err := ValidateContents("contents", contents)
	if err != nil {
		return nil, err
	}
	return &Question{
		WriterIdx: writerIdx,
		Title:     t,
		Contents:  c,
		Activated: true,
	}, nil
}

// Update re-validates and replaces title and contents.
func (q *Question) Update(title, contents *string) error {
	t, err := ValidateTitle("title", title)
	if err != nil {
		return err
	}
	c, err := ValidateContents("contents", contents)
	if err != nil {
		return err
	}
	q.Title = t
	q.Contents = c
	return nil
}

// Enable activates the question. Enabling an active question is an error.
func (q *Question) Enable() error {
	if q.Activated {
		return common.ErrAlreadyActive
	}
	q.Activated = true
	return nil
}

// Disable deactivates the question.
func (q *Question) Disable() error {
	if !q.Activated {
		return common.ErrAlreadyInactive
	}
	q.Activated = false
	return nil
}

// Solve marks the question solved. A question is solved at most once; the
// already-solved guard lives in the selection workflow so it can fail with
// its own error before any write happens.
func (q *Question) Solve() {
	q.Solved = true
}

// QuestionResponse projection returned by list/detail endpoints
type QuestionResponse struct {
	Idx        int64          `json:"idx"`
	Title      string         `json:"title"`
	Contents   string         `json:"contents"`
	Solved     bool           `json:"solved"`
	Views      int64          `json:"views"`
	WriterNick string         `json:"writer_nick"`
	Email      string         `json:"writer_email"`
	Tags       []*TagResponse `json:"tags,omitempty"`
	CreatedAt  string         `json:"created_at"`
	UpdatedAt  string         `json:"updated_at"`
}

// ToResponse converts a Question and its resolved writer into a projection
func (q *Question) ToResponse(writer *User) *QuestionResponse {
	resp := &QuestionResponse{
		Idx:       q.Idx,
		Title:     q.Title,
		Contents:  q.Contents,
		Solved:    q.Solved,
		Views:     q.Views,
		CreatedAt: q.CreatedAt.Format(time.RFC3339),
		UpdatedAt: q.UpdatedAt.Format(time.RFC3339),
	}
	if writer != nil {
		resp.WriterNick = writer.Nick
		resp.Email = writer.Email
	}
	return resp
}

// QuestionSaveRequest create request
type QuestionSaveRequest struct {
	UserEmail string   `json:"user_email" binding:"required,email"`
	Title     *string  `json:"title"`
	Contents  *string  `json:"contents"`
	Tags      []string `json:"tags"`
}

// QuestionUpdateRequest modify request
type QuestionUpdateRequest struct {
	Idx       int64   `json:"idx" binding:"required"`
	UserEmail string  `json:"user_email" binding:"required,email"`
	Title     *string `json:"title"`
	Contents  *string `json:"contents"`
}
