package domain

import (
	"time"

	"github.com/95Seo/gachicoding/internal/common"
)

// Answer domain model (answer table). An answer has no title of its own;
// it belongs to exactly one question.
type Answer struct {
	Idx         int64     `gorm:"column:ans_idx;primaryKey;autoIncrement" json:"idx"`
	QuestionIdx int64     `gorm:"column:que_idx;not null;index" json:"question_idx"`
	WriterIdx   int64     `gorm:"column:user_idx;not null;index" json:"writer_idx"`
	Contents    string    `gorm:"column:ans_contents;type:text;not null" json:"contents"`
	Selected    bool      `gorm:"column:ans_selected;not null;default:false" json:"selected"`
	Activated   bool      `gorm:"column:ans_activated;not null;default:true" json:"activated"`
	CreatedAt   time.Time `gorm:"column:ans_regdate" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:ans_updated_at" json:"updated_at"`
}

func (Answer) TableName() string {
	return "answer"
}

// NewAnswer validates contents and builds an activated, unselected answer.
func NewAnswer(questionIdx, writerIdx int64, contents *string) (*Answer, error) {
	c, err := ValidateContents("contents", contents)
	if err != nil {
		return nil, err
	}
	return &Answer{
		QuestionIdx: questionIdx,
		WriterIdx:   writerIdx,
		Contents:    c,
		Activated:   true,
	}, nil
}

// Update re-validates and replaces the contents.
func (a *Answer) Update(contents *string) error {
	c, err := ValidateContents("contents", contents)
	if err != nil {
		return err
	}
	a.Contents = c
	return nil
}

// Enable activates the answer.
func (a *Answer) Enable() error {
	if a.Activated {
		return common.ErrAlreadyActive
	}
	a.Activated = true
	return nil
}

// Disable deactivates the answer.
func (a *Answer) Disable() error {
	if !a.Activated {
		return common.ErrAlreadyInactive
	}
	a.Activated = false
	return nil
}

// Select marks the answer as the accepted one. The already-selected guard
// lives in the selection workflow, alongside the question-side checks.
func (a *Answer) Select() {
	a.Selected = true
}

// AnswerResponse projection returned by list/detail endpoints
type AnswerResponse struct {
	Idx         int64  `json:"idx"`
	QuestionIdx int64  `json:"question_idx"`
	Contents    string `json:"contents"`
	Selected    bool   `json:"selected"`
	WriterNick  string `json:"writer_nick"`
	Email       string `json:"writer_email"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToResponse converts an Answer and its resolved writer into a projection
func (a *Answer) ToResponse(writer *User) *AnswerResponse {
	resp := &AnswerResponse{
		Idx:         a.Idx,
		QuestionIdx: a.QuestionIdx,
		Contents:    a.Contents,
		Selected:    a.Selected,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
	if writer != nil {
		resp.WriterNick = writer.Nick
		resp.Email = writer.Email
	}
	return resp
}

// AnswerSaveRequest create request
type AnswerSaveRequest struct {
	UserEmail   string  `json:"user_email" binding:"required,email"`
	QuestionIdx int64   `json:"question_idx" binding:"required"`
	Contents    *string `json:"contents"`
}

// AnswerUpdateRequest modify request
type AnswerUpdateRequest struct {
	Idx       int64   `json:"idx" binding:"required"`
	UserEmail string  `json:"user_email" binding:"required,email"`
	Contents  *string `json:"contents"`
}

// AnswerSelectRequest accept-answer request. Only the question writer may
// select; that check happens in the workflow, not here.
type AnswerSelectRequest struct {
	Idx       int64  `json:"idx" binding:"required"`
	UserEmail string `json:"user_email" binding:"required,email"`
}
