package domain

import (
	"time"

	"github.com/95Seo/gachicoding/internal/common"
)

// Notice domain model (notice table)
type Notice struct {
	Idx       int64     `gorm:"column:not_idx;primaryKey;autoIncrement" json:"idx"`
	WriterIdx int64     `gorm:"column:user_idx;not null;index" json:"writer_idx"`
	Title     string    `gorm:"column:not_title;size:255;not null" json:"title"`
	Contents  string    `gorm:"column:not_contents;type:text;not null" json:"contents"`
	Views     int64     `gorm:"column:not_views;not null;default:0" json:"views"`
	Pin       bool      `gorm:"column:not_pin;not null;default:false" json:"pin"`
	Activated bool      `gorm:"column:not_activated;not null;default:true" json:"activated"`
	CreatedAt time.Time `gorm:"column:not_regdate" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:not_updated_at" json:"updated_at"`
}

func (Notice) TableName() string {
	return "notice"
}

// NewNotice validates title/contents and builds an activated notice.
// Nil pointers mean the field was missing from the request.
func NewNotice(writerIdx int64, title, contents *string, pin bool) (*Notice, error) {
	t, err := ValidateTitle("title", title)
	if err != nil {
		return nil, err
	}
	c, err := ValidateContents("contents", contents)
	if err != nil {
		return nil, err
	}
	return &Notice{
		WriterIdx: writerIdx,
		Title:     t,
		Contents:  c,
		Pin:       pin,
		Activated: true,
	}, nil
}

// Update re-validates and replaces title and contents.
func (n *Notice) Update(title, contents *string) error {
	t, err := ValidateTitle("title", title)
	if err != nil {
		return err
	}
	c, err := ValidateContents("contents", contents)
	if err != nil {
		return err
	}
	n.Title = t
	n.Contents = c
	return nil
}

// Enable activates the notice. Enabling an active notice is an error.
func (n *Notice) Enable() error {
	if n.Activated {
		return common.ErrAlreadyActive
	}
	n.Activated = true
	return nil
}

// Disable deactivates the notice. Disabling an inactive notice is an error.
func (n *Notice) Disable() error {
	if !n.Activated {
		return common.ErrAlreadyInactive
	}
	n.Activated = false
	return nil
}

// NoticeResponse projection returned by list/detail endpoints
type NoticeResponse struct {
	Idx        int64          `json:"idx"`
	Title      string         `json:"title"`
	Contents   string         `json:"contents"`
	Views      int64          `json:"views"`
	Pin        bool           `json:"pin"`
	WriterNick string         `json:"writer_nick"`
	Email      string         `json:"writer_email"`
	Tags       []*TagResponse `json:"tags,omitempty"`
	CreatedAt  string         `json:"created_at"`
	UpdatedAt  string         `json:"updated_at"`
}

// ToResponse converts a Notice and its resolved writer into a projection
func (n *Notice) ToResponse(writer *User) *NoticeResponse {
	resp := &NoticeResponse{
		Idx:       n.Idx,
		Title:     n.Title,
		Contents:  n.Contents,
		Views:     n.Views,
		Pin:       n.Pin,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		UpdatedAt: n.UpdatedAt.Format(time.RFC3339),
	}
	if writer != nil {
		resp.WriterNick = writer.Nick
		resp.Email = writer.Email
	}
	return resp
}

// NoticeSaveRequest create request. Title and contents are pointers so that a
// missing field can be told apart from an empty one.
type NoticeSaveRequest struct {
	UserEmail string   `json:"user_email" binding:"required,email"`
	Title     *string  `json:"title"`
	Contents  *string  `json:"contents"`
	Pin       bool     `json:"pin"`
	Tags      []string `json:"tags"`
}

// NoticeUpdateRequest modify request
type NoticeUpdateRequest struct {
	Idx       int64   `json:"idx" binding:"required"`
	UserEmail string  `json:"user_email" binding:"required,email"`
	Title     *string `json:"title"`
	Contents  *string `json:"contents"`
}
