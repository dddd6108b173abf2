package domain

import (
	"time"

	"github.com/95Seo/gachicoding/internal/common"
)

// ArticleCategory identifies which content table a comment, tag or file
// row is attached to.
type ArticleCategory string

const (
	CategoryNotice   ArticleCategory = "NOTICE"
	CategoryQuestion ArticleCategory = "QUESTION"
	CategoryAnswer   ArticleCategory = "ANSWER"
)

// Comment domain model (comment table). Comments hang off any content item
// via (article_category, article_idx).
type Comment struct {
	Idx             int64           `gorm:"column:comm_idx;primaryKey;autoIncrement" json:"idx"`
	WriterIdx       int64           `gorm:"column:user_idx;not null;index" json:"writer_idx"`
	ArticleCategory ArticleCategory `gorm:"column:article_category;size:20;not null;index:idx_comment_article" json:"article_category"`
	ArticleIdx      int64           `gorm:"column:article_idx;not null;index:idx_comment_article" json:"article_idx"`
	Contents        string          `gorm:"column:comm_contents;type:text;not null" json:"contents"`
	Activated       bool            `gorm:"column:comm_activated;not null;default:true" json:"activated"`
	CreatedAt       time.Time       `gorm:"column:comm_regdate" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"column:comm_updated_at" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comment"
}

// NewComment validates contents and builds an activated comment.
func NewComment(writerIdx int64, category ArticleCategory, articleIdx int64, contents *string) (*Comment, error) {
	c, err := ValidateContents("contents", contents)
	if err != nil {
		return nil, err
	}
	return &Comment{
		WriterIdx:       writerIdx,
		ArticleCategory: category,
		ArticleIdx:      articleIdx,
		Contents:        c,
		Activated:       true,
	}, nil
}

// Update re-validates and replaces the contents.
func (cm *Comment) Update(contents *string) error {
	c, err := ValidateContents("contents", contents)
	if err != nil {
		return err
	}
	cm.Contents = c
	return nil
}

// Enable activates the comment.
func (cm *Comment) Enable() error {
	if cm.Activated {
		return common.ErrAlreadyActive
	}
	cm.Activated = true
	return nil
}

// Disable deactivates the comment.
func (cm *Comment) Disable() error {
	if !cm.Activated {
		return common.ErrAlreadyInactive
	}
	cm.Activated = false
	return nil
}

// CommentResponse projection
type CommentResponse struct {
	Idx             int64           `json:"idx"`
	ArticleCategory ArticleCategory `json:"article_category"`
	ArticleIdx      int64           `json:"article_idx"`
	Contents        string          `json:"contents"`
	WriterNick      string          `json:"writer_nick"`
	Email           string          `json:"writer_email"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

// ToResponse converts a Comment and its resolved writer into a projection
func (cm *Comment) ToResponse(writer *User) *CommentResponse {
	resp := &CommentResponse{
		Idx:             cm.Idx,
		ArticleCategory: cm.ArticleCategory,
		ArticleIdx:      cm.ArticleIdx,
		Contents:        cm.Contents,
		CreatedAt:       cm.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       cm.UpdatedAt.Format(time.RFC3339),
	}
	if writer != nil {
		resp.WriterNick = writer.Nick
		resp.Email = writer.Email
	}
	return resp
}

// CommentSaveRequest create request
type CommentSaveRequest struct {
	UserEmail       string          `json:"user_email" binding:"required,email"`
	ArticleCategory ArticleCategory `json:"article_category" binding:"required"`
	ArticleIdx      int64           `json:"article_idx" binding:"required"`
	Contents        *string         `json:"contents"`
}

// CommentUpdateRequest modify request
type CommentUpdateRequest struct {
	Idx       int64   `json:"idx" binding:"required"`
	UserEmail string  `json:"user_email" binding:"required,email"`
	Contents  *string `json:"contents"`
}
