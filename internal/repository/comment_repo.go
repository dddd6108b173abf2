package repository

import (
	"github.com/95Seo/gachicoding/internal/domain"
	"gorm.io/gorm"
)

// CommentRepository comment store interface
type CommentRepository interface {
	FindByIdx(idx int64) (*domain.Comment, error)
	ListByArticle(category domain.ArticleCategory, articleIdx int64, page, limit int) ([]*domain.Comment, int64, error)

	Create(comment *domain.Comment) error
	Save(comment *domain.Comment) error
	Delete(idx int64) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a GORM-backed CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) FindByIdx(idx int64) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.First(&comment, "comm_idx = ?", idx).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByArticle returns activated comments for one content item, oldest first.
func (r *commentRepository) ListByArticle(category domain.ArticleCategory, articleIdx int64, page, limit int) ([]*domain.Comment, int64, error) {
	var comments []*domain.Comment
	var total int64

	query := r.db.Model(&domain.Comment{}).
		Where("article_category = ? AND article_idx = ? AND comm_activated = ?",
			category, articleIdx, true)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.
		Order("comm_idx ASC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

func (r *commentRepository) Create(comment *domain.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) Save(comment *domain.Comment) error {
	return r.db.Save(comment).Error
}

func (r *commentRepository) Delete(idx int64) error {
	return r.db.Delete(&domain.Comment{}, "comm_idx = ?", idx).Error
}
