package repository

import (
	"github.com/95Seo/gachicoding/internal/domain"
	"gorm.io/gorm"
)

// QuestionRepository question store interface
type QuestionRepository interface {
	FindByIdx(idx int64) (*domain.Question, error)
	FindActivatedByIdx(idx int64) (*domain.Question, error)
	Search(keyword string, page, limit int) ([]*domain.Question, int64, error)

	Create(question *domain.Question) error
	Save(question *domain.Question) error
	Delete(idx int64) error

	IncrementViews(idx int64) error
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a GORM-backed QuestionRepository
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByIdx(idx int64) (*domain.Question, error) {
	var question domain.Question
	if err := r.db.First(&question, "que_idx = ?", idx).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindActivatedByIdx(idx int64) (*domain.Question, error) {
	var question domain.Question
	err := r.db.First(&question, "que_idx = ? AND que_activated = ?", idx, true).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// Search returns activated questions matching the keyword in title or
// contents, newest first. An empty keyword matches all.
func (r *questionRepository) Search(keyword string, page, limit int) ([]*domain.Question, int64, error) {
	var questions []*domain.Question
	var total int64

	pattern := "%" + keyword + "%"
	query := r.db.Model(&domain.Question{}).
		Where("que_activated = ?", true).
		Where("LOWER(que_title) LIKE LOWER(?) OR LOWER(que_contents) LIKE LOWER(?)", pattern, pattern)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.
		Order("que_idx DESC").
		Offset(offset).
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}

	return questions, total, nil
}

func (r *questionRepository) Create(question *domain.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) Save(question *domain.Question) error {
	return r.db.Save(question).Error
}

// Delete hard-deletes the question together with its answers, tag, file
// and comment rows.
func (r *questionRepository) Delete(idx int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.BoardTag{},
			"board_idx = ? AND article_category = ?", idx, domain.CategoryQuestion).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.File{},
			"article_idx = ? AND article_category = ?", idx, domain.CategoryQuestion).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.Comment{},
			"article_idx = ? AND article_category = ?", idx, domain.CategoryQuestion).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.Answer{}, "que_idx = ?", idx).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Question{}, "que_idx = ?", idx).Error
	})
}

func (r *questionRepository) IncrementViews(idx int64) error {
	return r.db.Model(&domain.Question{}).
		Where("que_idx = ?", idx).
		UpdateColumn("que_views", gorm.Expr("que_views + ?", 1)).
		Error
}
