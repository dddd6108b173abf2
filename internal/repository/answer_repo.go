package repository

import (
	"github.com/95Seo/gachicoding/internal/domain"
	"gorm.io/gorm"
)

// AnswerRepository answer store interface
type AnswerRepository interface {
	FindByIdx(idx int64) (*domain.Answer, error)
	ListByQuestion(questionIdx int64, page, limit int) ([]*domain.Answer, int64, error)

	Create(answer *domain.Answer) error
	Save(answer *domain.Answer) error
	Delete(idx int64) error

	// SaveSelection persists the joint accept-answer state change: the
	// answer's selected flag and the question's solved flag commit
	// together or not at all.
	SaveSelection(answer *domain.Answer, question *domain.Question) error
}

type answerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository creates a GORM-backed AnswerRepository
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) FindByIdx(idx int64) (*domain.Answer, error) {
	var answer domain.Answer
	if err := r.db.First(&answer, "ans_idx = ?", idx).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

// ListByQuestion returns activated answers for a question, selected first,
// then oldest first.
func (r *answerRepository) ListByQuestion(questionIdx int64, page, limit int) ([]*domain.Answer, int64, error) {
	var answers []*domain.Answer
	var total int64

	query := r.db.Model(&domain.Answer{}).
		Where("que_idx = ? AND ans_activated = ?", questionIdx, true)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.
		Order("ans_selected DESC, ans_idx ASC").
		Offset(offset).
		Limit(limit).
		Find(&answers).Error
	if err != nil {
		return nil, 0, err
	}

	return answers, total, nil
}

func (r *answerRepository) Create(answer *domain.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) Save(answer *domain.Answer) error {
	return r.db.Save(answer).Error
}

// Delete hard-deletes the answer together with its file and comment rows.
func (r *answerRepository) Delete(idx int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.File{},
			"article_idx = ? AND article_category = ?", idx, domain.CategoryAnswer).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.Comment{},
			"article_idx = ? AND article_category = ?", idx, domain.CategoryAnswer).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Answer{}, "ans_idx = ?", idx).Error
	})
}

func (r *answerRepository) SaveSelection(answer *domain.Answer, question *domain.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(answer).Error; err != nil {
			return err
		}
		return tx.Save(question).Error
	})
}
