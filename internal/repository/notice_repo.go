package repository

import (
	"github.com/95Seo/gachicoding/internal/domain"
	"gorm.io/gorm"
)

// NoticeRepository notice store interface
type NoticeRepository interface {
	FindByIdx(idx int64) (*domain.Notice, error)
	FindActivatedByIdx(idx int64) (*domain.Notice, error)
	Search(keyword string, page, limit int) ([]*domain.Notice, int64, error)

	Create(notice *domain.Notice) error
	Save(notice *domain.Notice) error
	Delete(idx int64) error

	IncrementViews(idx int64) error
}

type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository creates a GORM-backed NoticeRepository
func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) FindByIdx(idx int64) (*domain.Notice, error) {
	var notice domain.Notice
	if err := r.db.First(&notice, "not_idx = ?", idx).Error; err != nil {
		return nil, err
	}
	return &notice, nil
}

func (r *noticeRepository) FindActivatedByIdx(idx int64) (*domain.Notice, error) {
	var notice domain.Notice
	err := r.db.First(&notice, "not_idx = ? AND not_activated = ?", idx, true).Error
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

// Search returns activated notices whose title or contents contain the
// keyword, case-insensitively, newest first. An empty keyword matches all.
func (r *noticeRepository) Search(keyword string, page, limit int) ([]*domain.Notice, int64, error) {
	var notices []*domain.Notice
	var total int64

	pattern := "%" + keyword + "%"
	query := r.db.Model(&domain.Notice{}).
		Where("not_activated = ?", true).
		Where("LOWER(not_title) LIKE LOWER(?) OR LOWER(not_contents) LIKE LOWER(?)", pattern, pattern)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.
		Order("not_idx DESC").
		Offset(offset).
		Limit(limit).
		Find(&notices).Error
	if err != nil {
		return nil, 0, err
	}

	return notices, total, nil
}

func (r *noticeRepository) Create(notice *domain.Notice) error {
	return r.db.Create(notice).Error
}

func (r *noticeRepository) Save(notice *domain.Notice) error {
	return r.db.Save(notice).Error
}

// Delete hard-deletes the notice together with its tag and file rows.
func (r *noticeRepository) Delete(idx int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.BoardTag{},
			"board_idx = ? AND article_category = ?", idx, domain.CategoryNotice).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.File{},
			"article_idx = ? AND article_category = ?", idx, domain.CategoryNotice).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.Comment{},
			"article_idx = ? AND article_category = ?", idx, domain.CategoryNotice).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Notice{}, "not_idx = ?", idx).Error
	})
}

func (r *noticeRepository) IncrementViews(idx int64) error {
	return r.db.Model(&domain.Notice{}).
		Where("not_idx = ?", idx).
		UpdateColumn("not_views", gorm.Expr("not_views + ?", 1)).
		Error
}
