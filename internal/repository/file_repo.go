package repository

import (
	"github.com/95Seo/gachicoding/internal/domain"
	"gorm.io/gorm"
)

// FileRepository attachment metadata store interface
type FileRepository interface {
	Create(file *domain.File) error
	FindByIdx(idx int64) (*domain.File, error)
	ListByArticle(category domain.ArticleCategory, articleIdx int64) ([]*domain.File, error)
	DeleteByArticle(category domain.ArticleCategory, articleIdx int64) error
}

type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a GORM-backed FileRepository
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(file *domain.File) error {
	return r.db.Create(file).Error
}

func (r *fileRepository) FindByIdx(idx int64) (*domain.File, error) {
	var file domain.File
	if err := r.db.First(&file, "file_idx = ?", idx).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *fileRepository) ListByArticle(category domain.ArticleCategory, articleIdx int64) ([]*domain.File, error) {
	var files []*domain.File
	err := r.db.
		Where("article_category = ? AND article_idx = ?", category, articleIdx).
		Order("file_idx ASC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *fileRepository) DeleteByArticle(category domain.ArticleCategory, articleIdx int64) error {
	return r.db.Delete(&domain.File{},
		"article_category = ? AND article_idx = ?", category, articleIdx).Error
}
