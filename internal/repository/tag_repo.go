package repository

import (
	"github.com/95Seo/gachicoding/internal/domain"
	"gorm.io/gorm"
)

// TagRepository tag and board-tag store interface
type TagRepository interface {
	// FirstOrCreate returns the tag with the given keyword, creating it
	// if absent. Tags are deduplicated globally.
	FirstOrCreate(keyword string) (*domain.Tag, error)
	CreateBoardTag(boardTag *domain.BoardTag) error
	FindByArticle(category domain.ArticleCategory, boardIdx int64) ([]*domain.Tag, error)
	DeleteByArticle(category domain.ArticleCategory, boardIdx int64) error
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a GORM-backed TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) FirstOrCreate(keyword string) (*domain.Tag, error) {
	var tag domain.Tag
	err := r.db.Where(domain.Tag{Keyword: keyword}).FirstOrCreate(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) CreateBoardTag(boardTag *domain.BoardTag) error {
	return r.db.Create(boardTag).Error
}

func (r *tagRepository) FindByArticle(category domain.ArticleCategory, boardIdx int64) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	err := r.db.
		Joins("JOIN board_tag ON board_tag.tag_idx = tag.tag_idx").
		Where("board_tag.board_idx = ? AND board_tag.article_category = ?", boardIdx, category).
		Order("tag.tag_idx ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) DeleteByArticle(category domain.ArticleCategory, boardIdx int64) error {
	return r.db.Delete(&domain.BoardTag{},
		"board_idx = ? AND article_category = ?", boardIdx, category).Error
}
