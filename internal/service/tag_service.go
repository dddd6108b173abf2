package service

import (
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/repository"
)

// TagService tag association logic shared by the content services
type TagService interface {
	// RegisterBoardTags deduplicates keywords into tags and links them to
	// one content item. On a partial failure the caller is expected to
	// compensate via RemoveBoardTags.
	RegisterBoardTags(category domain.ArticleCategory, boardIdx int64, keywords []string) error
	GetTags(category domain.ArticleCategory, boardIdx int64) ([]*domain.TagResponse, error)
	RemoveBoardTags(category domain.ArticleCategory, boardIdx int64) error
}

type tagService struct {
	repo repository.TagRepository
}

// NewTagService creates a new TagService
func NewTagService(repo repository.TagRepository) TagService {
	return &tagService{repo: repo}
}

func (s *tagService) RegisterBoardTags(category domain.ArticleCategory, boardIdx int64, keywords []string) error {
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		tag, err := s.repo.FirstOrCreate(keyword)
		if err != nil {
			return err
		}
		boardTag := &domain.BoardTag{
			BoardIdx:        boardIdx,
			ArticleCategory: category,
			TagIdx:          tag.Idx,
		}
		if err := s.repo.CreateBoardTag(boardTag); err != nil {
			return err
		}
	}
	return nil
}

func (s *tagService) GetTags(category domain.ArticleCategory, boardIdx int64) ([]*domain.TagResponse, error) {
	tags, err := s.repo.FindByArticle(category, boardIdx)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = &domain.TagResponse{Idx: tag.Idx, Keyword: tag.Keyword}
	}
	return responses, nil
}

func (s *tagService) RemoveBoardTags(category domain.ArticleCategory, boardIdx int64) error {
	return s.repo.DeleteByArticle(category, boardIdx)
}
