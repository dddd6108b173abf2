package service

import (
	"context"

	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/repository"
	"github.com/95Seo/gachicoding/pkg/cache"
)

// QuestionService question lifecycle logic
type QuestionService interface {
	Register(req *domain.QuestionSaveRequest) (int64, error)
	GetList(keyword string, page, limit int) ([]*domain.QuestionResponse, *common.Meta, error)
	GetDetail(idx int64) (*domain.QuestionResponse, error)
	Modify(req *domain.QuestionUpdateRequest) (*domain.QuestionResponse, error)
	Enable(idx int64) error
	Disable(idx int64) error
	Remove(idx int64) error
}

type questionService struct {
	repo     repository.QuestionRepository
	userRepo repository.UserRepository
	tags     TagService
	cache    *cache.Service
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(repo repository.QuestionRepository, userRepo repository.UserRepository, tags TagService, cacheSvc *cache.Service) QuestionService {
	return &questionService{repo: repo, userRepo: userRepo, tags: tags, cache: cacheSvc}
}

// Register creates a question for the writer identified by email, with the
// same tag compensation as notices: a tag failure removes the links already
// made before the error propagates.
func (s *questionService) Register(req *domain.QuestionSaveRequest) (int64, error) {
	writer, err := s.userRepo.FindByEmail(req.UserEmail)
	if err != nil {
		return 0, common.ErrUserNotFound
	}

	question, err := domain.NewQuestion(writer.Idx, req.Title, req.Contents)
	if err != nil {
		return 0, err
	}

	if err := s.repo.Create(question); err != nil {
		return 0, err
	}

	if len(req.Tags) > 0 {
		if err := s.tags.RegisterBoardTags(domain.CategoryQuestion, question.Idx, req.Tags); err != nil {
			if cleanupErr := s.tags.RemoveBoardTags(domain.CategoryQuestion, question.Idx); cleanupErr != nil {
				return 0, cleanupErr
			}
			return 0, err
		}
	}

	s.invalidateLists()
	return question.Idx, nil
}

// GetList returns a page of activated questions matching the keyword,
// newest first.
func (s *questionService) GetList(keyword string, page, limit int) ([]*domain.QuestionResponse, *common.Meta, error) {
	page, limit = normalizePage(page, limit)

	key := cache.ListKey(string(domain.CategoryQuestion), keyword, page, limit)
	var cached struct {
		Items []*domain.QuestionResponse `json:"items"`
		Total int64                      `json:"total"`
	}
	if err := s.cache.Get(context.Background(), key, &cached); err == nil {
		return cached.Items, s.meta(keyword, page, limit, cached.Total), nil
	}

	questions, total, err := s.repo.Search(keyword, page, limit)
	if err != nil {
		return nil, nil, err
	}

	writerIdxs := make([]int64, len(questions))
	for i, q := range questions {
		writerIdxs[i] = q.WriterIdx
	}
	writers, err := resolveWriters(s.userRepo, writerIdxs)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*domain.QuestionResponse, len(questions))
	for i, q := range questions {
		resp := q.ToResponse(writers[q.WriterIdx])
		tags, err := s.tags.GetTags(domain.CategoryQuestion, q.Idx)
		if err != nil {
			return nil, nil, err
		}
		resp.Tags = tags
		responses[i] = resp
	}

	cached.Items = responses
	cached.Total = total
	_ = s.cache.Set(context.Background(), key, cached, cache.TTLList)

	return responses, s.meta(keyword, page, limit, total), nil
}

// GetDetail returns one activated question with tags, bumping its view count.
func (s *questionService) GetDetail(idx int64) (*domain.QuestionResponse, error) {
	question, err := s.repo.FindActivatedByIdx(idx)
	if err != nil {
		return nil, common.ErrQuestionNotFound
	}

	go s.repo.IncrementViews(idx) //nolint:errcheck // fire-and-forget view count

	writer, err := s.userRepo.FindByIdx(question.WriterIdx)
	if err != nil {
		return nil, err
	}

	resp := question.ToResponse(writer)
	tags, err := s.tags.GetTags(domain.CategoryQuestion, idx)
	if err != nil {
		return nil, err
	}
	resp.Tags = tags

	return resp, nil
}

// Modify replaces title/contents after re-validation. Only the writer may
// modify.
func (s *questionService) Modify(req *domain.QuestionUpdateRequest) (*domain.QuestionResponse, error) {
	question, err := s.repo.FindByIdx(req.Idx)
	if err != nil {
		return nil, common.ErrQuestionNotFound
	}

	requester, err := s.userRepo.FindByEmail(req.UserEmail)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	if question.WriterIdx != requester.Idx {
		return nil, common.ErrUnauthorized
	}

	if err := question.Update(req.Title, req.Contents); err != nil {
		return nil, err
	}

	if err := s.repo.Save(question); err != nil {
		return nil, err
	}

	s.invalidateLists()
	return question.ToResponse(requester), nil
}

func (s *questionService) Enable(idx int64) error {
	question, err := s.repo.FindByIdx(idx)
	if err != nil {
		return common.ErrQuestionNotFound
	}

	if err := question.Enable(); err != nil {
		return err
	}

	if err := s.repo.Save(question); err != nil {
		return err
	}

	s.invalidateLists()
	return nil
}

func (s *questionService) Disable(idx int64) error {
	question, err := s.repo.FindByIdx(idx)
	if err != nil {
		return common.ErrQuestionNotFound
	}

	if err := question.Disable(); err != nil {
		return err
	}

	if err := s.repo.Save(question); err != nil {
		return err
	}

	s.invalidateLists()
	return nil
}

// Remove hard-deletes a question with its answers and tag/file/comment rows.
func (s *questionService) Remove(idx int64) error {
	if _, err := s.repo.FindByIdx(idx); err != nil {
		return common.ErrQuestionNotFound
	}

	if err := s.repo.Delete(idx); err != nil {
		return err
	}

	s.invalidateLists()
	return nil
}

func (s *questionService) meta(keyword string, page, limit int, total int64) *common.Meta {
	return &common.Meta{Keyword: keyword, Page: page, Limit: limit, Total: total}
}

func (s *questionService) invalidateLists() {
	_ = s.cache.InvalidateLists(context.Background(), string(domain.CategoryQuestion))
}
