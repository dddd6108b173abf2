package service

import (
	"context"

	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/repository"
	"github.com/95Seo/gachicoding/pkg/cache"
)

// NoticeService notice lifecycle logic
type NoticeService interface {
	Register(req *domain.NoticeSaveRequest) (int64, error)
	GetList(keyword string, page, limit int) ([]*domain.NoticeResponse, *common.Meta, error)
	GetDetail(idx int64) (*domain.NoticeResponse, error)
	Modify(req *domain.NoticeUpdateRequest) (*domain.NoticeResponse, error)
	Enable(idx int64) error
	Disable(idx int64) error
	Remove(idx int64) error
}

type noticeService struct {
	repo     repository.NoticeRepository
	userRepo repository.UserRepository
	tags     TagService
	cache    *cache.Service
}

// NewNoticeService creates a new NoticeService
func NewNoticeService(repo repository.NoticeRepository, userRepo repository.UserRepository, tags TagService, cacheSvc *cache.Service) NoticeService {
	return &noticeService{repo: repo, userRepo: userRepo, tags: tags, cache: cacheSvc}
}

// Register creates a notice for the writer identified by email. When tag
// association fails partway, the tags already linked to the new notice are
// removed before the error propagates.
func (s *noticeService) Register(req *domain.NoticeSaveRequest) (int64, error) {
	writer, err := s.userRepo.FindByEmail(req.UserEmail)
	if err != nil {
		return 0, common.ErrUserNotFound
	}

	notice, err := domain.NewNotice(writer.Idx, req.Title, req.Contents, req.Pin)
	if err != nil {
		return 0, err
	}

	if err := s.repo.Create(notice); err != nil {
		return 0, err
	}

	if len(req.Tags) > 0 {
		if err := s.tags.RegisterBoardTags(domain.CategoryNotice, notice.Idx, req.Tags); err != nil {
			if cleanupErr := s.tags.RemoveBoardTags(domain.CategoryNotice, notice.Idx); cleanupErr != nil {
				return 0, cleanupErr
			}
			return 0, err
		}
	}

	s.invalidateLists()
	return notice.Idx, nil
}

// GetList returns a page of activated notices matching the keyword,
// newest first, with tag projections attached.
func (s *noticeService) GetList(keyword string, page, limit int) ([]*domain.NoticeResponse, *common.Meta, error) {
	page, limit = normalizePage(page, limit)

	key := cache.ListKey(string(domain.CategoryNotice), keyword, page, limit)
	var cached struct {
		Items []*domain.NoticeResponse `json:"items"`
		Total int64                    `json:"total"`
	}
	if err := s.cache.Get(context.Background(), key, &cached); err == nil {
		return cached.Items, s.meta(keyword, page, limit, cached.Total), nil
	}

	notices, total, err := s.repo.Search(keyword, page, limit)
	if err != nil {
		return nil, nil, err
	}

	writerIdxs := make([]int64, len(notices))
	for i, n := range notices {
		writerIdxs[i] = n.WriterIdx
	}
	writers, err := resolveWriters(s.userRepo, writerIdxs)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*domain.NoticeResponse, len(notices))
	for i, n := range notices {
		resp := n.ToResponse(writers[n.WriterIdx])
		tags, err := s.tags.GetTags(domain.CategoryNotice, n.Idx)
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

// GetDetail returns one activated notice with tags, bumping its view count.
func (s *noticeService) GetDetail(idx int64) (*domain.NoticeResponse, error) {
	notice, err := s.repo.FindActivatedByIdx(idx)
	if err != nil {
		return nil, common.ErrNoticeNotFound
	}

	go s.repo.IncrementViews(idx) //nolint:errcheck // fire-and-forget view count

	writer, err := s.userRepo.FindByIdx(notice.WriterIdx)
	if err != nil {
		return nil, err
	}

	resp := notice.ToResponse(writer)
	tags, err := s.tags.GetTags(domain.CategoryNotice, idx)
	if err != nil {
		return nil, err
	}
	resp.Tags = tags

	return resp, nil
}

// Modify replaces title/contents after re-validation. Only the writer may
// modify.
func (s *noticeService) Modify(req *domain.NoticeUpdateRequest) (*domain.NoticeResponse, error) {
	notice, err := s.repo.FindByIdx(req.Idx)
	if err != nil {
		return nil, common.ErrNoticeNotFound
	}

	requester, err := s.userRepo.FindByEmail(req.UserEmail)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	if notice.WriterIdx != requester.Idx {
		return nil, common.ErrUnauthorized
	}

	if err := notice.Update(req.Title, req.Contents); err != nil {
		return nil, err
	}

	if err := s.repo.Save(notice); err != nil {
		return nil, err
	}

	s.invalidateLists()
	return notice.ToResponse(requester), nil
}

// Enable activates a notice; enabling an already-active one fails.
func (s *noticeService) Enable(idx int64) error {
	notice, err := s.repo.FindByIdx(idx)
	if err != nil {
		return common.ErrNoticeNotFound
	}

	if err := notice.Enable(); err != nil {
		return err
	}

	if err := s.repo.Save(notice); err != nil {
		return err
	}

	s.invalidateLists()
	return nil
}

// Disable deactivates a notice; disabling an already-inactive one fails.
func (s *noticeService) Disable(idx int64) error {
	notice, err := s.repo.FindByIdx(idx)
	if err != nil {
		return common.ErrNoticeNotFound
	}

	if err := notice.Disable(); err != nil {
		return err
	}

	if err := s.repo.Save(notice); err != nil {
		return err
	}

	s.invalidateLists()
	return nil
}

// Remove hard-deletes a notice with its tag/file/comment rows.
func (s *noticeService) Remove(idx int64) error {
	if _, err := s.repo.FindByIdx(idx); err != nil {
		return common.ErrNoticeNotFound
	}

	if err := s.repo.Delete(idx); err != nil {
		return err
	}

	s.invalidateLists()
	return nil
}

func (s *noticeService) meta(keyword string, page, limit int, total int64) *common.Meta {
	return &common.Meta{Keyword: keyword, Page: page, Limit: limit, Total: total}
}

func (s *noticeService) invalidateLists() {
	_ = s.cache.InvalidateLists(context.Background(), string(domain.CategoryNotice))
}
