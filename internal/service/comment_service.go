package service

import (
	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/repository"
)

// CommentService comment lifecycle logic. A comment attaches to any content
// item through (article_category, article_idx); the target must exist and
// be activated at write time.
type CommentService interface {
	Register(req *domain.CommentSaveRequest) (int64, error)
	GetListByArticle(category domain.ArticleCategory, articleIdx int64, page, limit int) ([]*domain.CommentResponse, *common.Meta, error)
	Modify(req *domain.CommentUpdateRequest) (*domain.CommentResponse, error)
	Enable(idx int64) error
	Disable(idx int64) error
	Remove(idx int64) error
}

type commentService struct {
	repo         repository.CommentRepository
	userRepo     repository.UserRepository
	noticeRepo   repository.NoticeRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(
	repo repository.CommentRepository,
	userRepo repository.UserRepository,
	noticeRepo repository.NoticeRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
) CommentService {
	return &commentService{
		repo:         repo,
		userRepo:     userRepo,
		noticeRepo:   noticeRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

func (s *commentService) Register(req *domain.CommentSaveRequest) (int64, error) {
	writer, err := s.userRepo.FindByEmail(req.UserEmail)
	if err != nil {
		return 0, common.ErrUserNotFound
	}

	if err := s.checkTarget(req.ArticleCategory, req.ArticleIdx); err != nil {
		return 0, err
	}

	comment, err := domain.NewComment(writer.Idx, req.ArticleCategory, req.ArticleIdx, req.Contents)
	if err != nil {
		return 0, err
	}

	if err := s.repo.Create(comment); err != nil {
		return 0, err
	}
	return comment.Idx, nil
}

// GetListByArticle returns a page of activated comments for one content
// item, oldest first.
func (s *commentService) GetListByArticle(category domain.ArticleCategory, articleIdx int64, page, limit int) ([]*domain.CommentResponse, *common.Meta, error) {
	page, limit = normalizePage(page, limit)

	comments, total, err := s.repo.ListByArticle(category, articleIdx, page, limit)
	if err != nil {
		return nil, nil, err
	}

	writerIdxs := make([]int64, len(comments))
	for i, c := range comments {
		writerIdxs[i] = c.WriterIdx
	}
	writers, err := resolveWriters(s.userRepo, writerIdxs)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*domain.CommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = c.ToResponse(writers[c.WriterIdx])
	}

	return responses, &common.Meta{Page: page, Limit: limit, Total: total}, nil
}

func (s *commentService) Modify(req *domain.CommentUpdateRequest) (*domain.CommentResponse, error) {
	comment, err := s.repo.FindByIdx(req.Idx)
	if err != nil {
		return nil, common.ErrCommentNotFound
	}

	requester, err := s.userRepo.FindByEmail(req.UserEmail)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	if comment.WriterIdx != requester.Idx {
		return nil, common.ErrUnauthorized
	}

	if err := comment.Update(req.Contents); err != nil {
		return nil, err
	}

	if err := s.repo.Save(comment); err != nil {
		return nil, err
	}
	return comment.ToResponse(requester), nil
}

func (s *commentService) Enable(idx int64) error {
	comment, err := s.repo.FindByIdx(idx)
	if err != nil {
		return common.ErrCommentNotFound
	}

	if err := comment.Enable(); err != nil {
		return err
	}
	return s.repo.Save(comment)
}

func (s *commentService) Disable(idx int64) error {
	comment, err := s.repo.FindByIdx(idx)
	if err != nil {
		return common.ErrCommentNotFound
	}

	if err := comment.Disable(); err != nil {
		return err
	}
	return s.repo.Save(comment)
}

func (s *commentService) Remove(idx int64) error {
	if _, err := s.repo.FindByIdx(idx); err != nil {
		return common.ErrCommentNotFound
	}
	return s.repo.Delete(idx)
}

// checkTarget verifies the comment target exists and is activated.
func (s *commentService) checkTarget(category domain.ArticleCategory, articleIdx int64) error {
	switch category {
	case domain.CategoryNotice:
		notice, err := s.noticeRepo.FindByIdx(articleIdx)
		if err != nil {
			return common.ErrNoticeNotFound
		}
		if !notice.Activated {
			return common.ErrNoticeNotFound
		}
	case domain.CategoryQuestion:
		question, err := s.questionRepo.FindByIdx(articleIdx)
		if err != nil {
			return common.ErrQuestionNotFound
		}
		if !question.Activated {
			return common.ErrQuestionInactive
		}
	case domain.CategoryAnswer:
		answer, err := s.answerRepo.FindByIdx(articleIdx)
		if err != nil {
			return common.ErrAnswerNotFound
		}
		if !answer.Activated {
			return common.ErrAnswerInactive
		}
	default:
		return common.ErrCommentNotFound
	}
	return nil
}
