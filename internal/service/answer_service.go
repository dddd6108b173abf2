package service

import (
	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/repository"
)

// AnswerService answer lifecycle and selection logic
type AnswerService interface {
	Register(req *domain.AnswerSaveRequest) (int64, error)
	GetListByQuestion(questionIdx int64, page, limit int) ([]*domain.AnswerResponse, *common.Meta, error)
	Modify(req *domain.AnswerUpdateRequest) (*domain.AnswerResponse, error)
	Select(req *domain.AnswerSelectRequest) error
	Enable(idx int64) error
	Disable(idx int64) error
	Remove(idx int64) error
}

type answerService struct {
	repo         repository.AnswerRepository
	questionRepo repository.QuestionRepository
	userRepo     repository.UserRepository
}

// NewAnswerService creates a new AnswerService
func NewAnswerService(repo repository.AnswerRepository, questionRepo repository.QuestionRepository, userRepo repository.UserRepository) AnswerService {
	return &answerService{repo: repo, questionRepo: questionRepo, userRepo: userRepo}
}

// Register creates an answer on an activated question. Answering an
// inactive or missing question fails before any write.
func (s *answerService) Register(req *domain.AnswerSaveRequest) (int64, error) {
	writer, err := s.userRepo.FindByEmail(req.UserEmail)
	if err != nil {
		return 0, common.ErrUserNotFound
	}

	question, err := s.questionRepo.FindByIdx(req.QuestionIdx)
	if err != nil {
		return 0, common.ErrQuestionNotFound
	}
	if !question.Activated {
		return 0, common.ErrQuestionInactive
	}

	answer, err := domain.NewAnswer(question.Idx, writer.Idx, req.Contents)
	if err != nil {
		return 0, err
	}

	if err := s.repo.Create(answer); err != nil {
		return 0, err
	}
	return answer.Idx, nil
}

// GetListByQuestion returns a page of activated answers for a question,
// selected first, then oldest first.
func (s *answerService) GetListByQuestion(questionIdx int64, page, limit int) ([]*domain.AnswerResponse, *common.Meta, error) {
	if _, err := s.questionRepo.FindByIdx(questionIdx); err != nil {
		return nil, nil, common.ErrQuestionNotFound
	}

	page, limit = normalizePage(page, limit)
	answers, total, err := s.repo.ListByQuestion(questionIdx, page, limit)
	if err != nil {
		return nil, nil, err
	}

	writerIdxs := make([]int64, len(answers))
	for i, a := range answers {
		writerIdxs[i] = a.WriterIdx
	}
	writers, err := resolveWriters(s.userRepo, writerIdxs)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*domain.AnswerResponse, len(answers))
	for i, a := range answers {
		responses[i] = a.ToResponse(writers[a.WriterIdx])
	}

	return responses, &common.Meta{Page: page, Limit: limit, Total: total}, nil
}

// Modify replaces the contents after re-validation. Only the writer may
// modify.
func (s *answerService) Modify(req *domain.AnswerUpdateRequest) (*domain.AnswerResponse, error) {
	answer, err := s.repo.FindByIdx(req.Idx)
	if err != nil {
		return nil, common.ErrAnswerNotFound
	}

	requester, err := s.userRepo.FindByEmail(req.UserEmail)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	if answer.WriterIdx != requester.Idx {
		return nil, common.ErrUnauthorized
	}

	if err := answer.Update(req.Contents); err != nil {
		return nil, err
	}

	if err := s.repo.Save(answer); err != nil {
		return nil, err
	}
	return answer.ToResponse(requester), nil
}

// Select accepts an answer for its question. The checks run in a fixed
// order and the first violation wins; no write happens until all pass.
// The answer's selected flag and the question's solved flag commit in one
// transaction.
func (s *answerService) Select(req *domain.AnswerSelectRequest) error {
	answer, err := s.repo.FindByIdx(req.Idx)
	if err != nil {
		return common.ErrAnswerNotFound
	}

	question, err := s.questionRepo.FindByIdx(answer.QuestionIdx)
	if err != nil {
		return common.ErrQuestionNotFound
	}

	requester, err := s.userRepo.FindByEmail(req.UserEmail)
	if err != nil {
		return common.ErrUserNotFound
	}

	if !answer.Activated {
		return common.ErrAnswerInactive
	}
	if !question.Activated {
		return common.ErrQuestionInactive
	}
	if question.WriterIdx != requester.Idx {
		return common.ErrUnauthorized
	}
	if question.Solved {
		return common.ErrQuestionAlreadySolved
	}
	if answer.Selected {
		return common.ErrAnswerAlreadySelected
	}

	answer.Select()
	question.Solve()

	return s.repo.SaveSelection(answer, question)
}

func (s *answerService) Enable(idx int64) error {
	answer, err := s.repo.FindByIdx(idx)
	if err != nil {
		return common.ErrAnswerNotFound
	}

	if err := answer.Enable(); err != nil {
		return err
	}
	return s.repo.Save(answer)
}

func (s *answerService) Disable(idx int64) error {
	answer, err := s.repo.FindByIdx(idx)
	if err != nil {
		return common.ErrAnswerNotFound
	}

	if err := answer.Disable(); err != nil {
		return err
	}
	return s.repo.Save(answer)
}

// Remove hard-deletes an answer with its file and comment rows.
func (s *answerService) Remove(idx int64) error {
	if _, err := s.repo.FindByIdx(idx); err != nil {
		return common.ErrAnswerNotFound
	}
	return s.repo.Delete(idx)
}
