package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/95Seo/gachicoding/internal/domain"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByIdx(idx int64) (*domain.User, error) {
	args := m.Called(idx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByIdxs(idxs []int64) ([]*domain.User, error) {
	args := m.Called(idxs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByNick(nick string) (bool, error) {
	args := m.Called(nick)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Create(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) Save(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) Delete(idx int64) error {
	return m.Called(idx).Error(0)
}

// --- Mock NoticeRepository ---

type mockNoticeRepo struct {
	mock.Mock
}

func (m *mockNoticeRepo) FindByIdx(idx int64) (*domain.Notice, error) {
	args := m.Called(idx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notice), args.Error(1)
}

func (m *mockNoticeRepo) FindActivatedByIdx(idx int64) (*domain.Notice, error) {
	args := m.Called(idx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notice), args.Error(1)
}

func (m *mockNoticeRepo) Search(keyword string, page, limit int) ([]*domain.Notice, int64, error) {
	args := m.Called(keyword, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Notice), args.Get(1).(int64), args.Error(2)
}

func (m *mockNoticeRepo) Create(notice *domain.Notice) error {
	return m.Called(notice).Error(0)
}

func (m *mockNoticeRepo) Save(notice *domain.Notice) error {
	return m.Called(notice).Error(0)
}

func (m *mockNoticeRepo) Delete(idx int64) error {
	return m.Called(idx).Error(0)
}

func (m *mockNoticeRepo) IncrementViews(idx int64) error {
	return m.Called(idx).Error(0)
}

// --- Mock QuestionRepository ---

type mockQuestionRepo struct {
	mock.Mock
}

func (m *mockQuestionRepo) FindByIdx(idx int64) (*domain.Question, error) {
	args := m.Called(idx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *mockQuestionRepo) FindActivatedByIdx(idx int64) (*domain.Question, error) {
	args := m.Called(idx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *mockQuestionRepo) Search(keyword string, page, limit int) ([]*domain.Question, int64, error) {
	args := m.Called(keyword, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Question), args.Get(1).(int64), args.Error(2)
}

func (m *mockQuestionRepo) Create(question *domain.Question) error {
	return m.Called(question).Error(0)
}

func (m *mockQuestionRepo) Save(question *domain.Question) error {
	return m.Called(question).Error(0)
}

func (m *mockQuestionRepo) Delete(idx int64) error {
	return m.Called(idx).Error(0)
}

func (m *mockQuestionRepo) IncrementViews(idx int64) error {
	return m.Called(idx).Error(0)
}

// --- Mock AnswerRepository ---

type mockAnswerRepo struct {
	mock.Mock
}

func (m *mockAnswerRepo) FindByIdx(idx int64) (*domain.Answer, error) {
	args := m.Called(idx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Answer), args.Error(1)
}

func (m *mockAnswerRepo) ListByQuestion(questionIdx int64, page, limit int) ([]*domain.Answer, int64, error) {
	args := m.Called(questionIdx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Answer), args.Get(1).(int64), args.Error(2)
}

func (m *mockAnswerRepo) Create(answer *domain.Answer) error {
	return m.Called(answer).Error(0)
}

func (m *mockAnswerRepo) Save(answer *domain.Answer) error {
	return m.Called(answer).Error(0)
}

func (m *mockAnswerRepo) Delete(idx int64) error {
	return m.Called(idx).Error(0)
}

func (m *mockAnswerRepo) SaveSelection(answer *domain.Answer, question *domain.Question) error {
	return m.Called(answer, question).Error(0)
}

// --- Mock CommentRepository ---

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) FindByIdx(idx int64) (*domain.Comment, error) {
	args := m.Called(idx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *mockCommentRepo) ListByArticle(category domain.ArticleCategory, articleIdx int64, page, limit int) ([]*domain.Comment, int64, error) {
	args := m.Called(category, articleIdx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentRepo) Create(comment *domain.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *mockCommentRepo) Save(comment *domain.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *mockCommentRepo) Delete(idx int64) error {
	return m.Called(idx).Error(0)
}

// --- Mock TagRepository ---

type mockTagRepo struct {
	mock.Mock
}

func (m *mockTagRepo) FirstOrCreate(keyword string) (*domain.Tag, error) {
	args := m.Called(keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *mockTagRepo) CreateBoardTag(boardTag *domain.BoardTag) error {
	return m.Called(boardTag).Error(0)
}

func (m *mockTagRepo) FindByArticle(category domain.ArticleCategory, boardIdx int64) ([]*domain.Tag, error) {
	args := m.Called(category, boardIdx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Tag), args.Error(1)
}

func (m *mockTagRepo) DeleteByArticle(category domain.ArticleCategory, boardIdx int64) error {
	return m.Called(category, boardIdx).Error(0)
}

// --- Mock TagService ---

type mockTagService struct {
	mock.Mock
}

func (m *mockTagService) RegisterBoardTags(category domain.ArticleCategory, boardIdx int64, keywords []string) error {
	return m.Called(category, boardIdx, keywords).Error(0)
}

func (m *mockTagService) GetTags(category domain.ArticleCategory, boardIdx int64) ([]*domain.TagResponse, error) {
	args := m.Called(category, boardIdx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TagResponse), args.Error(1)
}

func (m *mockTagService) RemoveBoardTags(category domain.ArticleCategory, boardIdx int64) error {
	return m.Called(category, boardIdx).Error(0)
}

// --- Mock EmailTokenRepository ---

type mockEmailTokenRepo struct {
	mock.Mock
}

func (m *mockEmailTokenRepo) Create(token *domain.EmailConfirmToken) error {
	return m.Called(token).Error(0)
}

func (m *mockEmailTokenRepo) FindByID(tokenID string) (*domain.EmailConfirmToken, error) {
	args := m.Called(tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmailConfirmToken), args.Error(1)
}

func (m *mockEmailTokenRepo) Save(token *domain.EmailConfirmToken) error {
	return m.Called(token).Error(0)
}

// --- Mock EmailConfirmService ---

type mockEmailConfirmService struct {
	mock.Mock
}

func (m *mockEmailConfirmService) Issue(targetEmail string) (*domain.EmailConfirmToken, error) {
	args := m.Called(targetEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmailConfirmToken), args.Error(1)
}

func (m *mockEmailConfirmService) Confirm(tokenID string) error {
	return m.Called(tokenID).Error(0)
}

// --- Mock Mailer ---

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(recipient, subject, body string) error {
	return m.Called(recipient, subject, body).Error(0)
}

// --- Mock ObjectStorage ---

type mockObjectStorage struct {
	mock.Mock
}

func (m *mockObjectStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	return m.Called(ctx, key, body, contentType).Error(0)
}

func (m *mockObjectStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockObjectStorage) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}

// --- Fake PasswordHasher ---

// fakeHasher marks hashes deterministically so tests can assert on them.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hashed string) bool {
	return hashed == "hashed:"+password
}

// --- Mock FileRepository ---

type mockFileRepo struct {
	mock.Mock
}

func (m *mockFileRepo) Create(file *domain.File) error {
	return m.Called(file).Error(0)
}

func (m *mockFileRepo) FindByIdx(idx int64) (*domain.File, error) {
	args := m.Called(idx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.File), args.Error(1)
}

func (m *mockFileRepo) ListByArticle(category domain.ArticleCategory, articleIdx int64) ([]*domain.File, error) {
	args := m.Called(category, articleIdx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.File), args.Error(1)
}

func (m *mockFileRepo) DeleteByArticle(category domain.ArticleCategory, articleIdx int64) error {
	return m.Called(category, articleIdx).Error(0)
}

func strPtr(s string) *string {
	return &s
}
