package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
)

func TestIssueToken_SendsConfirmMail(t *testing.T) {
	repo := new(mockEmailTokenRepo)
	userRepo := new(mockUserRepo)
	mail := new(mockMailer)
	svc := NewEmailConfirmService(repo, userRepo, mail, "http://localhost:8080")

	repo.On("Create", mock.AnythingOfType("*domain.EmailConfirmToken")).Return(nil)
	mail.On("Send", "new@test.com", mock.Anything, mock.Anything).Return(nil)

	token, err := svc.Issue("new@test.com")

	assert.NoError(t, err)
	assert.Equal(t, "new@test.com", token.TargetEmail)
	assert.NotEmpty(t, token.TokenID)
	mail.AssertExpectations(t)
}

func TestIssueToken_MailFailureIsBestEffort(t *testing.T) {
	repo := new(mockEmailTokenRepo)
	userRepo := new(mockUserRepo)
	mail := new(mockMailer)
	svc := NewEmailConfirmService(repo, userRepo, mail, "http://localhost:8080")

	repo.On("Create", mock.AnythingOfType("*domain.EmailConfirmToken")).Return(nil)
	mail.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	token, err := svc.Issue("new@test.com")

	assert.NoError(t, err)
	assert.NotNil(t, token)
}

func TestIssueToken_NilMailer(t *testing.T) {
	repo := new(mockEmailTokenRepo)
	userRepo := new(mockUserRepo)
	svc := NewEmailConfirmService(repo, userRepo, nil, "http://localhost:8080")

	repo.On("Create", mock.AnythingOfType("*domain.EmailConfirmToken")).Return(nil)

	token, err := svc.Issue("new@test.com")

	assert.NoError(t, err)
	assert.NotNil(t, token)
}

func TestConfirm_EnablesUser(t *testing.T) {
	repo := new(mockEmailTokenRepo)
	userRepo := new(mockUserRepo)
	svc := NewEmailConfirmService(repo, userRepo, nil, "http://localhost:8080")

	token := domain.NewEmailConfirmToken("new@test.com")
	user := &domain.User{Idx: 1, Email: "new@test.com"}

	repo.On("FindByID", token.TokenID).Return(token, nil)
	repo.On("Save", token).Return(nil)
	userRepo.On("FindByEmail", "new@test.com").Return(user, nil)
	userRepo.On("Save", user).Return(nil)

	err := svc.Confirm(token.TokenID)

	assert.NoError(t, err)
	assert.True(t, token.Confirmed)
	assert.True(t, user.Enabled)
	userRepo.AssertExpectations(t)
}

func TestConfirm_UnknownToken(t *testing.T) {
	repo := new(mockEmailTokenRepo)
	userRepo := new(mockUserRepo)
	svc := NewEmailConfirmService(repo, userRepo, nil, "http://localhost:8080")

	repo.On("FindByID", "no-such-token").Return(nil, errors.New("record not found"))

	err := svc.Confirm("no-such-token")

	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestConfirm_ExpiredToken(t *testing.T) {
	repo := new(mockEmailTokenRepo)
	userRepo := new(mockUserRepo)
	svc := NewEmailConfirmService(repo, userRepo, nil, "http://localhost:8080")

	token := domain.NewEmailConfirmToken("new@test.com")
	token.ExpiredAt = time.Now().Add(-time.Minute)
	repo.On("FindByID", token.TokenID).Return(token, nil)

	err := svc.Confirm(token.TokenID)

	assert.ErrorIs(t, err, common.ErrExpiredToken)
	assert.False(t, token.Confirmed)
	userRepo.AssertNotCalled(t, "Save", mock.Anything)
}
