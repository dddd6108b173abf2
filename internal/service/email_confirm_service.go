package service

import (
	"fmt"
	"time"

	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/repository"
	"github.com/95Seo/gachicoding/pkg/logger"
	"github.com/95Seo/gachicoding/pkg/mailer"
)

// EmailConfirmService issues, delivers and redeems email confirmation
// tokens. Confirming a valid token enables the target account.
type EmailConfirmService interface {
	// Issue creates a fresh token for the address and mails the confirm
	// link. Mail delivery is best-effort; a send failure does not undo the
	// issued token.
	Issue(targetEmail string) (*domain.EmailConfirmToken, error)
	Confirm(tokenID string) error
}

type emailConfirmService struct {
	repo     repository.EmailTokenRepository
	userRepo repository.UserRepository
	mail     mailer.Mailer
	baseURL  string
}

// NewEmailConfirmService creates a new EmailConfirmService. mail may be nil
// when SMTP is disabled; tokens are still issued and logged.
func NewEmailConfirmService(repo repository.EmailTokenRepository, userRepo repository.UserRepository, mail mailer.Mailer, baseURL string) EmailConfirmService {
	return &emailConfirmService{repo: repo, userRepo: userRepo, mail: mail, baseURL: baseURL}
}

func (s *emailConfirmService) Issue(targetEmail string) (*domain.EmailConfirmToken, error) {
	token := domain.NewEmailConfirmToken(targetEmail)
	if err := s.repo.Create(token); err != nil {
		return nil, err
	}

	if s.mail == nil {
		logger.Info("smtp disabled, confirm token for %s: %s", targetEmail, token.TokenID)
		return token, nil
	}

	link := fmt.Sprintf("%s/api/auth/confirm?token=%s", s.baseURL, token.TokenID)
	body := fmt.Sprintf("Confirm your email address within %d minutes:\n\n%s\n",
		int(domain.TokenExpiration.Minutes()), link)
	if err := s.mail.Send(targetEmail, "[gachicoding] confirm your email", body); err != nil {
		logger.Error("confirm mail to %s failed: %v", targetEmail, err)
	}

	return token, nil
}

// Confirm redeems a token and enables the account it was issued for. An
// unknown or mismatched token is invalid; a known but stale one is expired.
func (s *emailConfirmService) Confirm(tokenID string) error {
	token, err := s.repo.FindByID(tokenID)
	if err != nil {
		return common.ErrInvalidToken
	}

	if !token.Valid(tokenID) {
		if time.Now().After(token.ExpiredAt) {
			return common.ErrExpiredToken
		}
		return common.ErrInvalidToken
	}

	user, err := s.userRepo.FindByEmail(token.TargetEmail)
	if err != nil {
		return common.ErrUserNotFound
	}

	token.Confirm()
	if err := s.repo.Save(token); err != nil {
		return err
	}

	user.Enable()
	return s.userRepo.Save(user)
}
