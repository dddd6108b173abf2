package service

import (
	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/repository"
	"github.com/95Seo/gachicoding/pkg/auth"
	"github.com/95Seo/gachicoding/pkg/jwt"
)

// TokenPair access/refresh token pair returned on login and refresh
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginRequest credential login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthService credential verification and token issuance
type AuthService interface {
	Login(req *LoginRequest) (*TokenPair, *domain.UserResponse, error)
	Refresh(refreshToken string) (*TokenPair, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
	tokens   *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, hasher auth.PasswordHasher, tokens *jwt.Manager) AuthService {
	return &authService{userRepo: userRepo, hasher: hasher, tokens: tokens}
}

// Login verifies credentials and returns a token pair. A wrong password
// and an unknown email report the same error; a locked or unconfirmed
// account cannot log in.
func (s *authService) Login(req *LoginRequest) (*TokenPair, *domain.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, nil, common.ErrInvalidCredentials
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		return nil, nil, common.ErrInvalidCredentials
	}

	if !user.Enabled || user.Locked {
		return nil, nil, common.ErrUnauthorized
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user.ToResponse(), nil
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (s *authService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.VerifyToken(refreshToken)
	if err != nil {
		if err == jwt.ErrExpiredToken {
			return nil, common.ErrExpiredToken
		}
		return nil, common.ErrInvalidToken
	}

	user, err := s.userRepo.FindByEmail(claims.Email)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	if !user.Enabled || user.Locked {
		return nil, common.ErrUnauthorized
	}

	return s.issuePair(user)
}

func (s *authService) issuePair(user *domain.User) (*TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(user.Email, user.Nick, string(user.Role))
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.Email)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
