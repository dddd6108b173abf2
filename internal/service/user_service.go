package service

import (
	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/repository"
	"github.com/95Seo/gachicoding/pkg/auth"
	"github.com/95Seo/gachicoding/pkg/logger"
)

// UserService account lifecycle logic
type UserService interface {
	Register(req *domain.CreateUserRequest) (*domain.UserResponse, error)
	GetByEmail(email string) (*domain.UserResponse, error)
	Update(requesterEmail string, idx int64, req *domain.UpdateUserRequest) (*domain.UserResponse, error)
	Remove(requesterEmail string, idx int64) error
}

type userService struct {
	repo     repository.UserRepository
	hasher   auth.PasswordHasher
	emailSvc EmailConfirmService
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository, hasher auth.PasswordHasher, emailSvc EmailConfirmService) UserService {
	return &userService{repo: repo, hasher: hasher, emailSvc: emailSvc}
}

// Register creates a disabled account and issues a confirmation token for
// its email. Duplicate email or nickname fails before anything is written.
func (s *userService) Register(req *domain.CreateUserRequest) (*domain.UserResponse, error) {
	if exists, err := s.repo.ExistsByEmail(req.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, common.ErrDuplicateEmail
	}

	if exists, err := s.repo.ExistsByNick(req.Nick); err != nil {
		return nil, err
	} else if exists {
		return nil, common.ErrDuplicateNickname
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:     req.Name,
		Nick:     req.Nick,
		Email:    req.Email,
		Password: hashed,
		Role:     domain.RoleUser,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	// the account exists at this point; token issuance is best-effort and
	// can be retried via the resend endpoint
	if _, err := s.emailSvc.Issue(user.Email); err != nil {
		logger.Error("confirm token issue for %s failed: %v", user.Email, err)
	}

	return user.ToResponse(), nil
}

func (s *userService) GetByEmail(email string) (*domain.UserResponse, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, common.ErrUserNotFound
	}
	return user.ToResponse(), nil
}

// Update applies mutable-field changes. Only the account owner may update;
// zero-valued request fields are skipped.
func (s *userService) Update(requesterEmail string, idx int64, req *domain.UpdateUserRequest) (*domain.UserResponse, error) {
	user, err := s.repo.FindByIdx(idx)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	if !user.IsMe(requesterEmail) {
		return nil, common.ErrUnauthorized
	}

	if req.Nick != "" && req.Nick != user.Nick {
		if exists, err := s.repo.ExistsByNick(req.Nick); err != nil {
			return nil, err
		} else if exists {
			return nil, common.ErrDuplicateNickname
		}
		user.UpdateNick(req.Nick)
	}

	if req.Password != "" {
		hashed, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, err
		}
		user.ChangePassword(hashed)
	}

	if req.Locked != nil {
		user.Locked = *req.Locked
	}
	if req.Enabled != nil {
		user.Enabled = *req.Enabled
	}

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// Remove deletes an account. Only the account owner may remove it.
func (s *userService) Remove(requesterEmail string, idx int64) error {
	user, err := s.repo.FindByIdx(idx)
	if err != nil {
		return common.ErrUserNotFound
	}

	if !user.IsMe(requesterEmail) {
		return common.ErrUnauthorized
	}

	return s.repo.Delete(idx)
}
