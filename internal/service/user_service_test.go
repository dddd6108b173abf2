package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
)

func TestRegisterUser_Success(t *testing.T) {
	repo := new(mockUserRepo)
	emailSvc := new(mockEmailConfirmService)
	svc := NewUserService(repo, fakeHasher{}, emailSvc)

	repo.On("ExistsByEmail", "new@test.com").Return(false, nil)
	repo.On("ExistsByNick", "newbie").Return(false, nil)
	repo.On("Create", mock.AnythingOfType("*domain.User")).Return(nil)
	emailSvc.On("Issue", "new@test.com").Return(domain.NewEmailConfirmToken("new@test.com"), nil)

	result, err := svc.Register(&domain.CreateUserRequest{
		Name:     "New User",
		Nick:     "newbie",
		Email:    "new@test.com",
		Password: "secret-pass",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@test.com", result.Email)
	assert.False(t, result.Enabled)
	repo.AssertExpectations(t)
	emailSvc.AssertExpectations(t)
}

func TestRegisterUser_PasswordIsHashed(t *testing.T) {
	repo := new(mockUserRepo)
	emailSvc := new(mockEmailConfirmService)
	svc := NewUserService(repo, fakeHasher{}, emailSvc)

	repo.On("ExistsByEmail", "new@test.com").Return(false, nil)
	repo.On("ExistsByNick", "newbie").Return(false, nil)
	repo.On("Create", mock.MatchedBy(func(u *domain.User) bool {
		return u.Password == "hashed:secret-pass"
	})).Return(nil)
	emailSvc.On("Issue", "new@test.com").Return(domain.NewEmailConfirmToken("new@test.com"), nil)

	_, err := svc.Register(&domain.CreateUserRequest{
		Name:     "New User",
		Nick:     "newbie",
		Email:    "new@test.com",
		Password: "secret-pass",
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRegisterUser_TokenIssueFailureStillCreates(t *testing.T) {
	repo := new(mockUserRepo)
	emailSvc := new(mockEmailConfirmService)
	svc := NewUserService(repo, fakeHasher{}, emailSvc)

	repo.On("ExistsByEmail", "new@test.com").Return(false, nil)
	repo.On("ExistsByNick", "newbie").Return(false, nil)
	repo.On("Create", mock.AnythingOfType("*domain.User")).Return(nil)
	// token issuance is best-effort; the created account is still reported
	emailSvc.On("Issue", "new@test.com").Return(nil, errors.New("smtp down"))

	result, err := svc.Register(&domain.CreateUserRequest{
		Name:     "New User",
		Nick:     "newbie",
		Email:    "new@test.com",
		Password: "secret-pass",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@test.com", result.Email)
	repo.AssertExpectations(t)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	emailSvc := new(mockEmailConfirmService)
	svc := NewUserService(repo, fakeHasher{}, emailSvc)

	repo.On("ExistsByEmail", "dup@test.com").Return(true, nil)

	_, err := svc.Register(&domain.CreateUserRequest{
		Name:     "Dup",
		Nick:     "dup",
		Email:    "dup@test.com",
		Password: "secret-pass",
	})

	assert.ErrorIs(t, err, common.ErrDuplicateEmail)
	repo.AssertNotCalled(t, "Create", mock.Anything)
	emailSvc.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestRegisterUser_DuplicateNick(t *testing.T) {
	repo := new(mockUserRepo)
	emailSvc := new(mockEmailConfirmService)
	svc := NewUserService(repo, fakeHasher{}, emailSvc)

	repo.On("ExistsByEmail", "new@test.com").Return(false, nil)
	repo.On("ExistsByNick", "taken").Return(true, nil)

	_, err := svc.Register(&domain.CreateUserRequest{
		Name:     "New",
		Nick:     "taken",
		Email:    "new@test.com",
		Password: "secret-pass",
	})

	assert.ErrorIs(t, err, common.ErrDuplicateNickname)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdateUser_NotOwner(t *testing.T) {
	repo := new(mockUserRepo)
	emailSvc := new(mockEmailConfirmService)
	svc := NewUserService(repo, fakeHasher{}, emailSvc)

	user := &domain.User{Idx: 1, Nick: "owner", Email: "owner@test.com"}
	repo.On("FindByIdx", int64(1)).Return(user, nil)

	_, err := svc.Update("stranger@test.com", 1, &domain.UpdateUserRequest{Nick: "stolen"})

	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Equal(t, "owner", user.Nick)
	repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestUpdateUser_NickAndPassword(t *testing.T) {
	repo := new(mockUserRepo)
	emailSvc := new(mockEmailConfirmService)
	svc := NewUserService(repo, fakeHasher{}, emailSvc)

	user := &domain.User{Idx: 1, Nick: "old", Email: "owner@test.com", Password: "hashed:old"}
	repo.On("FindByIdx", int64(1)).Return(user, nil)
	repo.On("ExistsByNick", "fresh").Return(false, nil)
	repo.On("Save", user).Return(nil)

	result, err := svc.Update("owner@test.com", 1, &domain.UpdateUserRequest{
		Nick:     "fresh",
		Password: "newpass",
	})

	assert.NoError(t, err)
	assert.Equal(t, "fresh", result.Nick)
	assert.Equal(t, "hashed:newpass", user.Password)
}

func TestUpdateUser_DuplicateNick(t *testing.T) {
	repo := new(mockUserRepo)
	emailSvc := new(mockEmailConfirmService)
	svc := NewUserService(repo, fakeHasher{}, emailSvc)

	user := &domain.User{Idx: 1, Nick: "old", Email: "owner@test.com"}
	repo.On("FindByIdx", int64(1)).Return(user, nil)
	repo.On("ExistsByNick", "taken").Return(true, nil)

	_, err := svc.Update("owner@test.com", 1, &domain.UpdateUserRequest{Nick: "taken"})

	assert.ErrorIs(t, err, common.ErrDuplicateNickname)
	assert.Equal(t, "old", user.Nick)
}

func TestRemoveUser_NotOwner(t *testing.T) {
	repo := new(mockUserRepo)
	emailSvc := new(mockEmailConfirmService)
	svc := NewUserService(repo, fakeHasher{}, emailSvc)

	user := &domain.User{Idx: 1, Email: "owner@test.com"}
	repo.On("FindByIdx", int64(1)).Return(user, nil)

	err := svc.Remove("stranger@test.com", 1)

	assert.ErrorIs(t, err, common.ErrUnauthorized)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo := new(mockUserRepo)
	emailSvc := new(mockEmailConfirmService)
	svc := NewUserService(repo, fakeHasher{}, emailSvc)

	repo.On("FindByEmail", "ghost@test.com").Return(nil, errors.New("record not found"))

	_, err := svc.GetByEmail("ghost@test.com")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}
