package repository

import (
	"github.com/95Seo/gachicoding/internal/domain"
	"gorm.io/gorm"
)

// UserRepository user store interface
type UserRepository interface {
	FindByIdx(idx int64) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	FindByIdxs(idxs []int64) ([]*domain.User, error)
	ExistsByEmail(email string) (bool, error)
	ExistsByNick(nick string) (bool, error)

	Create(user *domain.User) error
	Save(user *domain.User) error
	Delete(idx int64) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a GORM-backed UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByIdx(idx int64) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, "user_idx = ?", idx).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, "user_email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIdxs batch-loads users for writer resolution on list responses.
func (r *userRepository) FindByIdxs(idxs []int64) ([]*domain.User, error) {
	if len(idxs) == 0 {
		return []*domain.User{}, nil
	}
	var users []*domain.User
	if err := r.db.Where("user_idx IN ?", idxs).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).Where("user_email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) ExistsByNick(nick string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).Where("user_nick = ?", nick).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Create(user *domain.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) Save(user *domain.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(idx int64) error {
	return r.db.Delete(&domain.User{}, "user_idx = ?", idx).Error
}
