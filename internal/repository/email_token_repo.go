package repository

import (
	"github.com/95Seo/gachicoding/internal/domain"
	"gorm.io/gorm"
)

// EmailTokenRepository email confirmation token store interface
type EmailTokenRepository interface {
	Create(token *domain.EmailConfirmToken) error
	FindByID(tokenID string) (*domain.EmailConfirmToken, error)
	Save(token *domain.EmailConfirmToken) error
}

type emailTokenRepository struct {
	db *gorm.DB
}

// NewEmailTokenRepository creates a GORM-backed EmailTokenRepository
func NewEmailTokenRepository(db *gorm.DB) EmailTokenRepository {
	return &emailTokenRepository{db: db}
}

func (r *emailTokenRepository) Create(token *domain.EmailConfirmToken) error {
	return r.db.Create(token).Error
}

func (r *emailTokenRepository) FindByID(tokenID string) (*domain.EmailConfirmToken, error) {
	var token domain.EmailConfirmToken
	if err := r.db.First(&token, "token_id = ?", tokenID).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *emailTokenRepository) Save(token *domain.EmailConfirmToken) error {
	return r.db.Save(token).Error
}
