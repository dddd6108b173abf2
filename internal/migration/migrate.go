package migration

import (
	"gorm.io/gorm"

	"github.com/95Seo/gachicoding/internal/domain"
)

// Run executes AutoMigrate for every table the API owns. Existing tables
// are altered in place, never dropped.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.EmailConfirmToken{},
		&domain.Notice{},
		&domain.Question{},
		&domain.Answer{},
		&domain.Comment{},
		&domain.Tag{},
		&domain.BoardTag{},
		&domain.File{},
	)
}
