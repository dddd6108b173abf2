package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/95Seo/gachicoding/internal/domain"
)

func setupTagTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	db.AutoMigrate(&domain.Tag{}, &domain.BoardTag{})
	return db
}

func TestTagRepository_FirstOrCreateDeduplicates(t *testing.T) {
	db := setupTagTestDB(t)
	repo := NewTagRepository(db)

	a, err := repo.FirstOrCreate("golang")
	if err != nil {
		t.Fatalf("FirstOrCreate failed: %v", err)
	}
	b, err := repo.FirstOrCreate("golang")
	if err != nil {
		t.Fatalf("FirstOrCreate (second) failed: %v", err)
	}
	if a.Idx != b.Idx {
		t.Errorf("expected same tag row, got idx %d and %d", a.Idx, b.Idx)
	}

	var count int64
	db.Model(&domain.Tag{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 tag row, got %d", count)
	}
}

func TestTagRepository_FindByArticleScopesToCategory(t *testing.T) {
	db := setupTagTestDB(t)
	repo := NewTagRepository(db)

	tag, _ := repo.FirstOrCreate("gorm")
	other, _ := repo.FirstOrCreate("redis")
	repo.CreateBoardTag(&domain.BoardTag{BoardIdx: 3, ArticleCategory: domain.CategoryQuestion, TagIdx: tag.Idx})
	repo.CreateBoardTag(&domain.BoardTag{BoardIdx: 3, ArticleCategory: domain.CategoryNotice, TagIdx: other.Idx})

	tags, err := repo.FindByArticle(domain.CategoryQuestion, 3)
	if err != nil {
		t.Fatalf("FindByArticle failed: %v", err)
	}
	if len(tags) != 1 || tags[0].Keyword != "gorm" {
		t.Fatalf("expected only the question tag, got %+v", tags)
	}
}

func TestTagRepository_DeleteByArticleKeepsTagRows(t *testing.T) {
	db := setupTagTestDB(t)
	repo := NewTagRepository(db)

	tag, _ := repo.FirstOrCreate("mysql")
	repo.CreateBoardTag(&domain.BoardTag{BoardIdx: 5, ArticleCategory: domain.CategoryQuestion, TagIdx: tag.Idx})

	if err := repo.DeleteByArticle(domain.CategoryQuestion, 5); err != nil {
		t.Fatalf("DeleteByArticle failed: %v", err)
	}

	tags, _ := repo.FindByArticle(domain.CategoryQuestion, 5)
	if len(tags) != 0 {
		t.Errorf("expected no linked tags, got %d", len(tags))
	}

	var tagRows int64
	db.Model(&domain.Tag{}).Count(&tagRows)
	if tagRows != 1 {
		t.Errorf("expected tag row to survive unlinking, got %d", tagRows)
	}
}
