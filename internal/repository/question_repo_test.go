package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/95Seo/gachicoding/internal/domain"
)

func setupQuestionTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	db.AutoMigrate(&domain.Question{}, &domain.Answer{}, &domain.Comment{}, &domain.BoardTag{}, &domain.File{})
	return db
}

func TestQuestionRepository_SearchFiltersInactive(t *testing.T) {
	db := setupQuestionTestDB(t)
	repo := NewQuestionRepository(db)

	repo.Create(&domain.Question{WriterIdx: 1, Title: "Go slices", Contents: "append semantics", Activated: true})
	repo.Create(&domain.Question{WriterIdx: 1, Title: "Go maps", Contents: "iteration order", Activated: false})

	questions, total, err := repo.Search("go", 1, 20)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 activated match, got %d", total)
	}
	if questions[0].Title != "Go slices" {
		t.Errorf("expected activated question, got %q", questions[0].Title)
	}
}

func TestQuestionRepository_SearchMatchesContentsCaseInsensitive(t *testing.T) {
	db := setupQuestionTestDB(t)
	repo := NewQuestionRepository(db)

	repo.Create(&domain.Question{WriterIdx: 1, Title: "first", Contents: "channel DEADLOCK here", Activated: true})
	repo.Create(&domain.Question{WriterIdx: 1, Title: "second", Contents: "unrelated", Activated: true})

	_, total, err := repo.Search("deadlock", 1, 20)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if total != 1 {
		t.Errorf("expected 1 match on contents, got %d", total)
	}
}

func TestQuestionRepository_SearchNewestFirstAndPaged(t *testing.T) {
	db := setupQuestionTestDB(t)
	repo := NewQuestionRepository(db)

	for i := 0; i < 5; i++ {
		repo.Create(&domain.Question{WriterIdx: 1, Title: "paging", Contents: "row", Activated: true})
	}

	questions, total, err := repo.Search("", 1, 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(questions) != 2 {
		t.Fatalf("expected page of 2, got %d", len(questions))
	}
	if questions[0].Idx < questions[1].Idx {
		t.Errorf("expected newest first, got idx %d before %d", questions[0].Idx, questions[1].Idx)
	}
}

func TestQuestionRepository_IncrementViews(t *testing.T) {
	db := setupQuestionTestDB(t)
	repo := NewQuestionRepository(db)

	question := &domain.Question{WriterIdx: 1, Title: "views", Contents: "count", Activated: true}
	repo.Create(question)

	repo.IncrementViews(question.Idx)
	repo.IncrementViews(question.Idx)

	found, err := repo.FindByIdx(question.Idx)
	if err != nil {
		t.Fatalf("FindByIdx failed: %v", err)
	}
	if found.Views != 2 {
		t.Errorf("expected 2 views, got %d", found.Views)
	}
}

func TestQuestionRepository_DeleteCascades(t *testing.T) {
	db := setupQuestionTestDB(t)
	repo := NewQuestionRepository(db)

	question := &domain.Question{WriterIdx: 1, Title: "doomed", Contents: "x", Activated: true}
	repo.Create(question)
	db.Create(&domain.Answer{QuestionIdx: question.Idx, WriterIdx: 2, Contents: "a", Activated: true})
	db.Create(&domain.Comment{ArticleIdx: question.Idx, ArticleCategory: domain.CategoryQuestion, WriterIdx: 2, Contents: "c", Activated: true})

	if err := repo.Delete(question.Idx); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var answers, comments int64
	db.Model(&domain.Answer{}).Where("que_idx = ?", question.Idx).Count(&answers)
	db.Model(&domain.Comment{}).Where("article_idx = ? AND article_category = ?", question.Idx, domain.CategoryQuestion).Count(&comments)
	if answers != 0 || comments != 0 {
		t.Errorf("expected cascade delete, got %d answers and %d comments left", answers, comments)
	}
	if _, err := repo.FindByIdx(question.Idx); err == nil {
		t.Error("expected question row gone")
	}
}

func TestQuestionRepository_FindActivatedHidesDisabled(t *testing.T) {
	db := setupQuestionTestDB(t)
	repo := NewQuestionRepository(db)

	question := &domain.Question{WriterIdx: 1, Title: "hidden", Contents: "x", Activated: false}
	repo.Create(question)

	if _, err := repo.FindActivatedByIdx(question.Idx); err == nil {
		t.Error("expected inactive question to be invisible")
	}
	if _, err := repo.FindByIdx(question.Idx); err != nil {
		t.Errorf("FindByIdx should still see it: %v", err)
	}
}
