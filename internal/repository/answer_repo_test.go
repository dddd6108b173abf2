package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/95Seo/gachicoding/internal/domain"
)

func setupAnswerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	db.AutoMigrate(&domain.Question{}, &domain.Answer{}, &domain.Comment{}, &domain.File{})
	return db
}

func TestAnswerRepository_ListByQuestionSelectedFirst(t *testing.T) {
	db := setupAnswerTestDB(t)
	repo := NewAnswerRepository(db)

	first := &domain.Answer{QuestionIdx: 7, WriterIdx: 2, Contents: "first", Activated: true}
	second := &domain.Answer{QuestionIdx: 7, WriterIdx: 3, Contents: "second", Activated: true}
	accepted := &domain.Answer{QuestionIdx: 7, WriterIdx: 4, Contents: "accepted", Selected: true, Activated: true}
	hidden := &domain.Answer{QuestionIdx: 7, WriterIdx: 5, Contents: "hidden", Activated: false}
	other := &domain.Answer{QuestionIdx: 8, WriterIdx: 2, Contents: "other question", Activated: true}
	for _, a := range []*domain.Answer{first, second, accepted, hidden, other} {
		repo.Create(a)
	}

	answers, total, err := repo.ListByQuestion(7, 1, 20)
	if err != nil {
		t.Fatalf("ListByQuestion failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 visible answers, got %d", total)
	}
	if answers[0].Contents != "accepted" {
		t.Errorf("expected accepted answer first, got %q", answers[0].Contents)
	}
	if answers[1].Contents != "first" || answers[2].Contents != "second" {
		t.Errorf("expected remaining answers oldest first, got %q then %q", answers[1].Contents, answers[2].Contents)
	}
}

func TestAnswerRepository_SaveSelectionCommitsBothRows(t *testing.T) {
	db := setupAnswerTestDB(t)
	repo := NewAnswerRepository(db)

	question := &domain.Question{WriterIdx: 1, Title: "q", Contents: "c", Activated: true}
	db.Create(question)
	answer := &domain.Answer{QuestionIdx: question.Idx, WriterIdx: 2, Contents: "a", Activated: true}
	repo.Create(answer)

	answer.Select()
	question.Solve()
	if err := repo.SaveSelection(answer, question); err != nil {
		t.Fatalf("SaveSelection failed: %v", err)
	}

	var gotAnswer domain.Answer
	var gotQuestion domain.Question
	db.First(&gotAnswer, "ans_idx = ?", answer.Idx)
	db.First(&gotQuestion, "que_idx = ?", question.Idx)
	if !gotAnswer.Selected {
		t.Error("expected answer row marked selected")
	}
	if !gotQuestion.Solved {
		t.Error("expected question row marked solved")
	}
}

func TestAnswerRepository_DeleteCascadesComments(t *testing.T) {
	db := setupAnswerTestDB(t)
	repo := NewAnswerRepository(db)

	answer := &domain.Answer{QuestionIdx: 7, WriterIdx: 2, Contents: "a", Activated: true}
	repo.Create(answer)
	db.Create(&domain.Comment{ArticleIdx: answer.Idx, ArticleCategory: domain.CategoryAnswer, WriterIdx: 3, Contents: "c", Activated: true})

	if err := repo.Delete(answer.Idx); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var comments int64
	db.Model(&domain.Comment{}).Where("article_idx = ? AND article_category = ?", answer.Idx, domain.CategoryAnswer).Count(&comments)
	if comments != 0 {
		t.Errorf("expected answer comments gone, %d left", comments)
	}
	if _, err := repo.FindByIdx(answer.Idx); err == nil {
		t.Error("expected answer row gone")
	}
}
