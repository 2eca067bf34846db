package service

import (
	"errors"
	"testing"

	"github.com/schoolsite/internal/db"
)

func TestKnowledgeCreateAndList(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.ChatbotKnowledge{})
	defer cleanup()

	svc := NewKnowledgeService(gdb)
	if _, err := svc.Create(KnowledgeInput{Question: "Q1", Answer: "A1", Category: "General", IsActive: true}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create(KnowledgeInput{Question: "Q2", Answer: "A2", IsActive: false}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	all, err := svc.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}

	active, err := svc.ListActive()
	if err != nil {
		t.Fatalf("ListActive returned error: %v", err)
	}
	if len(active) != 1 || active[0].Question != "Q1" {
		t.Fatalf("expected only the active entry, got %+v", active)
	}
}

func TestKnowledgeValidation(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.ChatbotKnowledge{})
	defer cleanup()

	svc := NewKnowledgeService(gdb)
	if _, err := svc.Create(KnowledgeInput{Answer: "A"}); !errors.Is(err, ErrKnowledgeQuestionRequired) {
		t.Fatalf("expected ErrKnowledgeQuestionRequired, got %v", err)
	}
	if _, err := svc.Create(KnowledgeInput{Question: "Q"}); !errors.Is(err, ErrKnowledgeAnswerRequired) {
		t.Fatalf("expected ErrKnowledgeAnswerRequired, got %v", err)
	}
}

func TestKnowledgeUpdateCanDeactivate(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.ChatbotKnowledge{})
	defer cleanup()

	svc := NewKnowledgeService(gdb)
	entry, err := svc.Create(KnowledgeInput{Question: "Q", Answer: "A", IsActive: true})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(entry.ID, KnowledgeInput{Question: "Q", Answer: "A", IsActive: false})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.IsActive {
		t.Fatal("expected entry deactivated")
	}

	// The flip must be persisted, not lost to a sparse update.
	stored, err := svc.Get(entry.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if stored.IsActive {
		t.Fatal("expected deactivation persisted")
	}
}

func TestKnowledgeDelete(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t, &db.ChatbotKnowledge{})
	defer cleanup()

	svc := NewKnowledgeService(gdb)
	entry, err := svc.Create(KnowledgeInput{Question: "Q", Answer: "A", IsActive: true})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(entry.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(entry.ID); !errors.Is(err, ErrKnowledgeNotFound) {
		t.Fatalf("expected ErrKnowledgeNotFound, got %v", err)
	}
}
