package usecase_test

import (
	"context"
	"testing"

	"ebaylistingapp/internal/item"
	"ebaylistingapp/internal/item/usecase"
	"ebaylistingapp/internal/model"
)

func TestEvaluateLifecycle(t *testing.T) {
	ctx := context.Background()
	today := fixedClock("2025-06-15")

	t.Run("Ends Expired Active Items", func(t *testing.T) {
		repo := &mockRepo{items: []model.Item{
			{ID: "past", Status: model.StatusActive, EndDate: "2025-06-01"},
			{ID: "today", Status: model.StatusActive, EndDate: "2025-06-15"},
			{ID: "future", Status: model.StatusActive, EndDate: "2025-07-01"},
			{ID: "open", Status: model.StatusActive},
		}}
		uc := usecase.NewWithClock(repo, nil, &mockLogger{}, today)

		changed, err := uc.EvaluateLifecycle(ctx, today())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !changed {
			t.Error("expected changed=true")
		}

		want := map[string]model.Status{
			"past":   model.StatusEnded,
			"today":  model.StatusEnded,
			"future": model.StatusActive,
			"open":   model.StatusActive,
		}
		for _, it := range repo.items {
			if it.Status != want[it.ID] {
				t.Errorf("item %s: expected %q, got %q", it.ID, want[it.ID], it.Status)
			}
		}
		if repo.saves != 1 {
			t.Errorf("expected one save, got %d", repo.saves)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		repo := &mockRepo{items: []model.Item{
			{ID: "past", Status: model.StatusActive, EndDate: "2025-06-01"},
		}}
		uc := usecase.NewWithClock(repo, nil, &mockLogger{}, today)

		if changed, _ := uc.EvaluateLifecycle(ctx, today()); !changed {
			t.Fatal("expected first pass to change")
		}
		changed, err := uc.EvaluateLifecycle(ctx, today())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changed {
			t.Error("expected second pass to be a no-op")
		}
		if repo.saves != 1 {
			t.Errorf("expected a single save across both passes, got %d", repo.saves)
		}
	})

	t.Run("Ended Items Never Touched", func(t *testing.T) {
		repo := &mockRepo{items: []model.Item{
			{ID: "done", Status: model.StatusEnded, EndDate: "2025-06-01"},
		}}
		uc := usecase.NewWithClock(repo, nil, &mockLogger{}, today)

		changed, err := uc.EvaluateLifecycle(ctx, today())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changed {
			t.Error("expected no change on already-ended items")
		}
	})

	t.Run("Unparseable End Date Skipped", func(t *testing.T) {
		repo := &mockRepo{items: []model.Item{
			{ID: "odd", Status: model.StatusActive, EndDate: "someday"},
		}}
		uc := usecase.NewWithClock(repo, nil, &mockLogger{}, today)

		changed, err := uc.EvaluateLifecycle(ctx, today())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changed {
			t.Error("expected no change for unparseable end dates")
		}
		if repo.items[0].Status != model.StatusActive {
			t.Errorf("expected item left active, got %q", repo.items[0].Status)
		}
	})

	t.Run("Restore Then Reevaluate Re-Ends", func(t *testing.T) {
		repo := &mockRepo{items: []model.Item{
			{ID: "a1", Status: model.StatusActive, EndDate: "2025-06-01"},
		}}
		uc := usecase.NewWithClock(repo, nil, &mockLogger{}, today)

		if _, err := uc.EvaluateLifecycle(ctx, today()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Restore(ctx, "a1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.items[0].Status != model.StatusActive {
			t.Fatalf("expected restored item active, got %q", repo.items[0].Status)
		}

		changed, err := uc.EvaluateLifecycle(ctx, today())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !changed {
			t.Error("expected reevaluation to re-end the item")
		}
		if repo.items[0].Status != model.StatusEnded {
			t.Errorf("expected ended after reevaluation, got %q", repo.items[0].Status)
		}
	})

	t.Run("List Runs Lifecycle First", func(t *testing.T) {
		repo := &mockRepo{items: []model.Item{
			{ID: "past", Category: "C", Name: "N", Description: "D", DateAdded: "2025-01-01", Status: model.StatusActive, EndDate: "2025-06-01"},
		}}
		uc := usecase.NewWithClock(repo, nil, &mockLogger{}, today)

		out, err := uc.List(ctx, item.ListInput{Status: "ended"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 1 {
			t.Errorf("expected expired item to show as ended, got %d results", out.Total)
		}
	})
}
