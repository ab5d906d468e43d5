package usecase_test

import (
	"context"
	"time"

	"ebaylistingapp/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock item repository with overridable save behavior.
type mockRepo struct {
	items    []model.Item
	saveFunc func() error
	saves    int
}

func (m *mockRepo) Load(ctx context.Context) error                { return nil }
func (m *mockRepo) SetPath(ctx context.Context, dir string) error { return nil }

func (m *mockRepo) List(ctx context.Context) []model.Item {
	out := make([]model.Item, len(m.items))
	copy(out, m.items)
	return out
}

func (m *mockRepo) FindByID(ctx context.Context, id string) (model.Item, bool) {
	for _, it := range m.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

func (m *mockRepo) Append(ctx context.Context, it model.Item) {
	m.items = append(m.items, it)
}

func (m *mockRepo) ReplaceByID(ctx context.Context, it model.Item) bool {
	for i := range m.items {
		if m.items[i].ID == it.ID {
			m.items[i] = it
			return true
		}
	}
	return false
}

func (m *mockRepo) RemoveByID(ctx context.Context, id string) bool {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

func (m *mockRepo) SetStatus(ctx context.Context, id string, status model.Status) bool {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Status = status
			return true
		}
	}
	return false
}

func (m *mockRepo) RenameCategory(ctx context.Context, oldName, newName string) int {
	n := 0
	for i := range m.items {
		if m.items[i].Category == oldName {
			m.items[i].Category = newName
			n++
		}
	}
	return n
}

func (m *mockRepo) Save(ctx context.Context) error {
	m.saves++
	if m.saveFunc != nil {
		return m.saveFunc()
	}
	return nil
}

// fixedClock returns a clock pinned to the given day.
func fixedClock(day string) func() time.Time {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}
