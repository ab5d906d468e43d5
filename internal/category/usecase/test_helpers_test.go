package usecase_test

import (
	"context"

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

// Mock category repository with overridable behavior per method.
type mockRepo struct {
	categories []model.Category
	saveFunc   func() error
	saves      int
}

func (m *mockRepo) Load(ctx context.Context) error               { return nil }
func (m *mockRepo) SetPath(ctx context.Context, dir string) error { return nil }

func (m *mockRepo) List(ctx context.Context) []model.Category {
	out := make([]model.Category, len(m.categories))
	copy(out, m.categories)
	return out
}

func (m *mockRepo) Get(ctx context.Context, index int) (model.Category, bool) {
	if index < 0 || index >= len(m.categories) {
		return model.Category{}, false
	}
	return m.categories[index], true
}

func (m *mockRepo) Append(ctx context.Context, c model.Category) {
	m.categories = append(m.categories, c)
}

func (m *mockRepo) Replace(ctx context.Context, index int, c model.Category) bool {
	if index < 0 || index >= len(m.categories) {
		return false
	}
	m.categories[index] = c
	return true
}

func (m *mockRepo) Remove(ctx context.Context, index int) bool {
	if index < 0 || index >= len(m.categories) {
		return false
	}
	m.categories = append(m.categories[:index], m.categories[index+1:]...)
	return true
}

func (m *mockRepo) Save(ctx context.Context) error {
	m.saves++
	if m.saveFunc != nil {
		return m.saveFunc()
	}
	return nil
}

// Mock item cascader recording rename calls.
type mockCascader struct {
	renameFunc func(oldName, newName string) int
	saveFunc   func() error
	renames    [][2]string
}

func (m *mockCascader) RenameCategory(ctx context.Context, oldName, newName string) int {
	m.renames = append(m.renames, [2]string{oldName, newName})
	if m.renameFunc != nil {
		return m.renameFunc(oldName, newName)
	}
	return 0
}

func (m *mockCascader) Save(ctx context.Context) error {
	if m.saveFunc != nil {
		return m.saveFunc()
	}
	return nil
}
