package usecase

import (
	"context"
	"strconv"
	"strings"

	"ebaylistingapp/internal/category"
	"ebaylistingapp/internal/eventbus"
	"ebaylistingapp/internal/model"
)

// List returns categories, filtered by a case-insensitive substring
// match over name and description when input.Search is set.
func (uc *implUseCase) List(ctx context.Context, input category.ListInput) (category.ListOutput, error) {
	all := uc.repo.List(ctx)

	search := strings.ToLower(strings.TrimSpace(input.Search))
	if search == "" {
		return category.ListOutput{Categories: all, Total: len(all)}, nil
	}

	filtered := make([]model.Category, 0, len(all))
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), search) ||
			strings.Contains(strings.ToLower(c.Description), search) {
			filtered = append(filtered, c)
		}
	}
	return category.ListOutput{Categories: filtered, Total: len(filtered)}, nil
}

// Add validates and appends a new category, then persists. A failed
// write keeps the in-memory record and reports a warning instead.
func (uc *implUseCase) Add(ctx context.Context, input category.AddInput) (category.AddOutput, error) {
	c, err := uc.validate(input.Name, input.Description, input.Days)
	if err != nil {
		return category.AddOutput{}, err
	}

	uc.repo.Append(ctx, c)
	warning := uc.persist(ctx)
	uc.notify(ctx)

	return category.AddOutput{Category: c, Warning: warning}, nil
}

// Update replaces the category at input.Index. When the name changes,
// items referencing the old name are rewritten in the same call so the
// soft reference never dangles half-applied.
func (uc *implUseCase) Update(ctx context.Context, input category.UpdateInput) (category.UpdateOutput, error) {
	c, err := uc.validate(input.Name, input.Description, input.Days)
	if err != nil {
		return category.UpdateOutput{}, err
	}

	existing, ok := uc.repo.Get(ctx, input.Index)
	if !ok {
		return category.UpdateOutput{}, category.ErrCategoryNotFound
	}

	uc.repo.Replace(ctx, input.Index, c)
	warning := uc.persist(ctx)

	var renamed int
	if uc.items != nil && existing.Name != c.Name {
		renamed = uc.items.RenameCategory(ctx, existing.Name, c.Name)
		if renamed > 0 {
			if err := uc.items.Save(ctx); err != nil {
				uc.l.Warnf(ctx, "uc.Update cascade save: %v", err)
				warning = joinWarnings(warning, err.Error())
			}
		}
	}

	uc.notify(ctx)
	return category.UpdateOutput{Category: c, ItemsRenamed: renamed, Warning: warning}, nil
}

// Remove deletes the category at index. Out-of-range is a no-op, not an
// error. Items keep their now-dangling category name; deletion does not
// cascade.
func (uc *implUseCase) Remove(ctx context.Context, index int) (category.RemoveOutput, error) {
	if !uc.repo.Remove(ctx, index) {
		return category.RemoveOutput{Removed: false}, nil
	}

	warning := uc.persist(ctx)
	uc.notify(ctx)
	return category.RemoveOutput{Removed: true, Warning: warning}, nil
}

// validate applies the shared add/update rules and returns the trimmed
// record.
func (uc *implUseCase) validate(name, description, days string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, category.ErrInvalidName
	}

	days = strings.TrimSpace(days)
	n, err := strconv.Atoi(days)
	if err != nil || n <= 0 {
		return model.Category{}, category.ErrInvalidDays
	}

	return model.Category{
		Name:        name,
		Description: strings.TrimSpace(description),
		Days:        days,
	}, nil
}

// persist saves the store and converts a failure into a non-fatal
// warning string per the store error policy.
func (uc *implUseCase) persist(ctx context.Context) string {
	if err := uc.repo.Save(ctx); err != nil {
		uc.l.Warnf(ctx, "uc.persist categories: %v", err)
		return err.Error()
	}
	return ""
}

func (uc *implUseCase) notify(ctx context.Context) {
	if uc.bus != nil {
		uc.bus.Publish(ctx, eventbus.Event{Topic: model.TopicCategoriesChanged})
	}
}

func joinWarnings(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "; " + b
	}
}
