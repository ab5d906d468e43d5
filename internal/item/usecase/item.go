package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"ebaylistingapp/internal/eventbus"
	"ebaylistingapp/internal/item"
	"ebaylistingapp/internal/model"
	"ebaylistingapp/pkg/dateutil"
)

// Detail returns a single item after a lifecycle pass, so a stale
// active status never reaches the caller.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.DetailOutput, error) {
	if _, err := uc.EvaluateLifecycle(ctx, uc.now()); err != nil {
		uc.l.Warnf(ctx, "uc.Detail lifecycle: %v", err)
	}

	it, ok := uc.repo.FindByID(ctx, id)
	if !ok {
		return item.DetailOutput{}, item.ErrItemNotFound
	}
	return item.DetailOutput{Item: it}, nil
}

// Add validates and appends a new item, assigning an id, then persists.
func (uc *implUseCase) Add(ctx context.Context, input item.AddInput) (item.AddOutput, error) {
	it, err := uc.validate(input)
	if err != nil {
		return item.AddOutput{}, err
	}
	it.ID = uuid.NewString()
	it.Status = model.StatusActive

	uc.repo.Append(ctx, it)
	warning := uc.persist(ctx)
	uc.notify(ctx)

	return item.AddOutput{Item: it, Warning: warning}, nil
}

// Update replaces the record matching input.ID. A missing id is an
// explicit ErrItemNotFound — silently dropping an edit would mask lost
// writes. Restore flips an ended item back to active in the same save.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateInput) (item.UpdateOutput, error) {
	existing, ok := uc.repo.FindByID(ctx, input.ID)
	if !ok {
		return item.UpdateOutput{}, item.ErrItemNotFound
	}

	it, err := uc.validate(item.AddInput{
		Category:    input.Category,
		Name:        input.Name,
		Description: input.Description,
		Notes:       input.Notes,
		DateAdded:   input.DateAdded,
		EndDate:     input.EndDate,
		ImageURL:    input.ImageURL,
	})
	if err != nil {
		return item.UpdateOutput{}, err
	}

	it.ID = existing.ID
	it.Status = existing.Status
	if input.Restore && existing.Status == model.StatusEnded {
		it.Status = model.StatusActive
	}

	uc.repo.ReplaceByID(ctx, it)
	warning := uc.persist(ctx)
	uc.notify(ctx)

	return item.UpdateOutput{Item: it, Warning: warning}, nil
}

// Delete removes the record. An absent id is a no-op, not an error.
func (uc *implUseCase) Delete(ctx context.Context, id string) (item.DeleteOutput, error) {
	if !uc.repo.RemoveByID(ctx, id) {
		return item.DeleteOutput{Removed: false}, nil
	}

	warning := uc.persist(ctx)
	uc.notify(ctx)
	return item.DeleteOutput{Removed: true, Warning: warning}, nil
}

// End marks the item ended regardless of its end date.
func (uc *implUseCase) End(ctx context.Context, id string) (item.StatusOutput, error) {
	return uc.setStatus(ctx, id, model.StatusEnded)
}

// Restore marks the item active regardless of its end date. If the end
// date is still in the past the next lifecycle pass re-ends it.
func (uc *implUseCase) Restore(ctx context.Context, id string) (item.StatusOutput, error) {
	return uc.setStatus(ctx, id, model.StatusActive)
}

func (uc *implUseCase) setStatus(ctx context.Context, id string, status model.Status) (item.StatusOutput, error) {
	if !uc.repo.SetStatus(ctx, id, status) {
		return item.StatusOutput{}, item.ErrItemNotFound
	}

	warning := uc.persist(ctx)
	uc.notify(ctx)

	it, _ := uc.repo.FindByID(ctx, id)
	return item.StatusOutput{Item: it, Warning: warning}, nil
}

// validate applies the shared add/update rules and returns the trimmed
// record with canonical dates. ID and Status are left for the caller.
func (uc *implUseCase) validate(input item.AddInput) (model.Item, error) {
	it := model.Item{
		Category:    strings.TrimSpace(input.Category),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Notes:       strings.TrimSpace(input.Notes),
		ImageURL:    strings.TrimSpace(input.ImageURL),
	}

	if it.Category == "" {
		return model.Item{}, item.ErrCategoryRequired
	}
	if it.Name == "" {
		return model.Item{}, item.ErrNameRequired
	}
	if it.Description == "" {
		return model.Item{}, item.ErrDescriptionRequired
	}

	dateAdded, err := dateutil.Canonical(input.DateAdded)
	if err != nil {
		return model.Item{}, item.ErrInvalidDateAdded
	}
	it.DateAdded = dateAdded

	if endDate := strings.TrimSpace(input.EndDate); endDate != "" {
		canonical, err := dateutil.Canonical(endDate)
		if err != nil {
			return model.Item{}, item.ErrInvalidEndDate
		}
		it.EndDate = canonical
	}

	return it, nil
}

// persist saves the store and converts a failure into a non-fatal
// warning string per the store error policy.
func (uc *implUseCase) persist(ctx context.Context) string {
	if err := uc.repo.Save(ctx); err != nil {
		uc.l.Warnf(ctx, "uc.persist items: %v", err)
		return err.Error()
	}
	return ""
}

func (uc *implUseCase) notify(ctx context.Context) {
	if uc.bus != nil {
		uc.bus.Publish(ctx, eventbus.Event{Topic: model.TopicItemsChanged})
	}
}
