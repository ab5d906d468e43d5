package usecase

import (
	"context"
	"time"

	"ebaylistingapp/internal/model"
	"ebaylistingapp/pkg/dateutil"
)

// EvaluateLifecycle ends every active item whose end date is on or
// before today. Items already ended are never touched, so a manual
// restore of an item with a future end date sticks. Persists and
// notifies only when at least one item changed, which keeps the pass
// idempotent.
func (uc *implUseCase) EvaluateLifecycle(ctx context.Context, today time.Time) (bool, error) {
	changed := false
	for _, it := range uc.repo.List(ctx) {
		if it.Status != model.StatusActive || it.EndDate == "" {
			continue
		}
		endDate, err := dateutil.Parse(it.EndDate)
		if err != nil {
			// Unparseable end dates never expire an item.
			continue
		}
		if !dateutil.OnOrBefore(endDate, today) {
			continue
		}
		if uc.repo.SetStatus(ctx, it.ID, model.StatusEnded) {
			uc.l.Infof(ctx, "uc.EvaluateLifecycle ended item %s (end date %s)", it.ID, it.EndDate)
			changed = true
		}
	}

	if !changed {
		return false, nil
	}

	if err := uc.repo.Save(ctx); err != nil {
		uc.l.Warnf(ctx, "uc.EvaluateLifecycle save: %v", err)
		uc.notify(ctx)
		return true, err
	}
	uc.notify(ctx)
	return true, nil
}
