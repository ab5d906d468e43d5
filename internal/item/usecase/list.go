package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"ebaylistingapp/internal/item"
	"ebaylistingapp/internal/model"
	"ebaylistingapp/pkg/dateutil"
)

// List runs a lifecycle pass, then filters by status and search and
// orders by date_added. A failed lifecycle save is surfaced as a
// warning rather than failing the read.
func (uc *implUseCase) List(ctx context.Context, input item.ListInput) (item.ListOutput, error) {
	var warning string
	if _, err := uc.EvaluateLifecycle(ctx, uc.now()); err != nil {
		warning = err.Error()
	}

	items := uc.repo.List(ctx)

	filtered := make([]model.Item, 0, len(items))
	for _, it := range items {
		if input.Status != "" && string(it.Status) != input.Status {
			continue
		}
		if !matchesSearch(it, input.Search) {
			continue
		}
		filtered = append(filtered, it)
	}

	sortByDateAdded(filtered, input.Order)

	return item.ListOutput{
		Items:   filtered,
		Total:   len(filtered),
		Warning: warning,
	}, nil
}

// matchesSearch reports whether the item matches a case-insensitive
// substring search over name, description, notes, category and the
// display form of both dates (so users can search "25-12" the way the
// list renders it).
func matchesSearch(it model.Item, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	haystacks := []string{
		it.Name,
		it.Description,
		it.Notes,
		it.Category,
		dateutil.Display(it.DateAdded),
		dateutil.Display(it.EndDate),
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), search) {
			return true
		}
	}
	return false
}

// sortByDateAdded orders items by their date_added field, newest first
// by default. Items with unparseable dates sort after dated ones. The
// sort is stable so equal dates keep their stored order.
func sortByDateAdded(items []model.Item, order string) {
	oldest := order == item.OrderOldest

	sort.SliceStable(items, func(i, j int) bool {
		ti, okI := parseDate(items[i].DateAdded)
		tj, okJ := parseDate(items[j].DateAdded)
		if okI != okJ {
			return okI
		}
		if !okI {
			return false
		}
		if oldest {
			return ti.Before(tj)
		}
		return ti.After(tj)
	})
}

func parseDate(value string) (time.Time, bool) {
	t, err := dateutil.Parse(value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
