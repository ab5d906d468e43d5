package usecase

import (
	"context"

	"ebaylistingapp/internal/category/repository"
	"ebaylistingapp/internal/eventbus"
	"ebaylistingapp/pkg/log"
)

// ItemCascader is the slice of the item store the category domain needs
// to keep soft references consistent when a category is renamed.
type ItemCascader interface {
	RenameCategory(ctx context.Context, oldName, newName string) int
	Save(ctx context.Context) error
}

// implUseCase is the private implementation of category.UseCase.
type implUseCase struct {
	repo  repository.Repository
	items ItemCascader
	bus   *eventbus.Bus
	l     log.Logger
}

// New creates a new category UseCase implementation. items may be nil
// when no cascade target exists (tests).
func New(repo repository.Repository, items ItemCascader, bus *eventbus.Bus, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		items: items,
		bus:   bus,
		l:     l,
	}
}
