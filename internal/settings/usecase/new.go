package usecase

import (
	"context"

	"ebaylistingapp/internal/eventbus"
	"ebaylistingapp/internal/settings/repository"
	"ebaylistingapp/pkg/log"
)

// implUseCase is the private implementation of settings.UseCase.
type implUseCase struct {
	repo repository.Repository
	bus  *eventbus.Bus
	l    log.Logger
	// loadWarning survives a bad settings file so Detail can tell the
	// caller that defaults are in effect. Cleared on a successful save.
	loadWarning string
}

// New creates a new settings UseCase implementation and loads the
// settings file. A malformed file is non-fatal: defaults apply and the
// warning is carried on Detail responses.
func New(ctx context.Context, repo repository.Repository, bus *eventbus.Bus, l log.Logger) *implUseCase {
	uc := &implUseCase{
		repo: repo,
		bus:  bus,
		l:    l,
	}
	if err := repo.Load(ctx); err != nil {
		uc.loadWarning = err.Error()
	}
	return uc
}
