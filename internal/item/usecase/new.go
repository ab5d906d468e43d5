package usecase

import (
	"time"

	"ebaylistingapp/internal/eventbus"
	"ebaylistingapp/internal/item/repository"
	"ebaylistingapp/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo repository.Repository
	bus  *eventbus.Bus
	l    log.Logger
	// now is swappable in tests; lifecycle evaluation on reads uses it.
	now func() time.Time
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, bus *eventbus.Bus, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		bus:  bus,
		l:    l,
		now:  time.Now,
	}
}

// NewWithClock creates a UseCase whose "today" comes from the given
// clock. Tests use it to pin lifecycle evaluation to a fixed day.
func NewWithClock(repo repository.Repository, bus *eventbus.Bus, l log.Logger, now func() time.Time) *implUseCase {
	uc := New(repo, bus, l)
	uc.now = now
	return uc
}
