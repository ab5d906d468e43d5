package http

import (
	"ebaylistingapp/internal/settings"
	"ebaylistingapp/pkg/log"
)

type handler struct {
	l  log.Logger
	uc settings.UseCase
}

// New creates a new HTTP handler for application settings.
func New(l log.Logger, uc settings.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
