package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	categoryRepo "ebaylistingapp/internal/category/repository"
	"ebaylistingapp/internal/eventbus"
	itemRepo "ebaylistingapp/internal/item/repository"
	settingsRepo "ebaylistingapp/internal/settings/repository"
	"ebaylistingapp/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domain dependencies
	bus             *eventbus.Bus
	categoryRepo    categoryRepo.Repository
	itemRepo        itemRepo.Repository
	settingsRepo    settingsRepo.Repository
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Bus             *eventbus.Bus
	CategoryRepo    categoryRepo.Repository
	ItemRepo        itemRepo.Repository
	SettingsRepo    settingsRepo.Repository
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		bus:             cfg.Bus,
		categoryRepo:    cfg.CategoryRepo,
		itemRepo:        cfg.ItemRepo,
		settingsRepo:    cfg.SettingsRepo,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.categoryRepo == nil || srv.itemRepo == nil || srv.settingsRepo == nil {
		return errors.New("all repositories are required")
	}
	return nil
}
