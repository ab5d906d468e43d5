package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	categoryHTTP "ebaylistingapp/internal/category/delivery/http"
	categoryUC "ebaylistingapp/internal/category/usecase"
	itemHTTP "ebaylistingapp/internal/item/delivery/http"
	itemUC "ebaylistingapp/internal/item/usecase"
	settingsHTTP "ebaylistingapp/internal/settings/delivery/http"
	settingsUC "ebaylistingapp/internal/settings/usecase"
)

// Domain wiring follows the same three steps everywhere:
//  1. UseCase:      uc := domainUC.New(repo, ...)
//  2. HTTP Handler: h := domainHTTP.New(srv.l, uc)
//  3. Routes:       domainHTTP.RegisterRoutes(api, h)

func (srv *HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup) {
	uc := itemUC.New(srv.itemRepo, srv.bus, srv.l)
	h := itemHTTP.New(srv.l, uc)
	itemHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Item domain registered")
}

func (srv *HTTPServer) setupCategoryDomain(ctx context.Context, api *gin.RouterGroup) {
	// The item repository doubles as the rename-cascade target so a
	// category rename rewrites the items that reference it.
	uc := categoryUC.New(srv.categoryRepo, srv.itemRepo, srv.bus, srv.l)
	h := categoryHTTP.New(srv.l, uc)
	categoryHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Category domain registered")
}

func (srv *HTTPServer) setupSettingsDomain(ctx context.Context, api *gin.RouterGroup) {
	uc := settingsUC.New(ctx, srv.settingsRepo, srv.bus, srv.l)
	h := settingsHTTP.New(srv.l, uc)
	settingsHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Settings domain registered")
}
