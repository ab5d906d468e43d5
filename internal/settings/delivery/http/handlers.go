package http

import (
	"github.com/gin-gonic/gin"

	"ebaylistingapp/pkg/response"
)

// Detail godoc
// @Summary     Get settings
// @Description Returns the current application settings. first_run is true until a storage path has been chosen.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Success     200 {object} detailResp
// @Router      /api/v1/settings [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := detailResp{
		Settings: newSettingsResp(output.Settings),
		FirstRun: output.FirstRun,
	}
	if output.Warning != "" {
		response.OKWithWarning(c, resp, output.Warning)
		return
	}
	response.OK(c, resp)
}

// Update godoc
// @Summary     Update settings
// @Description Persists the fullscreen preference.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body updateReq true "Settings data"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/settings [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := updateResp{Settings: newSettingsResp(output.Settings)}
	if output.Warning != "" {
		response.OKWithWarning(c, resp, output.Warning)
		return
	}
	response.OK(c, resp)
}

// SetStoragePath godoc
// @Summary     Choose the storage location
// @Description Resolves and creates the storage directory under the given base path, then re-points both stores at it.
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body storagePathReq true "Base path"
// @Success     200 {object} storagePathResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Directory could not be created"
// @Router      /api/v1/settings/storage-path [POST]
func (h *handler) SetStoragePath(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStoragePathReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SetStoragePath(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetStoragePath: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := storagePathResp{
		Settings:    newSettingsResp(output.Settings),
		StoragePath: output.StoragePath,
	}
	if output.Warning != "" {
		response.OKWithWarning(c, resp, output.Warning)
		return
	}
	response.OK(c, resp)
}
