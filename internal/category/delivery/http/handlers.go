package http

import (
	"github.com/gin-gonic/gin"

	"ebaylistingapp/pkg/response"
)

// List godoc
// @Summary     List categories
// @Description Returns all categories, optionally filtered by a search string.
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       search query string false "Substring match over name and description"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/categories [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a category
// @Description Adds a new category with a name, description and listing duration in days.
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       body body saveReq true "Category data"
// @Success     200 {object} saveResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Router      /api/v1/categories [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Add(ctx, req.toAddInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := saveResp{Category: newCategoryResp(output.Category)}
	if output.Warning != "" {
		response.OKWithWarning(c, resp, output.Warning)
		return
	}
	response.OK(c, resp)
}

// Update godoc
// @Summary     Update a category
// @Description Replaces the category at the given position. Renaming rewrites items that reference the old name.
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       index path int     true "Category position"
// @Param       body  body saveReq true "Category data"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/categories/{index} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	index, err := h.processIndexParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processSaveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toUpdateInput(index))
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := updateResp{
		Category:     newCategoryResp(output.Category),
		ItemsRenamed: output.ItemsRenamed,
	}
	if output.Warning != "" {
		response.OKWithWarning(c, resp, output.Warning)
		return
	}
	response.OK(c, resp)
}

// Delete godoc
// @Summary     Delete a category
// @Description Removes the category at the given position. Out-of-range is a no-op.
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       index path int true "Category position"
// @Success     200 {object} deleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/categories/{index} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	index, err := h.processIndexParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Remove(ctx, index)
	if err != nil {
		h.l.Errorf(ctx, "uc.Remove: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := deleteResp{Removed: output.Removed}
	if output.Warning != "" {
		response.OKWithWarning(c, resp, output.Warning)
		return
	}
	response.OK(c, resp)
}
