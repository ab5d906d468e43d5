package http

import (
	"github.com/gin-gonic/gin"

	"ebaylistingapp/internal/item"
	"ebaylistingapp/pkg/response"
)

// List godoc
// @Summary     List items
// @Description Returns items filtered by status and search, ordered by date added. Expired active items are ended before the list is built.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       status query string false "Filter by lifecycle status" Enums(active, ended)
// @Param       search query string false "Substring match over name, description, notes, category and dates"
// @Param       order  query string false "Sort order by date added"   Enums(newest, oldest)
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/items [GET]
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

	resp := h.newListResp(output)
	if output.Warning != "" {
		response.OKWithWarning(c, resp, output.Warning)
		return
	}
	response.OK(c, resp)
}

// Detail godoc
// @Summary     Get an item
// @Description Returns the item with the given id.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id path string true "Item id"
// @Success     200 {object} saveResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		if err != item.ErrItemNotFound {
			h.l.Errorf(ctx, "uc.Detail: %v", err)
		}
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, saveResp{Item: newItemResp(output.Item)})
}

// Create godoc
// @Summary     Create an item
// @Description Adds a new listing. Dates are accepted as YYYY-MM-DD or DD-MM-YYYY.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body saveReq true "Item data"
// @Success     200 {object} saveResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Router      /api/v1/items [POST]
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

	resp := saveResp{Item: newItemResp(output.Item)}
	if output.Warning != "" {
		response.OKWithWarning(c, resp, output.Warning)
		return
	}
	response.OK(c, resp)
}

// Update godoc
// @Summary     Update an item
// @Description Replaces the item with the given id. Setting restore=true on an ended item makes it active again.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Item id"
// @Param       body body saveReq true "Item data"
// @Success     200 {object} saveResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processSaveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toUpdateInput(id))
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := saveResp{Item: newItemResp(output.Item)}
	if output.Warning != "" {
		response.OKWithWarning(c, resp, output.Warning)
		return
	}
	response.OK(c, resp)
}

// Delete godoc
// @Summary     Delete an item
// @Description Removes the item with the given id. An unknown id is a no-op.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id path string true "Item id"
// @Success     200 {object} deleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Delete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
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

// End godoc
// @Summary     End an item
// @Description Marks the item ended regardless of its end date.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id path string true "Item id"
// @Success     200 {object} saveResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/items/{id}/end [POST]
func (h *handler) End(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.End(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.End: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := saveResp{Item: newItemResp(output.Item)}
	if output.Warning != "" {
		response.OKWithWarning(c, resp, output.Warning)
		return
	}
	response.OK(c, resp)
}

// Restore godoc
// @Summary     Restore an item
// @Description Marks the item active again. An item whose end date has already passed is re-ended on the next list.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id path string true "Item id"
// @Success     200 {object} saveResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/items/{id}/restore [POST]
func (h *handler) Restore(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Restore(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Restore: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := saveResp{Item: newItemResp(output.Item)}
	if output.Warning != "" {
		response.OKWithWarning(c, resp, output.Warning)
		return
	}
	response.OK(c, resp)
}
