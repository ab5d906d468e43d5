package http

import (
	"ebaylistingapp/internal/category"
	"ebaylistingapp/internal/model"
)

// --- Request DTOs ---

type saveReq struct {
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Days        string `json:"days"        binding:"required"`
}

func (r saveReq) toAddInput() category.AddInput {
	return category.AddInput{
		Name:        r.Name,
		Description: r.Description,
		Days:        r.Days,
	}
}

func (r saveReq) toUpdateInput(index int) category.UpdateInput {
	return category.UpdateInput{
		Index:       index,
		Name:        r.Name,
		Description: r.Description,
		Days:        r.Days,
	}
}

type listReq struct {
	Search string `form:"search"`
}

func (r listReq) toInput() category.ListInput {
	return category.ListInput{Search: r.Search}
}

// --- Response DTOs ---

type categoryResp struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Days        string `json:"days"`
}

func newCategoryResp(c model.Category) categoryResp {
	return categoryResp{
		Name:        c.Name,
		Description: c.Description,
		Days:        c.Days,
	}
}

type listResp struct {
	Categories []categoryResp `json:"categories"`
	Total      int            `json:"total"`
}

func (h *handler) newListResp(out category.ListOutput) listResp {
	categories := make([]categoryResp, len(out.Categories))
	for i, c := range out.Categories {
		categories[i] = newCategoryResp(c)
	}
	return listResp{Categories: categories, Total: out.Total}
}

type saveResp struct {
	Category categoryResp `json:"category"`
}

type updateResp struct {
	Category     categoryResp `json:"category"`
	ItemsRenamed int          `json:"items_renamed"`
}

type deleteResp struct {
	Removed bool `json:"removed"`
}
