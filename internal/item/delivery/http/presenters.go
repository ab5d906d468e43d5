package http

import (
	"ebaylistingapp/internal/item"
	"ebaylistingapp/internal/model"
	"ebaylistingapp/pkg/dateutil"
)

// --- Request DTOs ---

type saveReq struct {
	Category    string `json:"category"    binding:"required,min=1,max=255"`
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"required,max=2000"`
	Notes       string `json:"notes"       binding:"max=2000"`
	DateAdded   string `json:"date_added"  binding:"required"`
	EndDate     string `json:"end_date"`
	ImageURL    string `json:"image_url"   binding:"max=2048"`
	Restore     bool   `json:"restore"`
}

func (r saveReq) toAddInput() item.AddInput {
	return item.AddInput{
		Category:    r.Category,
		Name:        r.Name,
		Description: r.Description,
		Notes:       r.Notes,
		DateAdded:   r.DateAdded,
		EndDate:     r.EndDate,
		ImageURL:    r.ImageURL,
	}
}

func (r saveReq) toUpdateInput(id string) item.UpdateInput {
	return item.UpdateInput{
		ID:          id,
		Category:    r.Category,
		Name:        r.Name,
		Description: r.Description,
		Notes:       r.Notes,
		DateAdded:   r.DateAdded,
		EndDate:     r.EndDate,
		ImageURL:    r.ImageURL,
		Restore:     r.Restore,
	}
}

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=active ended"`
	Search string `form:"search"`
	Order  string `form:"order"  binding:"omitempty,oneof=newest oldest"`
}

func (r listReq) toInput() item.ListInput {
	return item.ListInput{
		Status: r.Status,
		Search: r.Search,
		Order:  r.Order,
	}
}

// --- Response DTOs ---

// itemResp mirrors the stored record plus the display form of both
// dates, so clients render them without re-deriving the format.
type itemResp struct {
	ID               string `json:"id"`
	Category         string `json:"category"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Notes            string `json:"notes"`
	DateAdded        string `json:"date_added"`
	DateAddedDisplay string `json:"date_added_display"`
	EndDate          string `json:"end_date"`
	EndDateDisplay   string `json:"end_date_display"`
	ImageURL         string `json:"image_url"`
	Status           string `json:"status"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:               it.ID,
		Category:         it.Category,
		Name:             it.Name,
		Description:      it.Description,
		Notes:            it.Notes,
		DateAdded:        it.DateAdded,
		DateAddedDisplay: dateutil.Display(it.DateAdded),
		EndDate:          it.EndDate,
		EndDateDisplay:   dateutil.Display(it.EndDate),
		ImageURL:         it.ImageURL,
		Status:           string(it.Status),
	}
}

type listResp struct {
	Items []itemResp `json:"items"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out item.ListOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return listResp{Items: items, Total: out.Total}
}

type saveResp struct {
	Item itemResp `json:"item"`
}

type deleteResp struct {
	Removed bool `json:"removed"`
}
