package category

import "ebaylistingapp/internal/model"

// --- UseCase Inputs ---

// AddInput carries the fields of a new category.
type AddInput struct {
	Name        string
	Description string
	Days        string
}

// UpdateInput replaces the category at Index. Categories are addressed
// by position, matching the persisted order.
type UpdateInput struct {
	Index       int
	Name        string
	Description string
	Days        string
}

// ListInput filters the category list.
type ListInput struct {
	Search string
}

// --- UseCase Outputs ---

// Warning fields carry the non-fatal persistence message when a write
// to the backing file failed; the in-memory mutation still applied.

type AddOutput struct {
	Category model.Category
	Warning  string
}

type UpdateOutput struct {
	Category model.Category
	// ItemsRenamed counts the items rewritten when the category name
	// changed (soft references are cascaded by hand).
	ItemsRenamed int
	Warning      string
}

type RemoveOutput struct {
	Removed bool
	Warning string
}

type ListOutput struct {
	Categories []model.Category
	Total      int
}
