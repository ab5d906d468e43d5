package item

import "ebaylistingapp/internal/model"

// List ordering modes, matching the dashboard's "Newest added" /
// "Oldest added" selector.
const (
	OrderNewest = "newest"
	OrderOldest = "oldest"
)

// --- UseCase Inputs ---

// AddInput carries the fields of a new item. ID is assigned by the
// store. Dates are accepted as YYYY-MM-DD or DD-MM-YYYY and stored
// canonically.
type AddInput struct {
	Category    string
	Name        string
	Description string
	Notes       string
	DateAdded   string
	EndDate     string
	ImageURL    string
}

// UpdateInput replaces the full record matching ID. Restore flips an
// ended item back to active as part of the same save (the "edit &
// relist" flow).
type UpdateInput struct {
	ID          string
	Category    string
	Name        string
	Description string
	Notes       string
	DateAdded   string
	EndDate     string
	ImageURL    string
	Restore     bool
}

// ListInput filters and orders the item list.
type ListInput struct {
	// Status filters to active or ended; empty means all.
	Status string
	// Search is a case-insensitive substring matched against name,
	// description, notes, category and the display form of both dates.
	Search string
	// Order is OrderNewest (default) or OrderOldest, keyed on date_added.
	Order string
}

// --- UseCase Outputs ---

// Warning fields carry the non-fatal persistence message when a write
// to the backing file failed; the in-memory mutation still applied.

type AddOutput struct {
	Item    model.Item
	Warning string
}

type UpdateOutput struct {
	Item    model.Item
	Warning string
}

type DetailOutput struct {
	Item model.Item
}

type ListOutput struct {
	Items   []model.Item
	Total   int
	Warning string
}

type StatusOutput struct {
	Item    model.Item
	Warning string
}

type DeleteOutput struct {
	Removed bool
	Warning string
}
