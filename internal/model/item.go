package model

// Status is the lifecycle state of an item.
type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
)

// NormalizeStatus maps unknown or missing status values to active.
func NormalizeStatus(raw string) Status {
	if Status(raw) == StatusEnded {
		return StatusEnded
	}
	return StatusActive
}

// Item is a single listing. Category is a soft reference to a
// Category.Name — deleting a category does not cascade here.
// Date fields are stored canonically as YYYY-MM-DD; an empty EndDate
// means the item never expires on its own.
type Item struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	DateAdded   string `json:"date_added"`
	EndDate     string `json:"end_date"`
	ImageURL    string `json:"image_url"`
	Status      Status `json:"status"`
}
