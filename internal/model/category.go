package model

// Category groups listings and carries a default listing duration.
// Days stays string-encoded because that is the persisted wire format.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Days        string `json:"days"`
}

// DefaultCategoryDays is applied when a loaded record has no usable
// duration.
const DefaultCategoryDays = "30"
