package item

import "errors"

// Domain-specific errors for the item package.
var (
	ErrItemNotFound        = errors.New("item not found")
	ErrCategoryRequired    = errors.New("item category is required")
	ErrNameRequired        = errors.New("item name is required")
	ErrDescriptionRequired = errors.New("item description is required")
	ErrInvalidDateAdded    = errors.New("date added must be a valid date")
	ErrInvalidEndDate      = errors.New("end date must be a valid date")
	ErrInvalidStatus       = errors.New("status must be active or ended")
)
