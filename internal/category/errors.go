package category

import "errors"

// Domain-specific errors for the category package.
var (
	ErrInvalidName      = errors.New("category name is required")
	ErrInvalidDays      = errors.New("category duration must be a positive whole number of days")
	ErrCategoryNotFound = errors.New("category not found")
)
