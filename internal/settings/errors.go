package settings

import "errors"

var (
	ErrInvalidBasePath = errors.New("base path must not be empty")
	ErrCreateStorage   = errors.New("unable to create the storage directory")
)
