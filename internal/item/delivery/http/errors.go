package http

import (
	"net/http"

	"ebaylistingapp/internal/item"
	pkgErrors "ebaylistingapp/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case item.ErrCategoryRequired,
		item.ErrNameRequired,
		item.ErrDescriptionRequired,
		item.ErrInvalidDateAdded,
		item.ErrInvalidEndDate,
		item.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case item.ErrItemNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "unable to process item request")
	}
}
