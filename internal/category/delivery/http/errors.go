package http

import (
	"net/http"

	"ebaylistingapp/internal/category"
	pkgErrors "ebaylistingapp/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case category.ErrInvalidName, category.ErrInvalidDays:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case category.ErrCategoryNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "unable to process category request")
	}
}
