package http

import (
	"errors"
	"net/http"

	"ebaylistingapp/internal/settings"
	pkgErrors "ebaylistingapp/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, settings.ErrInvalidBasePath):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, settings.ErrCreateStorage):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "unable to process settings request")
	}
}
