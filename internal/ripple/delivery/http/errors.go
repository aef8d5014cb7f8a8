package http

import (
	"errors"
	"net/http"

	"journal-ripples/internal/ripple"
	pkgErrors "journal-ripples/pkg/errors"
)

var (
	errInvalidQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	errInvalidBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errInvalidDate  = pkgErrors.NewHTTPError(http.StatusBadRequest, "dates must be YYYY-MM-DD")
	errMissingID    = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates ripple errors into HTTP errors from pkg/errors.
// A review of an item that is no longer pending is a conflict.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, ripple.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "ripple not found")
	case errors.Is(err, ripple.ErrSuggestedTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "suggested task not found")
	case errors.Is(err, ripple.ErrNotPending):
		return pkgErrors.NewHTTPError(http.StatusConflict, "already reviewed")
	case errors.Is(err, ripple.ErrEntryRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
