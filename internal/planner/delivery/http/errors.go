package http

import (
	"errors"
	"net/http"

	"journal-ripples/internal/planner"
	pkgErrors "journal-ripples/pkg/errors"
)

var (
	errInvalidQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	errInvalidDate  = pkgErrors.NewHTTPError(http.StatusBadRequest, "dates must be YYYY-MM-DD")
)

// mapError translates planner errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, planner.ErrInvalidRange):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "from must not be after to")
	case errors.Is(err, planner.ErrInvalidTitle),
		errors.Is(err, planner.ErrInvalidDate),
		errors.Is(err, planner.ErrInvalidStartTime),
		errors.Is(err, planner.ErrInvalidRecurrence):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
