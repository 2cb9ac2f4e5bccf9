package http

import (
	"errors"
	"net/http"

	"smart-task-analyzer/internal/analyzer"
	pkgErrors "smart-task-analyzer/pkg/errors"
)

var errCircularDependency = pkgErrors.NewHTTPError(http.StatusBadRequest, analyzer.ErrCycleDetected.Error())

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analyzer.ErrCycleDetected):
		return errCircularDependency
	case errors.Is(err, analyzer.ErrMissingTasksParam),
		errors.Is(err, analyzer.ErrInvalidTasksJSON),
		errors.Is(err, analyzer.ErrInvalidWeights),
		errors.Is(err, analyzer.ErrInvalidToday),
		errors.Is(err, analyzer.ErrUnknownStrategy):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// mapRequestError keeps binding and decoding failures as plain 400s.
func (h *handler) mapRequestError(err error) error {
	if mapped := h.mapError(err); mapped != pkgErrors.ErrInternalServerError {
		return mapped
	}
	return pkgErrors.NewBadRequest("%v", err)
}
