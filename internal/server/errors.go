// Package server provides the HTTP REST API for the interview coach.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/interview-coach/internal/confidence"
	"github.com/jonathan/interview-coach/internal/interview"
)

// HTTPStatus returns the appropriate HTTP status code for an error from the
// evaluation core. Upstream AI failures never reach this mapping; the
// resolver absorbs them.
func HTTPStatus(err error) int {
	var (
		invalidInput  *interview.ErrInvalidInput
		invalidPct    *confidence.ErrInvalidPercentage
		notFound      *interview.ErrNotFound
		forbidden     *interview.ErrForbidden
		answered      *interview.ErrAlreadyAnswered
		completed     *interview.ErrAlreadyCompleted
		quotaExceeded *interview.ErrQuotaExceeded
		incomplete    *interview.ErrIncompleteSession
	)

	switch {
	case errors.As(err, &invalidInput), errors.As(err, &invalidPct):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &answered), errors.As(err, &completed):
		return http.StatusConflict
	case errors.As(err, &quotaExceeded):
		return http.StatusPaymentRequired
	case errors.As(err, &incomplete):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
