package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-coach/internal/confidence"
	"github.com/jonathan/interview-coach/internal/interview"
)

func TestHTTPStatus_Mapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&interview.ErrInvalidInput{Field: "answer", Message: "required"}, http.StatusBadRequest},
		{&confidence.ErrInvalidPercentage{Value: 150}, http.StatusBadRequest},
		{&interview.ErrNotFound{Kind: "session"}, http.StatusNotFound},
		{&interview.ErrForbidden{}, http.StatusForbidden},
		{&interview.ErrAlreadyAnswered{}, http.StatusConflict},
		{&interview.ErrAlreadyCompleted{}, http.StatusConflict},
		{&interview.ErrQuotaExceeded{Count: 3, Max: 3}, http.StatusPaymentRequired},
		{&interview.ErrIncompleteSession{}, http.StatusUnprocessableEntity},
		{fmt.Errorf("database timeout"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), "error %v", tc.err)
	}
}

func TestHTTPStatus_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", &interview.ErrQuotaExceeded{Count: 3, Max: 3})
	assert.Equal(t, http.StatusPaymentRequired, HTTPStatus(wrapped))
}
