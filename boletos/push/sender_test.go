package push

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryErrorGone(t *testing.T) {
	testCases := []struct {
		status int
		gone   bool
	}{
		{status: http.StatusNotFound, gone: true},
		{status: http.StatusGone, gone: true},
		{status: http.StatusBadRequest, gone: false},
		{status: http.StatusTooManyRequests, gone: false},
		{status: http.StatusInternalServerError, gone: false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("status_%d", tc.status), func(t *testing.T) {
			err := &DeliveryError{Endpoint: "https://push.example.com/x", StatusCode: tc.status}
			assert.Equal(t, tc.gone, err.Gone())
			assert.Equal(t, tc.gone, IsGone(err))
		})
	}
}

func TestIsGone_OtherErrors(t *testing.T) {
	assert.False(t, IsGone(assert.AnError))
	assert.False(t, IsGone(nil))
	// Wrapped delivery errors still classify.
	wrapped := fmt.Errorf("send push: %w", &DeliveryError{StatusCode: http.StatusGone})
	assert.True(t, IsGone(wrapped))
}
