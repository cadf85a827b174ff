package idempotency

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.dev"
	"encore.dev/middleware"
)

// createMiddlewareRequest creates a proper middleware.Request for testing
func createMiddlewareRequest(ctx context.Context, path string, headers http.Header, payload interface{}) middleware.Request {
	encoreReq := &encore.Request{
		Path:    path,
		Headers: headers,
		Payload: payload,
	}
	return middleware.NewRequest(ctx, encoreReq)
}

func TestExtractKey(t *testing.T) {
	testCases := []struct {
		name          string
		headers       http.Header
		expectedKey   string
		expectedError string
	}{
		{
			name:        "valid_key",
			headers:     http.Header{IdempotencyHeader: []string{"boleto-key-123"}},
			expectedKey: "boleto-key-123",
		},
		{
			name:        "key_is_trimmed",
			headers:     http.Header{IdempotencyHeader: []string{"  boleto-key-123  "}},
			expectedKey: "boleto-key-123",
		},
		{
			name:          "missing_header",
			headers:       http.Header{},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "empty_header_value",
			headers:       http.Header{IdempotencyHeader: []string{""}},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "whitespace_only_header",
			headers:       http.Header{IdempotencyHeader: []string{"   "}},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:        "multiple_header_values_takes_first",
			headers:     http.Header{IdempotencyHeader: []string{"first-key", "second-key"}},
			expectedKey: "first-key",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := createMiddlewareRequest(context.Background(), "/v1/boletos", tc.headers, nil)

			key, err := extractKey(req)

			if tc.expectedError != "" {
				assert.NotNil(t, err, "Expected an error")
				if err != nil {
					assert.Contains(t, err.Error(), tc.expectedError)
				}
				assert.Empty(t, key)
			} else {
				assert.Nil(t, err, "Expected no error")
				assert.Equal(t, tc.expectedKey, key)
			}
		})
	}
}

func TestHashPayload(t *testing.T) {
	req := createMiddlewareRequest(context.Background(), "/v1/boletos", http.Header{},
		map[string]interface{}{"title": "Internet", "amount": "99.90"})

	first := hashPayload(req)
	assert.Len(t, first, 64)
	assert.Regexp(t, "^[a-f0-9]{64}$", first)

	// Deterministic for the same payload.
	assert.Equal(t, first, hashPayload(req))

	other := createMiddlewareRequest(context.Background(), "/v1/boletos", http.Header{},
		map[string]interface{}{"title": "Internet", "amount": "100.00"})
	assert.NotEqual(t, first, hashPayload(other))

	// Nil payload disables conflict detection instead of erroring.
	empty := createMiddlewareRequest(context.Background(), "/v1/boletos", http.Header{}, nil)
	assert.Empty(t, hashPayload(empty))
}

func TestIdempotencyMiddleware_MissingKey(t *testing.T) {
	req := createMiddlewareRequest(context.Background(), "/v1/boletos", http.Header{},
		map[string]interface{}{"title": "Internet"})

	nextCalled := false
	next := func(req middleware.Request) middleware.Response {
		nextCalled = true
		return middleware.Response{
			Payload: map[string]interface{}{"id": "123"},
		}
	}

	response := IdempotencyMiddleware(req, next)

	assert.NotNil(t, response.Err, "Expected error for missing idempotency key")
	if response.Err != nil {
		assert.Contains(t, response.Err.Error(), "X-Idempotency-Key header is required")
	}
	assert.False(t, nextCalled, "Next function should not be called when key is missing")
	assert.Nil(t, response.Payload, "Response payload should be nil on error")
}
