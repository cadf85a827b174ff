package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFriendlyMessage(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "duplicate_registration",
			raw:      "User already registered",
			expected: "Este e-mail já está cadastrado.",
		},
		{
			name:     "bad_credentials",
			raw:      "Invalid login credentials",
			expected: "E-mail ou senha incorretos.",
		},
		{
			name:     "rate_limited",
			raw:      "email rate limit exceeded",
			expected: "Muitas tentativas. Tente novamente mais tarde.",
		},
		{
			name:     "too_many_requests",
			raw:      "too many requests",
			expected: "Muitas tentativas. Tente novamente mais tarde.",
		},
		{
			name:     "unknown_passes_through",
			raw:      "something unexpected happened",
			expected: "something unexpected happened",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FriendlyMessage(tc.raw))
		})
	}
}
