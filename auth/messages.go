package auth

import "strings"

// FriendlyMessage translates raw identity-provider errors into the fixed
// user-facing pt-BR messages. Unrecognized errors pass through unchanged so
// genuinely new failures stay diagnosable.
func FriendlyMessage(raw string) string {
	switch {
	case strings.Contains(raw, "already registered"):
		return "Este e-mail já está cadastrado."
	case strings.Contains(raw, "Invalid login credentials"):
		return "E-mail ou senha incorretos."
	case strings.Contains(raw, "rate limit"), strings.Contains(raw, "too many requests"):
		return "Muitas tentativas. Tente novamente mais tarde."
	default:
		return raw
	}
}
