// Package auth verifies bearer tokens for the boletos service. Verification
// is delegated to the identity provider's user endpoint; this package only
// maps the outcome onto Encore's auth contract.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	encoreauth "encore.dev/beta/auth"
	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

var secrets struct {
	IdentityURL    string // base URL of the identity provider
	IdentityAPIKey string
}

// Data is the authenticated user attached to each request.
type Data struct {
	Email string `json:"email"`
}

var httpClient = &http.Client{Timeout: 10 * time.Second}

//encore:authhandler
func AuthHandler(ctx context.Context, token string) (encoreauth.UID, *Data, error) {
	if token == "" {
		return "", nil, &errs.Error{Code: errs.Unauthenticated, Message: "missing token"}
	}

	user, err := verifyToken(ctx, token)
	if err != nil {
		rlog.Debug("token verification failed", "error", err)
		return "", nil, &errs.Error{Code: errs.Unauthenticated, Message: "invalid token"}
	}

	return encoreauth.UID(user.ID), &Data{Email: user.Email}, nil
}

type identityUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// verifyToken asks the identity provider who the token belongs to. Any
// non-200 answer means the token is not usable, regardless of the reason.
func verifyToken(ctx context.Context, token string) (*identityUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, secrets.IdentityURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", secrets.IdentityAPIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("verify token: status %d", resp.StatusCode)
	}

	var user identityUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("verify token: empty user id")
	}
	return &user, nil
}
