package model

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription is a platform-issued delivery endpoint for one
// browser/device. Endpoints are unique: re-subscribing the same browser
// updates the existing row instead of duplicating it.
type PushSubscription struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Endpoint  string    `json:"endpoint"`
	P256dh    string    `json:"p256dh"`
	Auth      string    `json:"auth"`
	CreatedAt time.Time `json:"created_at"`
}
