// Package events defines the pub/sub topics the boletos service emits on:
// a row-level change feed for multi-client sync and a user-notification
// stream consumed by delivery surfaces.
package events

import (
	"context"

	"encore.dev/pubsub"
	"github.com/google/uuid"

	"encore.app/boletos/model"
)

type ChangeType string

const (
	ChangeInsert ChangeType = "insert"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

// BoletoChange is one row-level mutation on the boletos table. Delete events
// carry only Old; inserts carry only New. Delivery is at-least-once with no
// ordering guarantee across distinct boletos.
type BoletoChange struct {
	Type ChangeType     `json:"type"`
	New  *model.Boleto  `json:"new,omitempty"`
	Old  *model.Boleto  `json:"old,omitempty"`
}

var BoletoChanges = pubsub.NewTopic[*BoletoChange]("boleto-changes", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})

// PublishChange publishes one change record to the feed.
func PublishChange(ctx context.Context, ev *BoletoChange) error {
	_, err := BoletoChanges.Publish(ctx, ev)
	return err
}

// UserNotification is a user-visible alert routed to whatever surface the
// owner has open.
type UserNotification struct {
	OwnerID uuid.UUID `json:"owner_id"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	URL     string    `json:"url,omitempty"`
}

var Notifications = pubsub.NewTopic[*UserNotification]("user-notifications", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})
