package boletos

import (
	"context"

	"github.com/google/uuid"

	"encore.app/boletos/events"
)

// topicNotifier routes user-visible alerts onto the notifications topic.
// Publishing happens off the caller's goroutine: both the scan loop and the
// realtime handlers must never block on transport.
type topicNotifier struct{}

func (topicNotifier) Notify(ctx context.Context, ownerID uuid.UUID, title, body string) {
	msg := &events.UserNotification{
		OwnerID: ownerID,
		Title:   title,
		Body:    body,
		URL:     "/",
	}
	runAsync("publish-user-notification", func(ctx context.Context) error {
		_, err := events.Notifications.Publish(ctx, msg)
		return err
	})
}
