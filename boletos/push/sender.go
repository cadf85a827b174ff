// Package push delivers web-push payloads to registered browser endpoints
// using VAPID-signed requests.
package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"encore.app/boletos/model"
)

// Payload is the JSON message a service worker renders as a notification.
type Payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// DeliveryError is a push transport failure carrying the endpoint's HTTP
// status. A gone endpoint (404/410) means the subscription should be pruned.
type DeliveryError struct {
	Endpoint   string
	StatusCode int
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("push delivery to %s failed with status %d", e.Endpoint, e.StatusCode)
}

// Gone reports whether the endpoint no longer exists.
func (e *DeliveryError) Gone() bool {
	return e.StatusCode == http.StatusNotFound || e.StatusCode == http.StatusGone
}

// IsGone reports whether err signals a dead endpoint.
func IsGone(err error) bool {
	var de *DeliveryError
	return errors.As(err, &de) && de.Gone()
}

// Sender sends one payload to one subscription.
type Sender interface {
	Send(ctx context.Context, sub *model.PushSubscription, payload Payload) error
}

// WebPush is the production Sender.
type WebPush struct {
	subscriber      string
	vapidPublicKey  string
	vapidPrivateKey string
}

func NewWebPush(subscriber, vapidPublicKey, vapidPrivateKey string) *WebPush {
	return &WebPush{
		subscriber:      subscriber,
		vapidPublicKey:  vapidPublicKey,
		vapidPrivateKey: vapidPrivateKey,
	}
}

func (w *WebPush) Send(ctx context.Context, sub *model.PushSubscription, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal push payload: %w", err)
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		Subscriber:      w.subscriber,
		VAPIDPublicKey:  w.vapidPublicKey,
		VAPIDPrivateKey: w.vapidPrivateKey,
		TTL:             3600,
	})
	if err != nil {
		return fmt.Errorf("send push to %s: %w", sub.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &DeliveryError{Endpoint: sub.Endpoint, StatusCode: resp.StatusCode}
	}
	return nil
}
