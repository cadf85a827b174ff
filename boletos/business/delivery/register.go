package delivery

import (
	"context"

	"encore.dev/beta/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.app/boletos/model"
	"encore.app/boletos/store/subscriptions"
)

// RegisterSubscription upserts a push endpoint for the owner, keyed by
// endpoint so re-subscribing the same browser updates rather than duplicates.
func (b *business) RegisterSubscription(ctx context.Context, ownerID uuid.UUID, endpoint, p256dh, auth string) (*model.PushSubscription, error) {
	row, err := b.subRepo.UpsertSubscription(ctx, subscriptions.UpsertSubscriptionParams{
		OwnerID:  pgtype.UUID{Bytes: ownerID, Valid: true},
		Endpoint: endpoint,
		P256dh:   p256dh,
		Auth:     auth,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to register push subscription"}
	}

	return subscriptionFromDB(row), nil
}

func subscriptionFromDB(row subscriptions.PushSubscription) *model.PushSubscription {
	return &model.PushSubscription{
		ID:        uuid.UUID(row.ID.Bytes),
		OwnerID:   uuid.UUID(row.OwnerID.Bytes),
		Endpoint:  row.Endpoint,
		P256dh:    row.P256dh,
		Auth:      row.Auth,
		CreatedAt: row.CreatedAt.Time,
	}
}
