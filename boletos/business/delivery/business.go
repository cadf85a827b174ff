package delivery

import (
	"context"

	"github.com/google/uuid"

	"encore.app/boletos/model"
	"encore.app/boletos/push"
	"encore.app/boletos/store/bills"
	"encore.app/boletos/store/subscriptions"
)

type Business interface {
	RegisterSubscription(ctx context.Context, ownerID uuid.UUID, endpoint, p256dh, auth string) (*model.PushSubscription, error)
	DispatchDueToday(ctx context.Context, today string) (*DispatchResult, error)
}

// DispatchResult summarizes one dispatch run.
type DispatchResult struct {
	Boletos   int `json:"boletos"`
	Attempted int `json:"attempted"`
	Delivered int `json:"delivered"`
	Pruned    int `json:"pruned"`
	Failed    int `json:"failed"`
}

type business struct {
	billRepo bills.Querier
	subRepo  subscriptions.Querier
	sender   push.Sender
}

func NewBusiness(billRepo bills.Querier, subRepo subscriptions.Querier, sender push.Sender) Business {
	return &business{
		billRepo: billRepo,
		subRepo:  subRepo,
		sender:   sender,
	}
}
