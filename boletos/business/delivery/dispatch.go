package delivery

import (
	"context"
	"fmt"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.app/boletos/model"
	"encore.app/boletos/push"
)

// DispatchDueToday sends one push payload per (boleto, subscription) pair for
// every pending boleto due on the given day. Endpoints reported gone by the
// transport are pruned; any other delivery failure is logged and skipped so
// one bad endpoint never aborts the batch. No cross-run dedup state is kept:
// the caller schedules this at most once per day.
func (b *business) DispatchDueToday(ctx context.Context, today string) (*DispatchResult, error) {
	day, err := time.Parse(model.DueDateLayout, today)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid dispatch day"}
	}

	due, err := b.billRepo.ListDueToday(ctx, pgtype.Date{Time: day, Valid: true})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list boletos due today"}
	}

	result := &DispatchResult{Boletos: len(due)}
	subsByOwner := make(map[uuid.UUID][]*model.PushSubscription)

	for _, row := range due {
		ownerID := uuid.UUID(row.OwnerID.Bytes)

		subs, ok := subsByOwner[ownerID]
		if !ok {
			dbSubs, err := b.subRepo.ListSubscriptionsByOwner(ctx, row.OwnerID)
			if err != nil {
				rlog.Error("failed to list push subscriptions", "owner_id", ownerID, "error", err)
				continue
			}
			subs = make([]*model.PushSubscription, len(dbSubs))
			for i, s := range dbSubs {
				subs[i] = subscriptionFromDB(s)
			}
			subsByOwner[ownerID] = subs
		}

		amount := decimal.NewFromBigInt(row.Amount.Int, row.Amount.Exp)
		payload := push.Payload{
			Title: "Boleto Vence Hoje!",
			Body:  fmt.Sprintf("Sua conta \"%s\" vence hoje no valor de %s.", row.Title, model.FormatAmountBRL(amount)),
			URL:   "/",
		}

		kept := subs[:0]
		for _, sub := range subs {
			result.Attempted++

			sendErr := b.sender.Send(ctx, sub, payload)
			switch {
			case sendErr == nil:
				result.Delivered++
				kept = append(kept, sub)

			case push.IsGone(sendErr):
				if delErr := b.subRepo.DeleteSubscription(ctx, pgtype.UUID{Bytes: sub.ID, Valid: true}); delErr != nil {
					rlog.Error("failed to prune gone subscription", "subscription_id", sub.ID, "error", delErr)
					kept = append(kept, sub)
				} else {
					result.Pruned++
					rlog.Info("pruned gone push subscription", "subscription_id", sub.ID, "endpoint", sub.Endpoint)
				}

			default:
				result.Failed++
				kept = append(kept, sub)
				rlog.Error("push delivery failed", "subscription_id", sub.ID, "error", sendErr)
			}
		}
		subsByOwner[ownerID] = kept
	}

	rlog.Info("due-today push dispatch finished",
		"day", today,
		"boletos", result.Boletos,
		"attempted", result.Attempted,
		"delivered", result.Delivered,
		"pruned", result.Pruned,
		"failed", result.Failed,
	)
	return result, nil
}
