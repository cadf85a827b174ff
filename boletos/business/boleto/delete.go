package boleto

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"

	"encore.app/boletos/events"
	"encore.app/boletos/store/bills"
)

// Delete removes a boleto permanently. The associated calendar entry is
// deleted best-effort after the row is gone: a calendar failure never undoes
// or blocks the deletion.
func (b *business) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	existing, err := b.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}

	affected, err := b.billRepo.DeleteBoleto(ctx, bills.DeleteBoletoParams{
		ID:      pgUUID(id),
		OwnerID: pgUUID(ownerID),
	})
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to delete boleto"}
	}
	if affected == 0 {
		return &errs.Error{Code: errs.NotFound, Message: "boleto not found"}
	}

	if existing.CalendarEventID != nil && b.calendar != nil {
		if calErr := b.calendar.DeleteEvent(ctx, *existing.CalendarEventID); calErr != nil {
			rlog.Error("calendar mirror delete failed", "boleto_id", id, "error", calErr)
		}
	}

	b.publishChange(ctx, &events.BoletoChange{Type: events.ChangeDelete, Old: existing})

	return nil
}
