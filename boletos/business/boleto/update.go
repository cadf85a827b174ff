package boleto

import (
	"context"
	"errors"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.app/boletos/events"
	"encore.app/boletos/model"
	"encore.app/boletos/store/bills"
)

// Update rewrites a boleto's editable fields, keeps the calendar mirror in
// step best-effort, and emits an update event carrying both records.
func (b *business) Update(ctx context.Context, ownerID uuid.UUID, in *model.Boleto) (*model.Boleto, error) {
	existing, err := b.Get(ctx, ownerID, in.ID)
	if err != nil {
		return nil, err
	}

	category := in.Category
	if category == "" {
		category = model.DefaultCategory
	}

	due, err := pgDate(in.DueDate)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid due date"}
	}

	row, err := b.billRepo.UpdateBoleto(ctx, bills.UpdateBoletoParams{
		ID:          pgUUID(in.ID),
		OwnerID:     pgUUID(ownerID),
		Title:       in.Title,
		Amount:      pgNumeric(in.Amount),
		DueDate:     due,
		Barcode:     pgText(in.Barcode),
		Category:    category,
		IsRecurring: in.IsRecurring,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "boleto not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to update boleto"}
	}

	updated := FromDB(row)

	if updated.CalendarEventID != nil && b.calendar != nil {
		if calErr := b.calendar.UpdateEvent(ctx, updated); calErr != nil {
			rlog.Error("calendar mirror update failed", "boleto_id", updated.ID, "error", calErr)
		}
	}

	b.publishChange(ctx, &events.BoletoChange{Type: events.ChangeUpdate, New: updated, Old: existing})

	return updated, nil
}
