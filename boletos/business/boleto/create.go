package boleto

import (
	"context"
	"errors"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.app/boletos/events"
	"encore.app/boletos/model"
	"encore.app/boletos/store/bills"
)

// Create persists a new pending boleto for the owner, then mirrors it to the
// external calendar best-effort and emits an insert event on the sync feed.
func (b *business) Create(ctx context.Context, ownerID uuid.UUID, in *model.Boleto) (*model.Boleto, error) {
	category := in.Category
	if category == "" {
		category = model.DefaultCategory
	}

	due, err := pgDate(in.DueDate)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid due date"}
	}

	row, err := b.billRepo.CreateBoleto(ctx, bills.CreateBoletoParams{
		OwnerID:     pgUUID(ownerID),
		Title:       in.Title,
		Amount:      pgNumeric(in.Amount),
		DueDate:     due,
		Barcode:     pgText(in.Barcode),
		Category:    category,
		IsRecurring: in.IsRecurring,
		Status:      string(model.BoletoStatusPending),
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.CheckViolation {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "amount must be non-negative"}
		}

		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create boleto"}
	}

	created := FromDB(row)
	b.mirrorCreate(ctx, ownerID, created)

	b.publishChange(ctx, &events.BoletoChange{Type: events.ChangeInsert, New: created})

	return created, nil
}

// mirrorCreate creates the calendar entry for a new boleto. Failures are
// logged and never surface to the caller.
func (b *business) mirrorCreate(ctx context.Context, ownerID uuid.UUID, created *model.Boleto) {
	if b.calendar == nil {
		return
	}

	eventID, err := b.calendar.CreateEvent(ctx, created)
	if err != nil {
		rlog.Error("calendar mirror create failed", "boleto_id", created.ID, "error", err)
		return
	}
	if eventID == "" {
		return
	}

	if err := b.billRepo.SetCalendarEventID(ctx, bills.SetCalendarEventIDParams{
		ID:              pgUUID(created.ID),
		OwnerID:         pgUUID(ownerID),
		CalendarEventID: pgText(&eventID),
	}); err != nil {
		rlog.Error("failed to store calendar event id", "boleto_id", created.ID, "error", err)
		return
	}
	created.CalendarEventID = &eventID
}
