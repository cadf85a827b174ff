package boleto

import (
	"context"
	"errors"

	"encore.dev/beta/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.app/boletos/domain"
	"encore.app/boletos/events"
	"encore.app/boletos/model"
	"encore.app/boletos/store/bills"
)

// ToggleStatus applies the recurrence engine to the boleto's current state
// and persists status and due date in one atomic write, so the change feed
// never shows a recurring boleto resting in paid. Two devices toggling the
// same boleto race under last-write-wins; the feed converges them afterwards.
func (b *business) ToggleStatus(ctx context.Context, ownerID, id uuid.UUID) (*model.Boleto, error) {
	row, err := b.billRepo.GetBoleto(ctx, bills.GetBoletoParams{
		ID:      pgUUID(id),
		OwnerID: pgUUID(ownerID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "boleto not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get boleto"}
	}

	current := FromDB(row)

	transition, err := domain.ApplyStatusToggle(current)
	if err != nil {
		return nil, err
	}

	due, err := pgDate(transition.DueDate)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "invalid computed due date"}
	}

	updatedRow, err := b.billRepo.UpdateBoletoStatus(ctx, bills.UpdateBoletoStatusParams{
		ID:      pgUUID(id),
		OwnerID: pgUUID(ownerID),
		Status:  string(transition.Status),
		DueDate: due,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "boleto not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to toggle boleto status"}
	}

	updated := FromDB(updatedRow)
	b.publishChange(ctx, &events.BoletoChange{Type: events.ChangeUpdate, New: updated, Old: current})

	return updated, nil
}
