package boleto

import (
	"context"
	"errors"

	"encore.dev/beta/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.app/boletos/model"
	"encore.app/boletos/store/bills"
)

// Get retrieves one boleto scoped to its owner.
func (b *business) Get(ctx context.Context, ownerID, id uuid.UUID) (*model.Boleto, error) {
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

	return FromDB(row), nil
}
