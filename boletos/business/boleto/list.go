package boleto

import (
	"context"

	"encore.dev/beta/errs"
	"github.com/google/uuid"

	"encore.app/boletos/model"
)

// List returns all of the owner's boletos ordered by due date ascending.
func (b *business) List(ctx context.Context, ownerID uuid.UUID) ([]*model.Boleto, error) {
	rows, err := b.billRepo.ListBoletos(ctx, pgUUID(ownerID))
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list boletos"}
	}

	boletos := make([]*model.Boleto, len(rows))
	for i, row := range rows {
		boletos[i] = FromDB(row)
	}
	return boletos, nil
}
