package boletos

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"
)

// ToggleBoletoStatus flips a boleto between pending and paid. Recurring
// boletos roll straight back to pending with the due date advanced one month,
// so their paid state is never observable through the API.
//
//encore:api auth path=/v1/boletos/:id/toggle method=POST
func (s *Service) ToggleBoletoStatus(ctx context.Context, id string) (*BoletoResponse, error) {
	ownerID, err := currentOwner()
	if err != nil {
		return nil, err
	}
	boletoID, err := uuid.Parse(id)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid boleto ID"}
	}

	result, err := s.business.ToggleStatus(ctx, ownerID, boletoID)
	if err != nil {
		rlog.Error("failed to toggle boleto status", "error", err, "id", id)
		return nil, err
	}

	return &BoletoResponse{
		Boleto: *result,
	}, nil
}
