package boletos

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"
)

//encore:api auth path=/v1/boletos/:id method=GET
func (s *Service) GetBoleto(ctx context.Context, id string) (*BoletoResponse, error) {
	ownerID, err := currentOwner()
	if err != nil {
		return nil, err
	}
	boletoID, err := uuid.Parse(id)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid boleto ID"}
	}

	result, err := s.business.Get(ctx, ownerID, boletoID)
	if err != nil {
		rlog.Error("failed to get boleto", "error", err, "id", id)
		return nil, err
	}

	return &BoletoResponse{
		Boleto: *result,
	}, nil
}
