package boletos

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"
)

//encore:api auth path=/v1/boletos/:id method=DELETE
func (s *Service) DeleteBoleto(ctx context.Context, id string) error {
	ownerID, err := currentOwner()
	if err != nil {
		return err
	}
	boletoID, err := uuid.Parse(id)
	if err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "invalid boleto ID"}
	}

	if err := s.business.Delete(ctx, ownerID, boletoID); err != nil {
		rlog.Error("failed to delete boleto", "error", err, "id", id)
		return err
	}
	return nil
}
