package boletos

import (
	"context"

	"encore.dev/rlog"

	"encore.app/boletos/model"
)

type ListBoletosResponse struct {
	Boletos    []model.Boleto `json:"boletos"`
	TotalCount int            `json:"total_count"`
}

// ListBoletos returns every boleto the caller owns, ordered by due date
// ascending.
//
//encore:api auth path=/v1/boletos method=GET
func (s *Service) ListBoletos(ctx context.Context) (*ListBoletosResponse, error) {
	ownerID, err := currentOwner()
	if err != nil {
		return nil, err
	}

	results, err := s.business.List(ctx, ownerID)
	if err != nil {
		rlog.Error("failed to list boletos", "error", err)
		return nil, err
	}

	boletos := make([]model.Boleto, len(results))
	for i, b := range results {
		boletos[i] = *b
	}
	return &ListBoletosResponse{
		Boletos:    boletos,
		TotalCount: len(boletos),
	}, nil
}
