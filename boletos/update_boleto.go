package boletos

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"encore.app/boletos/model"
)

type UpdateBoletoRequest struct {
	Title       string          `json:"title" validate:"required,max=255"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"due_date" validate:"required,datetime=2006-01-02"`
	Barcode     *string         `json:"barcode,omitempty"`
	Category    string          `json:"category"`
	IsRecurring bool            `json:"is_recurring"`
}

//encore:api auth path=/v1/boletos/:id method=PUT
func (s *Service) UpdateBoleto(ctx context.Context, id string, req *UpdateBoletoRequest) (*BoletoResponse, error) {
	ownerID, err := currentOwner()
	if err != nil {
		return nil, err
	}
	boletoID, err := uuid.Parse(id)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid boleto ID"}
	}

	result, err := s.business.Update(ctx, ownerID, &model.Boleto{
		ID:          boletoID,
		Title:       req.Title,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Barcode:     req.Barcode,
		Category:    req.Category,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		rlog.Error("failed to update boleto", "error", err, "id", id)
		return nil, err
	}

	return &BoletoResponse{
		Boleto: *result,
	}, nil
}

// Validate implements validation for UpdateBoletoRequest using go-playground/validator
func (r *UpdateBoletoRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if r.Amount.IsZero() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "amount is required"}
	}
	if r.Amount.IsNegative() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "amount must be non-negative"}
	}
	if r.Category != "" && !model.ValidCategory(r.Category) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "unknown category"}
	}

	return nil
}
