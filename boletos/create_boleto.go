package boletos

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/shopspring/decimal"

	"encore.app/boletos/model"
)

type CreateBoletoRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Title       string          `json:"title" validate:"required,max=255"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"due_date" validate:"required,datetime=2006-01-02"`
	Barcode     *string         `json:"barcode,omitempty"`
	Category    string          `json:"category"`
	IsRecurring bool            `json:"is_recurring"`
}

type BoletoResponse struct {
	Boleto model.Boleto `json:"boleto"`
}

//encore:api auth path=/v1/boletos method=POST tag:idempotency
func (s *Service) CreateBoleto(ctx context.Context, req *CreateBoletoRequest) (*BoletoResponse, error) {
	ownerID, err := currentOwner()
	if err != nil {
		return nil, err
	}

	result, err := s.business.Create(ctx, ownerID, &model.Boleto{
		Title:       req.Title,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Barcode:     req.Barcode,
		Category:    req.Category,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		rlog.Error("failed to create boleto", "error", err)
		return nil, err
	}

	return &BoletoResponse{
		Boleto: *result,
	}, nil
}

// Validate implements validation for CreateBoletoRequest using go-playground/validator
func (r *CreateBoletoRequest) Validate() error {
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
