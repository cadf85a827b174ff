package boletos

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/boletos/model"
)

type ExtractBoletoRequest struct {
	Text string `json:"text" validate:"required"`
}

type ExtractBoletoResponse struct {
	// Suggestion is nil when the text could not be parsed; the caller falls
	// back to manual entry.
	Suggestion *model.ExtractedInfo `json:"suggestion,omitempty"`
}

// ExtractBoleto parses pasted boleto text into a form pre-fill suggestion.
//
//encore:api auth path=/v1/boletos/extract method=POST
func (s *Service) ExtractBoleto(ctx context.Context, req *ExtractBoletoRequest) (*ExtractBoletoResponse, error) {
	suggestion, err := s.business.Extract(ctx, req.Text)
	if err != nil {
		rlog.Error("failed to extract boleto info", "error", err)
		return nil, err
	}
	return &ExtractBoletoResponse{Suggestion: suggestion}, nil
}

// Validate implements validation for ExtractBoletoRequest using go-playground/validator
func (r *ExtractBoletoRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
