package boletos

import (
	"context"
	"testing"

	encoreauth "encore.dev/beta/auth"
	"encore.dev/et"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/auth"
	"encore.app/boletos/mocks/business/boleto_business"
	"encore.app/boletos/model"
)

func TestCreateBoleto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := boleto_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	ownerID := uuid.New()
	et.OverrideAuthInfo(encoreauth.UID(ownerID.String()), &auth.Data{Email: "teste@exemplo.com"})

	req := &CreateBoletoRequest{
		IdempotencyKey: "create-key-123",
		Title:          "Internet",
		Amount:         decimal.RequireFromString("99.90"),
		DueDate:        "2025-09-10",
		Category:       "Serviços",
	}

	mockBusiness.EXPECT().
		Create(gomock.Any(), ownerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, owner uuid.UUID, in *model.Boleto) (*model.Boleto, error) {
			out := *in
			out.ID = uuid.New()
			out.OwnerID = owner
			out.Status = model.BoletoStatusPending
			return &out, nil
		})

	resp, err := service.CreateBoleto(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Internet", resp.Boleto.Title)
	assert.Equal(t, model.BoletoStatusPending, resp.Boleto.Status)
	assert.Equal(t, ownerID, resp.Boleto.OwnerID)
}

func TestCreateBoletoRequest_Validate(t *testing.T) {
	testCases := []struct {
		name          string
		request       *CreateBoletoRequest
		expectedError string
	}{
		{
			name: "valid_request",
			request: &CreateBoletoRequest{
				Title:   "Internet",
				Amount:  decimal.RequireFromString("99.90"),
				DueDate: "2025-09-10",
			},
		},
		{
			name: "missing_title",
			request: &CreateBoletoRequest{
				Amount:  decimal.RequireFromString("99.90"),
				DueDate: "2025-09-10",
			},
			expectedError: "Title",
		},
		{
			name: "missing_due_date",
			request: &CreateBoletoRequest{
				Title:  "Internet",
				Amount: decimal.RequireFromString("99.90"),
			},
			expectedError: "DueDate",
		},
		{
			name: "wrong_due_date_format",
			request: &CreateBoletoRequest{
				Title:   "Internet",
				Amount:  decimal.RequireFromString("99.90"),
				DueDate: "10/09/2025",
			},
			expectedError: "DueDate",
		},
		{
			name: "zero_amount",
			request: &CreateBoletoRequest{
				Title:   "Internet",
				DueDate: "2025-09-10",
			},
			expectedError: "amount is required",
		},
		{
			name: "negative_amount",
			request: &CreateBoletoRequest{
				Title:   "Internet",
				Amount:  decimal.RequireFromString("-5"),
				DueDate: "2025-09-10",
			},
			expectedError: "amount must be non-negative",
		},
		{
			name: "unknown_category",
			request: &CreateBoletoRequest{
				Title:    "Internet",
				Amount:   decimal.RequireFromString("99.90"),
				DueDate:  "2025-09-10",
				Category: "Diversos",
			},
			expectedError: "unknown category",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			}
		})
	}
}
