package boleto

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/boletos/mocks/store/bills_repo"
	"encore.app/boletos/model"
	"encore.app/boletos/store/bills"
)

func TestToggleStatus(t *testing.T) {
	ownerID := uuid.New()
	boletoID := uuid.New()
	amount := decimal.RequireFromString("99.90")

	testCases := []struct {
		name        string
		current     string
		dueDate     string
		recurring   bool
		wantStatus  string
		wantDueDate string
	}{
		{
			name:        "pending_to_paid",
			current:     "pending",
			dueDate:     "2025-09-10",
			wantStatus:  "paid",
			wantDueDate: "2025-09-10",
		},
		{
			name:        "paid_back_to_pending",
			current:     "paid",
			dueDate:     "2025-09-10",
			wantStatus:  "pending",
			wantDueDate: "2025-09-10",
		},
		{
			name:        "overdue_to_paid",
			current:     "overdue",
			dueDate:     "2025-08-01",
			wantStatus:  "paid",
			wantDueDate: "2025-08-01",
		},
		{
			name:        "recurring_rolls_one_month",
			current:     "pending",
			dueDate:     "2025-09-10",
			recurring:   true,
			wantStatus:  "pending",
			wantDueDate: "2025-10-10",
		},
		{
			name:        "recurring_clamps_to_last_day",
			current:     "pending",
			dueDate:     "2025-01-31",
			recurring:   true,
			wantStatus:  "pending",
			wantDueDate: "2025-02-28",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := bills_repo.NewMockQuerier(ctrl)
			business := &business{billRepo: mockRepo}

			mockRepo.EXPECT().
				GetBoleto(gomock.Any(), gomock.Any()).
				Return(dbBoleto(boletoID, ownerID, "Internet", amount, tc.dueDate, tc.recurring, tc.current), nil)

			var gotParams bills.UpdateBoletoStatusParams
			mockRepo.EXPECT().
				UpdateBoletoStatus(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, arg bills.UpdateBoletoStatusParams) (bills.Boleto, error) {
					gotParams = arg
					return dbBoleto(boletoID, ownerID, "Internet", amount, tc.wantDueDate, tc.recurring, tc.wantStatus), nil
				})

			result, err := business.ToggleStatus(context.Background(), ownerID, boletoID)

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, gotParams.Status)
			assert.Equal(t, tc.wantDueDate, gotParams.DueDate.Time.Format(model.DueDateLayout))
			assert.Equal(t, model.BoletoStatus(tc.wantStatus), result.Status)
			assert.Equal(t, tc.wantDueDate, result.DueDate)
		})
	}
}

func TestToggleStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bills_repo.NewMockQuerier(ctrl)
	business := &business{billRepo: mockRepo}

	mockRepo.EXPECT().
		GetBoleto(gomock.Any(), gomock.Any()).
		Return(bills.Boleto{}, pgx.ErrNoRows)

	result, err := business.ToggleStatus(context.Background(), uuid.New(), uuid.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boleto not found")
	assert.Nil(t, result)
}
