package boleto

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/boletos/mocks/store/bills_repo"
	"encore.app/boletos/model"
	"encore.app/boletos/store/bills"
)

func TestCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bills_repo.NewMockQuerier(ctrl)
	business := &business{billRepo: mockRepo}

	ownerID := uuid.New()

	testCases := []struct {
		name          string
		input         *model.Boleto
		mockError     error
		expectedError string
		wantCategory  string
	}{
		{
			name: "happy_case",
			input: &model.Boleto{
				Title:   "Internet",
				Amount:  decimal.RequireFromString("99.90"),
				DueDate: "2025-09-10",
			},
			wantCategory: model.DefaultCategory,
		},
		{
			name: "explicit_category_kept",
			input: &model.Boleto{
				Title:    "Aluguel",
				Amount:   decimal.RequireFromString("1500.00"),
				DueDate:  "2025-09-05",
				Category: "Moradia",
			},
			wantCategory: "Moradia",
		},
		{
			name: "negative_amount_check_violation",
			input: &model.Boleto{
				Title:   "Internet",
				Amount:  decimal.RequireFromString("-1"),
				DueDate: "2025-09-10",
			},
			mockError:     &pgconn.PgError{Code: pgerrcode.CheckViolation},
			expectedError: "amount must be non-negative",
		},
		{
			name: "general_error",
			input: &model.Boleto{
				Title:   "Internet",
				Amount:  decimal.RequireFromString("99.90"),
				DueDate: "2025-09-10",
			},
			mockError:     assert.AnError,
			expectedError: "failed to create boleto",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotParams bills.CreateBoletoParams
			mockRepo.EXPECT().
				CreateBoleto(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, arg bills.CreateBoletoParams) (bills.Boleto, error) {
					gotParams = arg
					if tc.mockError != nil {
						return bills.Boleto{}, tc.mockError
					}
					return dbBoleto(uuid.New(), ownerID, tc.input.Title, tc.input.Amount, tc.input.DueDate, tc.input.IsRecurring, "pending"), nil
				})

			result, err := business.Create(context.Background(), ownerID, tc.input)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			// New boletos always enter the lifecycle as pending.
			assert.Equal(t, "pending", gotParams.Status)
			assert.Equal(t, tc.wantCategory, gotParams.Category)
			assert.Equal(t, model.BoletoStatusPending, result.Status)
			assert.Nil(t, result.CalendarEventID)
		})
	}
}

func TestCreate_CalendarFailureDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bills_repo.NewMockQuerier(ctrl)
	business := &business{
		billRepo: mockRepo,
		calendar: &stubCalendar{createErr: assert.AnError},
	}

	ownerID := uuid.New()
	mockRepo.EXPECT().
		CreateBoleto(gomock.Any(), gomock.Any()).
		Return(dbBoleto(uuid.New(), ownerID, "Luz", decimal.RequireFromString("150.50"), "2025-09-10", false, "pending"), nil)

	result, err := business.Create(context.Background(), ownerID, &model.Boleto{
		Title:   "Luz",
		Amount:  decimal.RequireFromString("150.50"),
		DueDate: "2025-09-10",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Nil(t, result.CalendarEventID)
}

func TestCreate_CalendarEventIDStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bills_repo.NewMockQuerier(ctrl)
	business := &business{
		billRepo: mockRepo,
		calendar: &stubCalendar{createID: "evt-123"},
	}

	ownerID := uuid.New()
	boletoID := uuid.New()
	mockRepo.EXPECT().
		CreateBoleto(gomock.Any(), gomock.Any()).
		Return(dbBoleto(boletoID, ownerID, "Luz", decimal.RequireFromString("150.50"), "2025-09-10", false, "pending"), nil)
	mockRepo.EXPECT().
		SetCalendarEventID(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := business.Create(context.Background(), ownerID, &model.Boleto{
		Title:   "Luz",
		Amount:  decimal.RequireFromString("150.50"),
		DueDate: "2025-09-10",
	})

	require.NoError(t, err)
	require.NotNil(t, result.CalendarEventID)
	assert.Equal(t, "evt-123", *result.CalendarEventID)
}
