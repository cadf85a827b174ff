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
	"encore.app/boletos/store/bills"
)

func TestDelete(t *testing.T) {
	ownerID := uuid.New()
	boletoID := uuid.New()
	amount := decimal.RequireFromString("99.90")

	t.Run("happy_case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := bills_repo.NewMockQuerier(ctrl)
		business := &business{billRepo: mockRepo}

		mockRepo.EXPECT().
			GetBoleto(gomock.Any(), gomock.Any()).
			Return(dbBoleto(boletoID, ownerID, "Internet", amount, "2025-09-10", false, "pending"), nil)
		mockRepo.EXPECT().
			DeleteBoleto(gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		err := business.Delete(context.Background(), ownerID, boletoID)
		assert.NoError(t, err)
	})

	t.Run("calendar_failure_does_not_undo_delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := bills_repo.NewMockQuerier(ctrl)
		cal := &stubCalendar{deleteErr: assert.AnError}
		business := &business{billRepo: mockRepo, calendar: cal}

		eventID := "evt-123"
		row := dbBoleto(boletoID, ownerID, "Internet", amount, "2025-09-10", false, "pending")
		row.CalendarEventID.String = eventID
		row.CalendarEventID.Valid = true

		mockRepo.EXPECT().
			GetBoleto(gomock.Any(), gomock.Any()).
			Return(row, nil)
		mockRepo.EXPECT().
			DeleteBoleto(gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		err := business.Delete(context.Background(), ownerID, boletoID)

		require.NoError(t, err)
		assert.Equal(t, []string{eventID}, cal.deletedEventIDs)
	})

	t.Run("not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := bills_repo.NewMockQuerier(ctrl)
		business := &business{billRepo: mockRepo}

		mockRepo.EXPECT().
			GetBoleto(gomock.Any(), gomock.Any()).
			Return(bills.Boleto{}, pgx.ErrNoRows)

		err := business.Delete(context.Background(), ownerID, boletoID)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "boleto not found")
	})

	t.Run("row_vanished_between_get_and_delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := bills_repo.NewMockQuerier(ctrl)
		business := &business{billRepo: mockRepo}

		mockRepo.EXPECT().
			GetBoleto(gomock.Any(), gomock.Any()).
			Return(dbBoleto(boletoID, ownerID, "Internet", amount, "2025-09-10", false, "pending"), nil)
		mockRepo.EXPECT().
			DeleteBoleto(gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		err := business.Delete(context.Background(), ownerID, boletoID)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "boleto not found")
	})
}
