package boleto

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.app/boletos/model"
	"encore.app/boletos/store/bills"
)

// dbBoleto builds a store row the way the database would return it.
func dbBoleto(id, ownerID uuid.UUID, title string, amount decimal.Decimal, dueDate string, recurring bool, status string) bills.Boleto {
	due, err := time.Parse(model.DueDateLayout, dueDate)
	if err != nil {
		panic(err)
	}
	return bills.Boleto{
		ID:          pgtype.UUID{Bytes: id, Valid: true},
		OwnerID:     pgtype.UUID{Bytes: ownerID, Valid: true},
		Title:       title,
		Amount:      pgtype.Numeric{Int: amount.Coefficient(), Exp: amount.Exponent(), Valid: true},
		DueDate:     pgtype.Date{Time: due, Valid: true},
		Category:    model.DefaultCategory,
		IsRecurring: recurring,
		Status:      status,
		CreatedAt:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

type stubCalendar struct {
	createID  string
	createErr error
	updateErr error
	deleteErr error

	deletedEventIDs []string
}

func (s *stubCalendar) CreateEvent(ctx context.Context, b *model.Boleto) (string, error) {
	return s.createID, s.createErr
}

func (s *stubCalendar) UpdateEvent(ctx context.Context, b *model.Boleto) error {
	return s.updateErr
}

func (s *stubCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	s.deletedEventIDs = append(s.deletedEventIDs, eventID)
	return s.deleteErr
}

type stubExtractor struct {
	info *model.ExtractedInfo
	err  error
}

func (s *stubExtractor) Extract(ctx context.Context, text string) (*model.ExtractedInfo, error) {
	return s.info, s.err
}
