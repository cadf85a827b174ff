package boleto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.app/boletos/model"
	"encore.app/boletos/store/activity"
	"encore.app/boletos/store/bills"
)

// FromDB converts a database row to a domain model Boleto
func FromDB(row bills.Boleto) *model.Boleto {
	b := &model.Boleto{
		ID:          uuid.UUID(row.ID.Bytes),
		OwnerID:     uuid.UUID(row.OwnerID.Bytes),
		Title:       row.Title,
		Amount:      decimal.NewFromBigInt(row.Amount.Int, row.Amount.Exp),
		DueDate:     row.DueDate.Time.Format(model.DueDateLayout),
		Category:    row.Category,
		IsRecurring: row.IsRecurring,
		Status:      model.BoletoStatus(row.Status),
		CreatedAt:   row.CreatedAt.Time,
	}

	if row.Barcode.Valid {
		b.Barcode = &row.Barcode.String
	}

	if row.CalendarEventID.Valid {
		b.CalendarEventID = &row.CalendarEventID.String
	}

	return b
}

func activityFromDB(row activity.ActivityEntry) model.ActivityEntry {
	return model.ActivityEntry{
		ID:             uuid.UUID(row.ID.Bytes),
		OwnerID:        uuid.UUID(row.OwnerID.Bytes),
		Action:         row.Action,
		BoletoTitle:    row.BoletoTitle,
		BoletoCategory: row.BoletoCategory,
		CreatedAt:      row.CreatedAt.Time,
	}
}

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func pgNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func pgDate(s string) (pgtype.Date, error) {
	t, err := time.Parse(model.DueDateLayout, s)
	if err != nil {
		return pgtype.Date{}, err
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

func pgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
