package bills

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Boleto struct {
	ID              pgtype.UUID
	OwnerID         pgtype.UUID
	Title           string
	Amount          pgtype.Numeric
	DueDate         pgtype.Date
	Barcode         pgtype.Text
	Category        string
	IsRecurring     bool
	Status          string
	CalendarEventID pgtype.Text
	CreatedAt       pgtype.Timestamptz
}
