package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DueDateLayout is the calendar-date form every due date is stored and
// exchanged in. Due dates carry no time component.
const DueDateLayout = "2006-01-02"

type Boleto struct {
	ID              uuid.UUID       `json:"id"`
	OwnerID         uuid.UUID       `json:"owner_id"`
	Title           string          `json:"title"`
	Amount          decimal.Decimal `json:"amount"`
	DueDate         string          `json:"due_date"`
	Barcode         *string         `json:"barcode,omitempty"`
	Category        string          `json:"category"`
	IsRecurring     bool            `json:"is_recurring"`
	Status          BoletoStatus    `json:"status"`
	CalendarEventID *string         `json:"calendar_event_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type BoletoStatus string

const (
	BoletoStatusPending BoletoStatus = "pending"
	BoletoStatusPaid    BoletoStatus = "paid"
	BoletoStatusOverdue BoletoStatus = "overdue"
)

// DefaultCategory is applied when a boleto is created without one.
const DefaultCategory = "Outros"

// Categories is the fixed set a boleto can belong to.
var Categories = []string{
	"Moradia", "Saúde", "Educação", "Lazer", "Serviços",
	"Alimentação", "Transporte", "Assinaturas", "Cartão de Crédito",
	"Impostos", "Seguros", "Investimentos", "Trabalho", "Pets", "Outros",
}

// ValidCategory reports whether cat is one of the fixed categories.
func ValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}
