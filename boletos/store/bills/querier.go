package bills

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Querier interface {
	CreateBoleto(ctx context.Context, arg CreateBoletoParams) (Boleto, error)
	GetBoleto(ctx context.Context, arg GetBoletoParams) (Boleto, error)
	ListBoletos(ctx context.Context, ownerID pgtype.UUID) ([]Boleto, error)
	ListDueToday(ctx context.Context, dueDate pgtype.Date) ([]Boleto, error)
	UpdateBoleto(ctx context.Context, arg UpdateBoletoParams) (Boleto, error)
	UpdateBoletoStatus(ctx context.Context, arg UpdateBoletoStatusParams) (Boleto, error)
	SetCalendarEventID(ctx context.Context, arg SetCalendarEventIDParams) error
	DeleteBoleto(ctx context.Context, arg DeleteBoletoParams) (int64, error)
}

var _ Querier = (*Queries)(nil)
