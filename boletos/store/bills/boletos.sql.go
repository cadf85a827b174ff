package bills

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createBoleto = `
INSERT INTO boletos (owner_id, title, amount, due_date, barcode, category, is_recurring, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, owner_id, title, amount, due_date, barcode, category, is_recurring, status, calendar_event_id, created_at
`

type CreateBoletoParams struct {
	OwnerID     pgtype.UUID
	Title       string
	Amount      pgtype.Numeric
	DueDate     pgtype.Date
	Barcode     pgtype.Text
	Category    string
	IsRecurring bool
	Status      string
}

func (q *Queries) CreateBoleto(ctx context.Context, arg CreateBoletoParams) (Boleto, error) {
	row := q.db.QueryRow(ctx, createBoleto,
		arg.OwnerID,
		arg.Title,
		arg.Amount,
		arg.DueDate,
		arg.Barcode,
		arg.Category,
		arg.IsRecurring,
		arg.Status,
	)
	var i Boleto
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Title,
		&i.Amount,
		&i.DueDate,
		&i.Barcode,
		&i.Category,
		&i.IsRecurring,
		&i.Status,
		&i.CalendarEventID,
		&i.CreatedAt,
	)
	return i, err
}

const getBoleto = `
SELECT id, owner_id, title, amount, due_date, barcode, category, is_recurring, status, calendar_event_id, created_at
FROM boletos
WHERE id = $1 AND owner_id = $2
`

type GetBoletoParams struct {
	ID      pgtype.UUID
	OwnerID pgtype.UUID
}

func (q *Queries) GetBoleto(ctx context.Context, arg GetBoletoParams) (Boleto, error) {
	row := q.db.QueryRow(ctx, getBoleto, arg.ID, arg.OwnerID)
	var i Boleto
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Title,
		&i.Amount,
		&i.DueDate,
		&i.Barcode,
		&i.Category,
		&i.IsRecurring,
		&i.Status,
		&i.CalendarEventID,
		&i.CreatedAt,
	)
	return i, err
}

const listBoletos = `
SELECT id, owner_id, title, amount, due_date, barcode, category, is_recurring, status, calendar_event_id, created_at
FROM boletos
WHERE owner_id = $1
ORDER BY due_date ASC
`

func (q *Queries) ListBoletos(ctx context.Context, ownerID pgtype.UUID) ([]Boleto, error) {
	rows, err := q.db.Query(ctx, listBoletos, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Boleto
	for rows.Next() {
		var i Boleto
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.Title,
			&i.Amount,
			&i.DueDate,
			&i.Barcode,
			&i.Category,
			&i.IsRecurring,
			&i.Status,
			&i.CalendarEventID,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listDueToday = `
SELECT id, owner_id, title, amount, due_date, barcode, category, is_recurring, status, calendar_event_id, created_at
FROM boletos
WHERE status = 'pending' AND due_date = $1
ORDER BY owner_id, due_date ASC
`

func (q *Queries) ListDueToday(ctx context.Context, dueDate pgtype.Date) ([]Boleto, error) {
	rows, err := q.db.Query(ctx, listDueToday, dueDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Boleto
	for rows.Next() {
		var i Boleto
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.Title,
			&i.Amount,
			&i.DueDate,
			&i.Barcode,
			&i.Category,
			&i.IsRecurring,
			&i.Status,
			&i.CalendarEventID,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateBoleto = `
UPDATE boletos
SET title = $3, amount = $4, due_date = $5, barcode = $6, category = $7, is_recurring = $8
WHERE id = $1 AND owner_id = $2
RETURNING id, owner_id, title, amount, due_date, barcode, category, is_recurring, status, calendar_event_id, created_at
`

type UpdateBoletoParams struct {
	ID          pgtype.UUID
	OwnerID     pgtype.UUID
	Title       string
	Amount      pgtype.Numeric
	DueDate     pgtype.Date
	Barcode     pgtype.Text
	Category    string
	IsRecurring bool
}

func (q *Queries) UpdateBoleto(ctx context.Context, arg UpdateBoletoParams) (Boleto, error) {
	row := q.db.QueryRow(ctx, updateBoleto,
		arg.ID,
		arg.OwnerID,
		arg.Title,
		arg.Amount,
		arg.DueDate,
		arg.Barcode,
		arg.Category,
		arg.IsRecurring,
	)
	var i Boleto
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Title,
		&i.Amount,
		&i.DueDate,
		&i.Barcode,
		&i.Category,
		&i.IsRecurring,
		&i.Status,
		&i.CalendarEventID,
		&i.CreatedAt,
	)
	return i, err
}

const updateBoletoStatus = `
UPDATE boletos
SET status = $3, due_date = $4
WHERE id = $1 AND owner_id = $2
RETURNING id, owner_id, title, amount, due_date, barcode, category, is_recurring, status, calendar_event_id, created_at
`

type UpdateBoletoStatusParams struct {
	ID      pgtype.UUID
	OwnerID pgtype.UUID
	Status  string
	DueDate pgtype.Date
}

// UpdateBoletoStatus writes status and due date in one statement so no
// intermediate state is visible through the change feed.
func (q *Queries) UpdateBoletoStatus(ctx context.Context, arg UpdateBoletoStatusParams) (Boleto, error) {
	row := q.db.QueryRow(ctx, updateBoletoStatus, arg.ID, arg.OwnerID, arg.Status, arg.DueDate)
	var i Boleto
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Title,
		&i.Amount,
		&i.DueDate,
		&i.Barcode,
		&i.Category,
		&i.IsRecurring,
		&i.Status,
		&i.CalendarEventID,
		&i.CreatedAt,
	)
	return i, err
}

const setCalendarEventID = `
UPDATE boletos
SET calendar_event_id = $3
WHERE id = $1 AND owner_id = $2
`

type SetCalendarEventIDParams struct {
	ID              pgtype.UUID
	OwnerID         pgtype.UUID
	CalendarEventID pgtype.Text
}

func (q *Queries) SetCalendarEventID(ctx context.Context, arg SetCalendarEventIDParams) error {
	_, err := q.db.Exec(ctx, setCalendarEventID, arg.ID, arg.OwnerID, arg.CalendarEventID)
	return err
}

const deleteBoleto = `
DELETE FROM boletos
WHERE id = $1 AND owner_id = $2
`

type DeleteBoletoParams struct {
	ID      pgtype.UUID
	OwnerID pgtype.UUID
}

func (q *Queries) DeleteBoleto(ctx context.Context, arg DeleteBoletoParams) (int64, error) {
	result, err := q.db.Exec(ctx, deleteBoleto, arg.ID, arg.OwnerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
