package activity

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

type Querier interface {
	ListActivity(ctx context.Context, arg ListActivityParams) ([]ActivityEntry, error)
}

var _ Querier = (*Queries)(nil)

type ActivityEntry struct {
	ID             pgtype.UUID
	OwnerID        pgtype.UUID
	Action         string
	BoletoTitle    string
	BoletoCategory string
	CreatedAt      pgtype.Timestamptz
}

const listActivity = `
SELECT id, owner_id, action, boleto_title, boleto_category, created_at
FROM boleto_logs
WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2
`

type ListActivityParams struct {
	OwnerID pgtype.UUID
	Limit   int32
}

func (q *Queries) ListActivity(ctx context.Context, arg ListActivityParams) ([]ActivityEntry, error) {
	rows, err := q.db.Query(ctx, listActivity, arg.OwnerID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ActivityEntry
	for rows.Next() {
		var i ActivityEntry
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.Action,
			&i.BoletoTitle,
			&i.BoletoCategory,
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
