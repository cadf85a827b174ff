package subscriptions

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
	UpsertSubscription(ctx context.Context, arg UpsertSubscriptionParams) (PushSubscription, error)
	ListSubscriptionsByOwner(ctx context.Context, ownerID pgtype.UUID) ([]PushSubscription, error)
	DeleteSubscription(ctx context.Context, id pgtype.UUID) error
}

var _ Querier = (*Queries)(nil)

type PushSubscription struct {
	ID        pgtype.UUID
	OwnerID   pgtype.UUID
	Endpoint  string
	P256dh    string
	Auth      string
	CreatedAt pgtype.Timestamptz
}

const upsertSubscription = `
INSERT INTO push_subscriptions (owner_id, endpoint, p256dh, auth)
VALUES ($1, $2, $3, $4)
ON CONFLICT (endpoint) DO UPDATE
SET owner_id = EXCLUDED.owner_id, p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth
RETURNING id, owner_id, endpoint, p256dh, auth, created_at
`

type UpsertSubscriptionParams struct {
	OwnerID  pgtype.UUID
	Endpoint string
	P256dh   string
	Auth     string
}

// UpsertSubscription is keyed by endpoint: re-subscribing the same browser
// updates the existing row instead of duplicating it.
func (q *Queries) UpsertSubscription(ctx context.Context, arg UpsertSubscriptionParams) (PushSubscription, error) {
	row := q.db.QueryRow(ctx, upsertSubscription, arg.OwnerID, arg.Endpoint, arg.P256dh, arg.Auth)
	var i PushSubscription
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Endpoint,
		&i.P256dh,
		&i.Auth,
		&i.CreatedAt,
	)
	return i, err
}

const listSubscriptionsByOwner = `
SELECT id, owner_id, endpoint, p256dh, auth, created_at
FROM push_subscriptions
WHERE owner_id = $1
`

func (q *Queries) ListSubscriptionsByOwner(ctx context.Context, ownerID pgtype.UUID) ([]PushSubscription, error) {
	rows, err := q.db.Query(ctx, listSubscriptionsByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PushSubscription
	for rows.Next() {
		var i PushSubscription
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.Endpoint,
			&i.P256dh,
			&i.Auth,
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

const deleteSubscription = `
DELETE FROM push_subscriptions
WHERE id = $1
`

func (q *Queries) DeleteSubscription(ctx context.Context, id pgtype.UUID) error {
	_, err := q.db.Exec(ctx, deleteSubscription, id)
	return err
}
