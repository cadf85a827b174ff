package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/boletos/store/activity"
	"encore.app/boletos/store/bills"
	"encore.app/boletos/store/subscriptions"
)

// Store combines all domain-specific queriers
type Store struct {
	Bills         bills.Querier
	Activity      activity.Querier
	Subscriptions subscriptions.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Bills:         bills.New(db),
		Activity:      activity.New(db),
		Subscriptions: subscriptions.New(db),
	}
}
