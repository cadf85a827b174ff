package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEntry is an append-only audit record of an action taken on a
// boleto. Rows are written by a database trigger on the boletos table, so the
// service only ever reads them.
type ActivityEntry struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Action         string    `json:"action"`
	BoletoTitle    string    `json:"boleto_title"`
	BoletoCategory string    `json:"boleto_category"`
	CreatedAt      time.Time `json:"created_at"`
}

// ActivityFetchLimit caps how many entries a single fetch returns.
const ActivityFetchLimit = 20
