package boleto

import (
	"context"

	"encore.dev/beta/errs"
	"github.com/google/uuid"

	"encore.app/boletos/model"
	"encore.app/boletos/store/activity"
)

// ListActivity returns the owner's newest audit entries, capped at the fetch
// limit. Entries are written by the store layer as a side effect of each
// mutation, so this is strictly read-only.
func (b *business) ListActivity(ctx context.Context, ownerID uuid.UUID) ([]model.ActivityEntry, error) {
	rows, err := b.activityRepo.ListActivity(ctx, activity.ListActivityParams{
		OwnerID: pgUUID(ownerID),
		Limit:   model.ActivityFetchLimit,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list activity"}
	}

	entries := make([]model.ActivityEntry, len(rows))
	for i, row := range rows {
		entries[i] = activityFromDB(row)
	}
	return entries, nil
}
