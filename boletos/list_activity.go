package boletos

import (
	"context"

	"encore.dev/rlog"

	"encore.app/boletos/model"
)

type ActivityResponse struct {
	Entries []model.ActivityEntry `json:"entries"`
}

// ListActivity returns the caller's most recent activity log entries, newest
// first.
//
//encore:api auth path=/v1/activity method=GET
func (s *Service) ListActivity(ctx context.Context) (*ActivityResponse, error) {
	ownerID, err := currentOwner()
	if err != nil {
		return nil, err
	}

	entries, err := s.business.ListActivity(ctx, ownerID)
	if err != nil {
		rlog.Error("failed to list activity", "error", err)
		return nil, err
	}
	return &ActivityResponse{Entries: entries}, nil
}
