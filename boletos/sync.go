package boletos

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"encore.dev/pubsub"
	"encore.dev/rlog"
	"github.com/google/uuid"

	"encore.app/boletos/events"
	"encore.app/boletos/realtime"
)

// syncHub fans the change feed out to per-user listeners. It is package-level
// so the pub/sub subscription can dispatch into it before the service struct
// exists.
var syncHub = realtime.NewHub()

var _ = pubsub.NewSubscription(events.BoletoChanges, "realtime-sync",
	pubsub.SubscriptionConfig[*events.BoletoChange]{
		Handler: func(ctx context.Context, ev *events.BoletoChange) error {
			syncHub.Dispatch(ctx, ev)
			return nil
		},
	},
)

// syncRegistry tracks one listener per user so repeated status checks never
// stack duplicate handlers on the hub.
type syncRegistry struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*syncEntry
}

type syncEntry struct {
	listener    *realtime.Listener
	version     atomic.Int64
	refreshedAt atomic.Int64 // unix millis of the last converged re-fetch
}

func newSyncRegistry() *syncRegistry {
	return &syncRegistry{entries: make(map[uuid.UUID]*syncEntry)}
}

func (r *syncRegistry) detachAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		e.listener.Detach()
	}
}

// ensureListener returns the user's sync entry, creating and attaching the
// listener on first use. Re-attaching an existing listener is a no-op inside
// realtime, so calling this on every status check is safe.
func (s *Service) ensureListener(ownerID uuid.UUID) *syncEntry {
	s.sync.mu.Lock()
	defer s.sync.mu.Unlock()

	if e, ok := s.sync.entries[ownerID]; ok {
		e.listener.Attach(syncHub)
		return e
	}

	e := &syncEntry{}
	refetch := func(ctx context.Context) {
		if _, err := s.business.List(ctx, ownerID); err != nil {
			rlog.Error("sync re-fetch failed", "user_id", ownerID, "error", err)
			return
		}
		e.version.Add(1)
		e.refreshedAt.Store(time.Now().UnixMilli())
	}
	e.listener = realtime.NewListener(ownerID, refetch, topicNotifier{}, realtime.DefaultDebounce)
	e.listener.Attach(syncHub)
	s.sync.entries[ownerID] = e
	return e
}

type SyncStatusResponse struct {
	Subscribed bool  `json:"subscribed"`
	Version    int64 `json:"version"`
}

// SyncStatus reports whether the caller's realtime listener is attached and
// the monotonically increasing version of their converged boleto list. It
// also lazily attaches the listener on first call.
//
//encore:api auth method=GET path=/v1/sync
func (s *Service) SyncStatus(ctx context.Context) (*SyncStatusResponse, error) {
	ownerID, err := currentOwner()
	if err != nil {
		return nil, err
	}
	e := s.ensureListener(ownerID)
	return &SyncStatusResponse{
		Subscribed: e.listener.Subscribed(),
		Version:    e.version.Load(),
	}, nil
}
