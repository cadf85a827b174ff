// Package realtime keeps clients converged after writes from any device.
// A Hub fans change-feed events out to per-user listeners; each listener
// filters by ownership, debounces a full re-fetch, and raises an immediate
// alert for inserts.
package realtime

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"encore.dev/rlog"
	"github.com/google/uuid"

	"encore.app/boletos/events"
)

// DefaultDebounce coalesces bursts of change events into one re-fetch.
const DefaultDebounce = 300 * time.Millisecond

// Notifier delivers a user-visible alert.
type Notifier interface {
	Notify(ctx context.Context, ownerID uuid.UUID, title, body string)
}

// Hub dispatches change events to attached listeners.
type Hub struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[int]func(context.Context, *events.BoletoChange)
}

func NewHub() *Hub {
	return &Hub{listeners: make(map[int]func(context.Context, *events.BoletoChange))}
}

// Register attaches a handler and returns its detach func. Detaching twice
// is a no-op.
func (h *Hub) Register(handler func(context.Context, *events.BoletoChange)) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = handler
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.listeners, id)
			h.mu.Unlock()
		})
	}
}

// Dispatch delivers one event to every attached listener.
func (h *Hub) Dispatch(ctx context.Context, ev *events.BoletoChange) {
	h.mu.RLock()
	handlers := make([]func(context.Context, *events.BoletoChange), 0, len(h.listeners))
	for _, fn := range h.listeners {
		handlers = append(handlers, fn)
	}
	h.mu.RUnlock()

	for _, fn := range handlers {
		fn(ctx, ev)
	}
}

// Listener is one user's sync endpoint onto the change feed.
type Listener struct {
	userID   uuid.UUID
	refetch  func(context.Context)
	notifier Notifier
	debounce time.Duration

	mu         sync.Mutex
	timer      *time.Timer
	detach     func()
	subscribed atomic.Bool
}

func NewListener(userID uuid.UUID, refetch func(context.Context), notifier Notifier, debounce time.Duration) *Listener {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Listener{
		userID:   userID,
		refetch:  refetch,
		notifier: notifier,
		debounce: debounce,
	}
}

// Attach subscribes the listener to the hub. Attaching an already-attached
// listener is a no-op, so a re-mounted client never ends up with duplicate
// handlers.
func (l *Listener) Attach(hub *Hub) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.detach != nil {
		return
	}
	l.detach = hub.Register(l.handle)
	l.subscribed.Store(true)
	rlog.Debug("realtime listener attached", "user_id", l.userID)
}

// Detach unsubscribes and cancels any pending re-fetch. The listener can be
// re-attached afterwards.
func (l *Listener) Detach() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.detach == nil {
		return
	}
	l.detach()
	l.detach = nil
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.subscribed.Store(false)
	rlog.Debug("realtime listener detached", "user_id", l.userID)
}

// Subscribed reports the listener's connection state for the surrounding UI.
func (l *Listener) Subscribed() bool {
	return l.subscribed.Load()
}

// handle filters one change event by ownership and schedules the debounced
// re-fetch. Deletes carry only the old record, so both sides are checked.
func (l *Listener) handle(ctx context.Context, ev *events.BoletoChange) {
	owns := (ev.New != nil && ev.New.OwnerID == l.userID) ||
		(ev.Old != nil && ev.Old.OwnerID == l.userID)
	if !owns {
		return
	}

	if ev.Type == events.ChangeInsert && ev.New != nil && l.notifier != nil {
		l.notifier.Notify(ctx, l.userID,
			"Novo Boleto!",
			fmt.Sprintf("O boleto \"%s\" foi adicionado.", ev.New.Title),
		)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.detach == nil {
		return
	}
	if l.timer != nil {
		l.timer.Stop()
	}
	l.timer = time.AfterFunc(l.debounce, func() {
		l.refetch(context.Background())
	})
}
