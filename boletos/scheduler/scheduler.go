// Package scheduler runs the periodic due-today scan. Every pending boleto
// whose due date equals the current calendar day is alerted exactly once per
// process lifetime; the dedup set lives here and is never exposed.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"encore.dev/rlog"
	"github.com/google/uuid"

	"encore.app/boletos/model"
)

// DefaultInterval is how often the scan re-runs after the immediate first
// pass.
const DefaultInterval = time.Hour

// FetchFunc returns the candidate boletos for one scan. Implementations
// typically return pending boletos due on the given day.
type FetchFunc func(ctx context.Context, today string) ([]*model.Boleto, error)

// Notifier delivers a due-today alert to the boleto's owner.
type Notifier interface {
	Notify(ctx context.Context, ownerID uuid.UUID, title, body string)
}

// Scheduler owns the scan loop and the in-memory seen-set. One instance is
// created per process; restarting the process resets the set, which is
// accepted behavior for a fresh session.
type Scheduler struct {
	fetch    FetchFunc
	notifier Notifier
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	seen map[uuid.UUID]struct{}

	cancel context.CancelFunc
	done   chan struct{}
}

type Option func(*Scheduler)

func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) { s.interval = d }
}

// WithClock overrides the wall-clock read, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

func New(fetch FetchFunc, notifier Notifier, opts ...Option) *Scheduler {
	s := &Scheduler{
		fetch:    fetch,
		notifier: notifier,
		interval: DefaultInterval,
		now:      time.Now,
		seen:     make(map[uuid.UUID]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start runs an immediate scan and then re-scans on the configured interval
// until Stop is called. Starting an already-started scheduler is a no-op, so
// there is a single creation point for the timer.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.mu.Unlock()

	go s.run(ctx)
}

// Stop cancels the scan loop and waits for it to exit. The scheduler can be
// re-armed with Start afterwards; the seen-set survives, keeping the
// at-most-once guarantee for the process lifetime.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.done = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	s.scanOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.scanOnce(ctx)
		}
	}
}

// scanOnce alerts every pending boleto due today whose id has not been
// alerted yet. The set is keyed by id, not by date: two boletos sharing a
// due date are alerted independently.
func (s *Scheduler) scanOnce(ctx context.Context) {
	today := s.now().Format(model.DueDateLayout)

	candidates, err := s.fetch(ctx, today)
	if err != nil {
		rlog.Error("due-today scan failed", "error", err)
		return
	}

	for _, b := range candidates {
		if b.Status != model.BoletoStatusPending || b.DueDate != today {
			continue
		}

		s.mu.Lock()
		_, alerted := s.seen[b.ID]
		if !alerted {
			s.seen[b.ID] = struct{}{}
		}
		s.mu.Unlock()
		if alerted {
			continue
		}

		s.notifier.Notify(ctx, b.OwnerID,
			"Boleto Vence Hoje!",
			fmt.Sprintf("Sua conta \"%s\" vence hoje no valor de %s.", b.Title, model.FormatAmountBRL(b.Amount)),
		)
	}
}
