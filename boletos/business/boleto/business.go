package boleto

import (
	"context"

	"encore.dev/rlog"
	"github.com/google/uuid"

	"encore.app/boletos/events"
	"encore.app/boletos/model"
	"encore.app/boletos/store/activity"
	"encore.app/boletos/store/bills"
)

type Business interface {
	Create(ctx context.Context, ownerID uuid.UUID, in *model.Boleto) (*model.Boleto, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*model.Boleto, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*model.Boleto, error)
	Update(ctx context.Context, ownerID uuid.UUID, in *model.Boleto) (*model.Boleto, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	ToggleStatus(ctx context.Context, ownerID, id uuid.UUID) (*model.Boleto, error)
	ListActivity(ctx context.Context, ownerID uuid.UUID) ([]model.ActivityEntry, error)
	Extract(ctx context.Context, text string) (*model.ExtractedInfo, error)
}

// CalendarMirror mirrors due dates into an external calendar. Every call is
// best-effort: failures are logged by the caller and never block the boleto
// mutation they accompany.
type CalendarMirror interface {
	CreateEvent(ctx context.Context, b *model.Boleto) (string, error)
	UpdateEvent(ctx context.Context, b *model.Boleto) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// Extractor parses free boleto text into a structured suggestion.
type Extractor interface {
	Extract(ctx context.Context, text string) (*model.ExtractedInfo, error)
}

// ChangePublisher puts one row-level change on the sync feed.
type ChangePublisher func(ctx context.Context, ev *events.BoletoChange) error

type business struct {
	billRepo     bills.Querier
	activityRepo activity.Querier
	calendar     CalendarMirror
	extractor    Extractor
	publish      ChangePublisher
}

// NewBusiness creates the boleto business layer. calendar, extractor and
// publish may be nil; the corresponding side effects are then skipped.
func NewBusiness(
	billRepo bills.Querier,
	activityRepo activity.Querier,
	calendar CalendarMirror,
	extractor Extractor,
	publish ChangePublisher,
) Business {
	return &business{
		billRepo:     billRepo,
		activityRepo: activityRepo,
		calendar:     calendar,
		extractor:    extractor,
		publish:      publish,
	}
}

// publishChange emits a change event after a durable write. Publish failures
// only delay convergence of other clients, so they are logged, not returned.
func (b *business) publishChange(ctx context.Context, ev *events.BoletoChange) {
	if b.publish == nil {
		return
	}
	if err := b.publish(ctx, ev); err != nil {
		rlog.Error("failed to publish boleto change", "type", ev.Type, "error", err)
	}
}
