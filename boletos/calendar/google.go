// Package calendar mirrors boleto due dates into the owner's Google
// Calendar. Every operation is best-effort from the caller's point of view.
package calendar

import (
	"context"
	"fmt"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"encore.app/boletos/model"
)

const calendarID = "primary"

type Google struct {
	events *gcal.EventsService
}

func NewGoogle(ctx context.Context, credentialsJSON string) (*Google, error) {
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(gcal.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &Google{events: svc.Events}, nil
}

func (g *Google) CreateEvent(ctx context.Context, b *model.Boleto) (string, error) {
	created, err := g.events.Insert(calendarID, buildEvent(b, true)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert calendar event: %w", err)
	}
	return created.Id, nil
}

func (g *Google) UpdateEvent(ctx context.Context, b *model.Boleto) error {
	if b.CalendarEventID == nil {
		return nil
	}
	_, err := g.events.Patch(calendarID, *b.CalendarEventID, buildEvent(b, false)).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("patch calendar event: %w", err)
	}
	return nil
}

func (g *Google) DeleteEvent(ctx context.Context, eventID string) error {
	if err := g.events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}
	return nil
}

func buildEvent(b *model.Boleto, withReminders bool) *gcal.Event {
	barcode := "Não informado"
	if b.Barcode != nil {
		barcode = *b.Barcode
	}

	event := &gcal.Event{
		Summary: fmt.Sprintf("Vencimento: %s", b.Title),
		Description: fmt.Sprintf(
			"Lembrete de pagamento do boleto.\nValor: %s\nCódigo de barras: %s",
			model.FormatAmountBRL(b.Amount), barcode,
		),
		Start: &gcal.EventDateTime{Date: b.DueDate},
		End:   &gcal.EventDateTime{Date: b.DueDate},
	}

	if withReminders {
		event.Reminders = &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "popup", Minutes: 24 * 60},
				{Method: "email", Minutes: 24 * 60},
			},
			ForceSendFields: []string{"UseDefault"},
		}
	}
	return event
}
