// Package domain holds the pure recurrence and status engine. Nothing here
// touches storage: callers compute the transition first and persist status
// and due date in a single write, so no intermediate state is ever observable
// through the change feed.
package domain

import (
	"fmt"
	"time"

	"encore.dev/beta/errs"

	"encore.app/boletos/model"
)

// Transition is the result of toggling a boleto's status.
type Transition struct {
	Status  model.BoletoStatus
	DueDate string
}

// ApplyStatusToggle computes the state a boleto moves to when the user
// toggles it:
//
//   - pending, non-recurring  -> paid, due date unchanged
//   - pending, recurring      -> pending, due date advanced one month
//   - paid                    -> pending, due date unchanged
//
// A recurring boleto never rests in paid: paying it rolls the due date
// forward and the observable status stays pending.
func ApplyStatusToggle(b *model.Boleto) (Transition, error) {
	switch b.Status {
	case model.BoletoStatusPending, model.BoletoStatusOverdue:
		if !b.IsRecurring {
			return Transition{Status: model.BoletoStatusPaid, DueDate: b.DueDate}, nil
		}
		next, err := AdvanceOneMonth(b.DueDate)
		if err != nil {
			return Transition{}, err
		}
		return Transition{Status: model.BoletoStatusPending, DueDate: next}, nil

	case model.BoletoStatusPaid:
		return Transition{Status: model.BoletoStatusPending, DueDate: b.DueDate}, nil

	default:
		return Transition{}, &errs.Error{
			Code:    errs.InvalidArgument,
			Message: fmt.Sprintf("invalid boleto status %q", b.Status),
		}
	}
}

// AdvanceOneMonth moves a YYYY-MM-DD date forward one calendar month,
// keeping the day of month. When the target month is shorter the day clamps
// to its last valid day, so Jan 31 becomes Feb 28 (Feb 29 in leap years)
// rather than spilling into March.
func AdvanceOneMonth(dueDate string) (string, error) {
	t, err := time.Parse(model.DueDateLayout, dueDate)
	if err != nil {
		return "", &errs.Error{
			Code:    errs.InvalidArgument,
			Message: fmt.Sprintf("invalid due date %q", dueDate),
		}
	}

	year, month, day := t.Date()
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfNext.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}

	next := time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, time.UTC)
	return next.Format(model.DueDateLayout), nil
}
