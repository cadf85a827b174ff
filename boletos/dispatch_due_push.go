package boletos

import (
	"context"
	"fmt"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/cron"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/boletos/model"
	wf "encore.app/boletos/workflow"
)

// Every morning, push a reminder for each boleto due that day.
var _ = cron.NewJob("daily-due-push", cron.JobConfig{
	Title:    "Dispatch due-today push notifications",
	Schedule: "0 12 * * *",
	Endpoint: DispatchDuePush,
})

// DispatchDuePush starts the daily push dispatch workflow for today. The
// workflow ID is scoped to the calendar day, so the cron job and manual
// invocations on the same day collapse into one run.
//
//encore:api private path=/v1/push/dispatch method=POST
func DispatchDuePush(ctx context.Context) error {
	if running == nil {
		return &errs.Error{Code: errs.Unavailable, Message: "service not initialized"}
	}
	day := time.Now().Format(model.DueDateLayout)
	return running.startDuePushWorkflow(ctx, day)
}

// startDuePushWorkflow starts a Temporal workflow for one day's dispatch.
func (s *Service) startDuePushWorkflow(ctx context.Context, day string) error {
	workflowID := fmt.Sprintf("due-push-%s", day)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, wf.DuePush, wf.DuePushWorkflowParams{Day: day})
	if err != nil {
		// Distinguish AlreadyStarted (benign) vs real failure
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("due push workflow already started", "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}

	rlog.Info("due push workflow started", "workflow_id", workflowID)
	return nil
}
