package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"encore.app/boletos/business/delivery"
)

// DuePushWorkflowParams contains parameters for one daily dispatch run.
type DuePushWorkflowParams struct {
	Day string `json:"day"` // YYYY-MM-DD
}

// DuePush runs the due-today push dispatch for one calendar day. The
// dispatch itself keeps no cross-run dedup state, so this workflow is
// scheduled at most once per day.
func DuePush(ctx workflow.Context, params DuePushWorkflowParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting due push dispatch workflow", "day", params.Day)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var result delivery.DispatchResult
	err := workflow.ExecuteActivity(activityCtx, DispatchDuePushActivity, params.Day).Get(ctx, &result)
	if err != nil {
		logger.Error("Due push dispatch failed", "day", params.Day, "error", err)
		return err
	}

	logger.Info("Due push dispatch completed",
		"day", params.Day,
		"boletos", result.Boletos,
		"delivered", result.Delivered,
		"pruned", result.Pruned,
		"failed", result.Failed,
	)
	return nil
}
