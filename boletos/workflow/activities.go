package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/boletos/business/delivery"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	Delivery delivery.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(deliveryBusiness delivery.Business) {
	activityDeps = &ActivityDependencies{
		Delivery: deliveryBusiness,
	}
}

// DispatchDuePushActivity fans out push payloads for every pending boleto
// due on the given day. Per-subscription failures are handled inside the
// dispatch, so a retry of this activity only re-runs transport-level
// failures.
func DispatchDuePushActivity(ctx context.Context, day string) (*delivery.DispatchResult, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing due push dispatch activity", "day", day)

	if activityDeps == nil || activityDeps.Delivery == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	result, err := activityDeps.Delivery.DispatchDueToday(ctx, day)
	if err != nil {
		logger.Error("Failed to dispatch due pushes", "day", day, "error", err)
		return nil, err
	}

	logger.Info("Successfully dispatched due pushes", "day", day, "attempted", result.Attempted)
	return result, nil
}
