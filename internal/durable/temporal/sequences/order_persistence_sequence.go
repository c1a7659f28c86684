package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	orderstypes "github.com/oficinapp/repairshop-api/internal/domains/orders/application/types"
	orderactivities "github.com/oficinapp/repairshop-api/internal/durable/temporal/activities/orders"
)

// RunOrderPersistenceSequence executes the ordered set of activities needed to persist a service order.
func RunOrderPersistenceSequence(ctx workflow.Context, input orderstypes.CreateOrderInput) (*orderstypes.OrderView, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order persistence sequence started", "clientId", input.ClientID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var view orderstypes.OrderView
	err := workflow.ExecuteActivity(ctx, orderactivities.PersistOrderActivityName, input).Get(ctx, &view)
	if err != nil {
		logger.Error("order persistence sequence failed", "clientId", input.ClientID, "error", err)
		return nil, err
	}
	if view.Order != nil {
		logger.Info("order persistence sequence completed", "orderId", view.Order.ID)
	} else {
		logger.Info("order persistence sequence completed")
	}
	return &view, nil
}
