package orders

import (
	"go.temporal.io/sdk/workflow"

	orderstypes "github.com/oficinapp/repairshop-api/internal/domains/orders/application/types"
	"github.com/oficinapp/repairshop-api/internal/durable/temporal/sequences"
)

const (
	// OrderPlacementWorkflowName is the public identifier for registering the workflow.
	OrderPlacementWorkflowName = "orders.workflows.Placement"
	// OrderPlacementTaskQueue is the queue consumed by the worker processing order workflows.
	OrderPlacementTaskQueue = "ORDER_PLACEMENT"
)

// OrderPlacementWorkflowInput captures the payload required to place a service order.
type OrderPlacementWorkflowInput struct {
	Command orderstypes.CreateOrderInput
	TraceID string
}

// OrderPlacementWorkflow orchestrates the activities needed to persist a service order.
func OrderPlacementWorkflow(ctx workflow.Context, input OrderPlacementWorkflowInput) (*orderstypes.OrderView, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("OrderPlacementWorkflow started", withTraceID(input.TraceID, "clientId", input.Command.ClientID)...)
	view, err := sequences.RunOrderPersistenceSequence(ctx, input.Command)
	if err != nil {
		logger.Error("OrderPlacementWorkflow failed", withTraceID(input.TraceID, "clientId", input.Command.ClientID, "error", err)...)
		return nil, err
	}
	if view != nil && view.Order != nil {
		logger.Info("OrderPlacementWorkflow completed", withTraceID(input.TraceID, "orderId", view.Order.ID)...)
	} else {
		logger.Info("OrderPlacementWorkflow completed", withTraceID(input.TraceID)...)
	}
	return view, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
