package commands

import (
	"context"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/order"
)

// CompleteDeliveryCommandHandler completes the user's active delivery of an
// order, or creates and completes one when none is active.
type CompleteDeliveryCommandHandler struct {
	deps LifecycleDeps
}

func NewCompleteDeliveryCommandHandler(deps LifecycleDeps) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{deps: deps}
}

// Handle returns "completed" on success.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	return h.deps.runTransition(ctx, "complete_delivery", map[string]any{"order_number": cmd.OrderNumber()},
		func(orders []*order.Order, ledger *delivery.Ledger) (string, error) {
			return h.deps.Lifecycle.CompleteDelivery(orders, ledger, cmd.OrderNumber())
		})
}
