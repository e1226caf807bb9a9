package commands

import (
	"context"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/order"
)

// ContinueDeliveryCommandHandler moves the user's Stored delivery back to
// InProgress and clears its location.
type ContinueDeliveryCommandHandler struct {
	deps LifecycleDeps
}

func NewContinueDeliveryCommandHandler(deps LifecycleDeps) ContinueDeliveryCommandHandler {
	return ContinueDeliveryCommandHandler{deps: deps}
}

// Handle returns "continued" on success.
func (h *ContinueDeliveryCommandHandler) Handle(ctx context.Context, cmd ContinueDeliveryCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	return h.deps.runTransition(ctx, "continue_delivery", map[string]any{"order_number": cmd.OrderNumber()},
		func(_ []*order.Order, ledger *delivery.Ledger) (string, error) {
			return h.deps.Lifecycle.ContinueDelivery(ledger, cmd.OrderNumber(), cmd.Comment())
		})
}
