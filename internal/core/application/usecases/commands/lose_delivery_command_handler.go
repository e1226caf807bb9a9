package commands

import (
	"context"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/order"
)

type LoseDeliveryCommandHandler struct {
	deps LifecycleDeps
}

func NewLoseDeliveryCommandHandler(deps LifecycleDeps) LoseDeliveryCommandHandler {
	return LoseDeliveryCommandHandler{deps: deps}
}

// Handle returns "lost" on success.
func (h *LoseDeliveryCommandHandler) Handle(ctx context.Context, cmd LoseDeliveryCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	return h.deps.runTransition(ctx, "lose_delivery", map[string]any{"order_number": cmd.OrderNumber()},
		func(_ []*order.Order, ledger *delivery.Ledger) (string, error) {
			return h.deps.Lifecycle.LoseDelivery(ledger, cmd.OrderNumber(), cmd.Comment())
		})
}
