package commands

import (
	"context"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/order"
)

type FailDeliveryCommandHandler struct {
	deps LifecycleDeps
}

func NewFailDeliveryCommandHandler(deps LifecycleDeps) FailDeliveryCommandHandler {
	return FailDeliveryCommandHandler{deps: deps}
}

// Handle returns "failed" on success.
func (h *FailDeliveryCommandHandler) Handle(ctx context.Context, cmd FailDeliveryCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	return h.deps.runTransition(ctx, "fail_delivery", map[string]any{"order_number": cmd.OrderNumber()},
		func(orders []*order.Order, ledger *delivery.Ledger) (string, error) {
			return h.deps.Lifecycle.FailDelivery(orders, ledger, cmd.OrderNumber(), cmd.Comment())
		})
}
