package commands

import (
	"context"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/order"
)

// TakeOrderCommandHandler creates an InProgress delivery and persists the ledger.
//
// Example:
//
//	handler := NewTakeOrderCommandHandler(deps)
//	cmd, _ := NewTakeOrderCommand(42)
//
//	msg, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    // not found, conflict or persistence failure
//	}
type TakeOrderCommandHandler struct {
	deps LifecycleDeps
}

func NewTakeOrderCommandHandler(deps LifecycleDeps) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{deps: deps}
}

// Handle returns "order <n> taken" on success.
func (h *TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	return h.deps.runTransition(ctx, "take_order", map[string]any{"order_number": cmd.OrderNumber()},
		func(orders []*order.Order, ledger *delivery.Ledger) (string, error) {
			return h.deps.Lifecycle.TakeOrder(orders, ledger, cmd.OrderNumber())
		})
}
