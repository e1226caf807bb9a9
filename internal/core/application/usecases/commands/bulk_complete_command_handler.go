package commands

import (
	"context"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/order"
)

// BulkCompleteCommandHandler completes a batch of orders atomically: the first
// failing order aborts the batch and nothing is saved.
type BulkCompleteCommandHandler struct {
	deps LifecycleDeps
}

func NewBulkCompleteCommandHandler(deps LifecycleDeps) BulkCompleteCommandHandler {
	return BulkCompleteCommandHandler{deps: deps}
}

// Handle returns "completed N".
func (h *BulkCompleteCommandHandler) Handle(ctx context.Context, cmd BulkCompleteCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	numbers := cmd.OrderNumbers()
	return h.deps.runTransition(ctx, "bulk_complete", map[string]any{"order_count": len(numbers)},
		func(orders []*order.Order, ledger *delivery.Ledger) (string, error) {
			return h.deps.Lifecycle.BulkComplete(orders, ledger, numbers)
		})
}
