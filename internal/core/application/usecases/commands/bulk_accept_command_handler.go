package commands

import (
	"context"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/order"
)

// BulkAcceptCommandHandler starts deliveries for a batch of orders in one
// unit of work. Unknown and already active orders are skipped.
type BulkAcceptCommandHandler struct {
	deps LifecycleDeps
}

func NewBulkAcceptCommandHandler(deps LifecycleDeps) BulkAcceptCommandHandler {
	return BulkAcceptCommandHandler{deps: deps}
}

// Handle returns "accepted N".
func (h *BulkAcceptCommandHandler) Handle(ctx context.Context, cmd BulkAcceptCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	numbers := cmd.OrderNumbers()
	return h.deps.runTransition(ctx, "bulk_accept", map[string]any{"order_count": len(numbers)},
		func(orders []*order.Order, ledger *delivery.Ledger) (string, error) {
			return h.deps.Lifecycle.BulkAccept(orders, ledger, numbers)
		})
}
