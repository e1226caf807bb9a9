package commands

import (
	"context"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/order"
)

// StoreDeliveryCommandHandler moves the user's active delivery from
// InProgress to Stored.
type StoreDeliveryCommandHandler struct {
	deps LifecycleDeps
}

func NewStoreDeliveryCommandHandler(deps LifecycleDeps) StoreDeliveryCommandHandler {
	return StoreDeliveryCommandHandler{deps: deps}
}

// Handle returns "stored" on success.
func (h *StoreDeliveryCommandHandler) Handle(ctx context.Context, cmd StoreDeliveryCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	fields := map[string]any{"order_number": cmd.OrderNumber(), "location_id": cmd.LocationID()}
	return h.deps.runTransition(ctx, "store_delivery", fields,
		func(_ []*order.Order, ledger *delivery.Ledger) (string, error) {
			return h.deps.Lifecycle.StoreDelivery(ledger, cmd.OrderNumber(), cmd.LocationID(), cmd.Comment())
		})
}
