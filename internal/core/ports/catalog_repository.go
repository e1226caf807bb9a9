package ports

import (
	"context"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/network"
	"deliverydesk/internal/core/domain/model/order"
)

// CatalogRepository gives typed access to the stored collections.
// A missing collection reads as empty.
type CatalogRepository interface {
	Districts(ctx context.Context) ([]*network.District, error)
	Locations(ctx context.Context) ([]*network.Location, error)
	DeliveryCategories(ctx context.Context) ([]*network.DeliveryCategory, error)
	Orders(ctx context.Context) ([]*order.Order, error)

	// Deliveries loads every delivery record of every user.
	Deliveries(ctx context.Context) (*delivery.Ledger, error)

	// SaveDeliveries replaces the stored delivery collection with the ledger.
	SaveDeliveries(ctx context.Context, ledger *delivery.Ledger) error

	// Import validates a raw JSON array and replaces the collection wholesale.
	// It returns the number of imported entries.
	Import(ctx context.Context, collection Collection, raw []byte) (int, error)

	// Export returns the stored JSON array, or "[]" when the collection is absent.
	Export(ctx context.Context, collection Collection) (string, error)

	// SchemaVersion returns the stored schema version, or "" when unset.
	SchemaVersion(ctx context.Context) (string, error)
	SetSchemaVersion(ctx context.Context, version string) error
}
