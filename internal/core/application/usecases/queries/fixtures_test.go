package queries_test

import (
	"testing"

	"deliverydesk/internal/adapters/out/catalog"
	"deliverydesk/internal/adapters/out/memory"
	"deliverydesk/internal/core/ports"

	"github.com/stretchr/testify/require"
)

var seed = map[ports.Collection]string{
	ports.Districts: `[
		{"id": 1, "name": "Downtown", "region": "Central"},
		{"id": 2, "name": "Harbor", "region": "East"},
		{"id": 3, "name": "Hills", "region": "West"}
	]`,
	ports.Locations: `[
		{"id": 10, "name": "Alder Street", "district_id": 1, "is_physical": true},
		{"id": 11, "name": "Maple Yard", "district_id": 1, "is_physical": true},
		{"id": 12, "name": "Zeta Point", "district_id": 1, "is_physical": true},
		{"id": 20, "name": "Harbor Gate", "district_id": 2, "is_physical": true},
		{"id": 30, "name": "Hill Top", "district_id": 3, "is_physical": true}
	]`,
	ports.DeliveryCategories: `[
		{"id": 1, "name": "Fragile"},
		{"id": 2, "name": "Bulk"}
	]`,
	ports.Orders: `[
		{"number": 1, "name": "Chiral crystals", "client_id": 20, "destination_id": 10, "delivery_category_id": 1, "weight": 3},
		{"number": 2, "name": "Amber box", "client_id": 20, "destination_id": 11, "delivery_category_id": 1, "weight": 1},
		{"number": 3, "name": "Zinc", "client_id": 30, "destination_id": 12, "delivery_category_id": 2, "weight": 2},
		{"number": 4, "name": "Harbor crate", "client_id": 10, "destination_id": 20, "delivery_category_id": 1, "weight": 5},
		{"number": 5, "name": "Timber", "client_id": 10, "destination_id": 30, "delivery_category_id": 2, "weight": 4}
	]`,
	ports.Deliveries: `[
		{"id": 1, "order_number": 1, "status": "complete", "ended_at": "2026-05-01T10:00:00Z", "user_id": 1},
		{"id": 2, "order_number": 2, "status": "COMPLETE", "ended_at": "2026-05-01T11:00:00Z", "user_id": 2},
		{"id": 3, "order_number": 3, "status": "completed", "ended_at": "2026-05-01 12:00:00"},
		{"id": 4, "order_number": 4, "status": "in progress", "started_at": "2026-05-02", "user_id": 1},
		{"id": 5, "order_number": 5, "status": "failed", "ended_at": "2026-05-02T09:00:00Z", "user_id": 1}
	]`,
}

// seededRepository imports every fixture collection into a fresh in-memory store.
func seededRepository(t *testing.T) *catalog.Repository {
	t.Helper()
	repo := catalog.NewRepository(memory.NewStore(nil))

	for _, collection := range ports.Collections() {
		_, err := repo.Import(t.Context(), collection, []byte(seed[collection]))
		require.NoError(t, err, collection)
	}
	return repo
}
