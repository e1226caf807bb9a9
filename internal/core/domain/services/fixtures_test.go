package services_test

import (
	"testing"
	"time"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/core/domain/model/network"
	"deliverydesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func clock() time.Time {
	return fixedNow
}

func newOrder(t *testing.T, number, clientID, destinationID kernel.ID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(number, order.Attributes{
		Name:               "order " + number.String(),
		ClientID:           clientID,
		DestinationID:      destinationID,
		DeliveryCategoryID: 1,
	})
	require.NoError(t, err)
	return o
}

func newNamedOrder(t *testing.T, number kernel.ID, name string, weight, maxLikes float64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(number, order.Attributes{
		Name:               name,
		ClientID:           1,
		DestinationID:      2,
		DeliveryCategoryID: 1,
		Weight:             weight,
		MaxLikes:           maxLikes,
	})
	require.NoError(t, err)
	return o
}

func newRecord(t *testing.T, id, orderNumber kernel.ID, status delivery.Status, userID *kernel.ID) *delivery.Delivery {
	t.Helper()
	snap := delivery.Snapshot{
		ID:          id,
		OrderNumber: orderNumber,
		Status:      status,
		StartedAt:   ptr(fixedNow.Add(-time.Hour)),
		UserID:      userID,
	}
	if status.IsTerminal() {
		snap.EndedAt = ptr(fixedNow)
	}
	d, err := delivery.RestoreDelivery(snap)
	require.NoError(t, err)
	return d
}

func newLedger(t *testing.T, records ...*delivery.Delivery) *delivery.Ledger {
	t.Helper()
	ledger, err := delivery.NewLedger(records)
	require.NoError(t, err)
	return ledger
}

func newDistrict(t *testing.T, id kernel.ID, region network.Region) *network.District {
	t.Helper()
	d, err := network.NewDistrict(id, "district "+id.String(), region)
	require.NoError(t, err)
	return d
}

func newLocation(t *testing.T, id kernel.ID, name string, districtID kernel.ID) *network.Location {
	t.Helper()
	l, err := network.NewLocation(id, name, districtID, true)
	require.NoError(t, err)
	return l
}
