package services_test

import (
	"math"
	"testing"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/core/domain/model/network"
	"deliverydesk/internal/core/domain/model/order"
	"deliverydesk/internal/core/domain/services"
	"deliverydesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers(items []services.OrderListItem) []kernel.ID {
	out := make([]kernel.ID, 0, len(items))
	for _, item := range items {
		out = append(out, item.Number)
	}
	return out
}

func names(items []services.OrderListItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func orderNumbers(orders []*order.Order) []kernel.ID {
	out := make([]kernel.ID, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Number())
	}
	return out
}

func TestFilterOrders_District(t *testing.T) {
	dir := network.NewDirectory(
		[]*network.District{newDistrict(t, 1, network.Central), newDistrict(t, 2, network.East)},
		[]*network.Location{
			newLocation(t, 10, "Alpha", 1),
			newLocation(t, 20, "Beta", 2),
			newLocation(t, 30, "Gamma", 2),
		},
	)
	orders := []*order.Order{
		newOrder(t, 1, 10, 20),
		newOrder(t, 2, 20, 10),
		newOrder(t, 3, 20, 30),
	}

	got := services.FilterOrders(orders, newLedger(t), dir, services.OrdersFilter{DistrictID: ptr(kernel.ID(1))})

	assert.Equal(t, []kernel.ID{1, 2}, orderNumbers(got))
}

func TestFilterOrders_Predicates(t *testing.T) {
	orders := []*order.Order{
		newOrder(t, 1, 100, 200),
		newOrder(t, 2, 101, 200),
		newOrder(t, 3, 100, 201),
		newOrder(t, 4, 102, 202),
	}
	ledger := newLedger(t,
		newRecord(t, 1, 1, delivery.Complete, ptr(kernel.ID(2))),
		newRecord(t, 2, 2, delivery.InProgress, ptr(kernel.ID(1))),
		newRecord(t, 3, 3, delivery.Failed, nil),
	)
	dir := network.NewDirectory(nil, nil)

	testCases := []struct {
		name     string
		filter   services.OrdersFilter
		expected []kernel.ID
	}{
		{"no predicates", services.OrdersFilter{}, []kernel.ID{1, 2, 3, 4}},
		{"client", services.OrdersFilter{ClientID: ptr(kernel.ID(100))}, []kernel.ID{1, 3}},
		{"destination", services.OrdersFilter{DestinationID: ptr(kernel.ID(200))}, []kernel.ID{1, 2}},
		{"category", services.OrdersFilter{DeliveryCategoryID: ptr(kernel.ID(7))}, []kernel.ID{}},
		{"completion true", services.OrdersFilter{Completion: ptr(true)}, []kernel.ID{1}},
		{"completion false", services.OrdersFilter{Completion: ptr(false)}, []kernel.ID{2, 3, 4}},
		{"status any", services.OrdersFilter{DeliveryStatus: ptr(services.StatusFilterAny)}, []kernel.ID{1, 2, 3}},
		{"status none", services.OrdersFilter{DeliveryStatus: ptr(services.StatusFilterNone)}, []kernel.ID{4}},
		{"status failed", services.OrdersFilter{DeliveryStatus: ptr(services.StatusFilterFailed)}, []kernel.ID{3}},
		{
			"conjunction",
			services.OrdersFilter{ClientID: ptr(kernel.ID(100)), Completion: ptr(false)},
			[]kernel.ID{3},
		},
	}

	for _, tc := range testCases {
		t.Run("should filter by "+tc.name, func(t *testing.T) {
			got := services.FilterOrders(orders, ledger, dir, tc.filter)

			assert.Equal(t, tc.expected, orderNumbers(got))
		})
	}
}

func TestFilterOrders_CompositionIsCommutative(t *testing.T) {
	orders := []*order.Order{
		newOrder(t, 1, 100, 200),
		newOrder(t, 2, 100, 201),
		newOrder(t, 3, 101, 200),
	}
	ledger := newLedger(t, newRecord(t, 1, 2, delivery.Complete, nil))
	dir := network.NewDirectory(nil, nil)
	byClient := services.OrdersFilter{ClientID: ptr(kernel.ID(100))}
	byCompletion := services.OrdersFilter{Completion: ptr(false)}

	clientFirst := services.FilterOrders(services.FilterOrders(orders, ledger, dir, byClient), ledger, dir, byCompletion)
	completionFirst := services.FilterOrders(services.FilterOrders(orders, ledger, dir, byCompletion), ledger, dir, byClient)
	combined := services.FilterOrders(orders, ledger, dir, services.OrdersFilter{
		ClientID:   byClient.ClientID,
		Completion: byCompletion.Completion,
	})

	assert.Equal(t, []kernel.ID{1}, orderNumbers(combined))
	assert.Equal(t, orderNumbers(combined), orderNumbers(clientFirst))
	assert.Equal(t, orderNumbers(combined), orderNumbers(completionFirst))
}

func TestOrderQuery_Project(t *testing.T) {
	query, err := services.NewOrderQuery(1)
	require.NoError(t, err)
	orders := []*order.Order{
		newOrder(t, 1, 100, 200),
		newOrder(t, 2, 100, 200),
		newOrder(t, 3, 100, 200),
		newOrder(t, 4, 100, 200),
	}
	ledger := newLedger(t,
		newRecord(t, 1, 1, delivery.Complete, ptr(kernel.ID(2))),
		newRecord(t, 2, 2, delivery.Complete, ptr(kernel.ID(1))),
		newRecord(t, 3, 2, delivery.InProgress, ptr(kernel.ID(1))),
		newRecord(t, 4, 3, delivery.Lost, nil),
		newRecord(t, 5, 3, delivery.Failed, nil),
	)

	items := query.Project(orders, ledger)

	require.Len(t, items, 4)

	assert.Nil(t, items[0].DeliveryStatus, "another user's record is invisible")
	assert.False(t, items[0].IsCompleted)

	require.NotNil(t, items[1].DeliveryStatus)
	assert.Equal(t, delivery.InProgress, *items[1].DeliveryStatus, "active record wins")
	assert.True(t, items[1].IsCompleted)

	require.NotNil(t, items[2].DeliveryStatus)
	assert.Equal(t, delivery.Failed, *items[2].DeliveryStatus, "failed beats lost")
	assert.False(t, items[2].IsCompleted)

	assert.Nil(t, items[3].DeliveryStatus)
	assert.Equal(t, "order 4", items[3].Name)
	assert.Equal(t, kernel.ID(100), items[3].ClientID)
}

func TestSortOrders(t *testing.T) {
	t.Run("should keep input order for case-insensitive ties", func(t *testing.T) {
		items := []services.OrderListItem{
			{Number: 1, Name: "beta"},
			{Number: 2, Name: "alpha"},
			{Number: 3, Name: "Alpha"},
		}

		services.SortOrders(items, services.SortByName, services.Ascending)

		assert.Equal(t, []string{"alpha", "Alpha", "beta"}, names(items))
	})

	t.Run("should reverse ties when descending", func(t *testing.T) {
		items := []services.OrderListItem{
			{Number: 1, Weight: 2},
			{Number: 2, Weight: 1},
			{Number: 3, Weight: 2},
		}

		services.SortOrders(items, services.SortByWeight, services.Descending)

		assert.Equal(t, []kernel.ID{3, 1, 2}, numbers(items))
	})

	t.Run("should sort by number by default", func(t *testing.T) {
		items := []services.OrderListItem{{Number: 3}, {Number: 1}, {Number: 2}}

		services.SortOrders(items, services.SortByNumber, services.Ascending)

		assert.Equal(t, []kernel.ID{1, 2, 3}, numbers(items))
	})

	t.Run("should sort by max likes", func(t *testing.T) {
		items := []services.OrderListItem{
			{Number: 1, MaxLikes: 30},
			{Number: 2, MaxLikes: 10},
			{Number: 3, MaxLikes: 20},
		}

		services.SortOrders(items, services.SortByMaxLikes, services.Descending)

		assert.Equal(t, []kernel.ID{1, 3, 2}, numbers(items))
	})

	t.Run("should not panic on NaN", func(t *testing.T) {
		items := []services.OrderListItem{
			{Number: 1, Weight: math.NaN()},
			{Number: 2, Weight: 1},
		}

		assert.NotPanics(t, func() {
			services.SortOrders(items, services.SortByWeight, services.Ascending)
		})
		assert.Len(t, items, 2)
	})
}

func TestSearchOrders(t *testing.T) {
	items := []services.OrderListItem{
		{Number: 7, Name: "Answer 42"},
		{Number: 142, Name: "Widgets"},
		{Number: 8, Name: "Gadgets"},
	}

	assert.Equal(t, []kernel.ID{7, 142}, numbers(services.SearchOrders(items, "42")))
	assert.Equal(t, []kernel.ID{142}, numbers(services.SearchOrders(items, "WIDG")))
	assert.Equal(t, []kernel.ID{7, 142, 8}, numbers(services.SearchOrders(items, "  ")))
	assert.Empty(t, services.SearchOrders(items, "nothing"))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	testCases := []struct {
		name     string
		page     int
		perPage  int
		expected []int
	}{
		{"first page", 1, 2, []int{1, 2}},
		{"last partial page", 3, 2, []int{5}},
		{"zero per page", 1, 0, []int{}},
		{"page zero", 0, 2, []int{1, 2}},
		{"negative page", -3, 2, []int{1, 2}},
		{"past the end", 10, 2, []int{}},
		{"page whose offset overflows", 4611686018427387905, 4, []int{}},
		{"largest page", math.MaxInt, 1, []int{}},
		{"largest per page", 1, math.MaxInt, []int{1, 2, 3, 4, 5}},
	}

	for _, tc := range testCases {
		t.Run("should handle "+tc.name, func(t *testing.T) {
			total, page := services.Paginate(items, tc.page, tc.perPage)

			assert.Equal(t, 5, total)
			assert.Equal(t, tc.expected, page)
		})
	}
}

func TestOrderQuery_Query(t *testing.T) {
	query, err := services.NewOrderQuery(1)
	require.NoError(t, err)

	orders := []*order.Order{
		newNamedOrder(t, 1, "Pump", 5, 1),
		newNamedOrder(t, 2, "Cable", 3, 2),
		newNamedOrder(t, 3, "Pallet", 3, 3),
		newNamedOrder(t, 4, "Crate", 9, 4),
	}
	ledger := newLedger(t, newRecord(t, 1, 4, delivery.Complete, nil))

	result := query.Query(services.OrderQueryInput{
		Orders:    orders,
		Ledger:    ledger,
		Directory: network.NewDirectory(nil, nil),
		Filter:    services.OrdersFilter{Completion: ptr(false)},
		Search:    "p",
		SortKey:   services.SortByWeight,
		SortDir:   services.Descending,
		Page:      1,
		PerPage:   1,
	})

	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, kernel.ID(1), result.Items[0].Number)
}

func TestParseQueryOptions(t *testing.T) {
	key, err := services.ParseSortKey("max_likes")
	require.NoError(t, err)
	assert.Equal(t, services.SortByMaxLikes, key)

	key, err = services.ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, services.SortByNumber, key)

	_, err = services.ParseSortKey("volume")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	dir, err := services.ParseSortDirection("DESC")
	require.NoError(t, err)
	assert.Equal(t, services.Descending, dir)

	_, err = services.ParseSortDirection("sideways")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	filter, err := services.ParseDeliveryStatusFilter("in_progress")
	require.NoError(t, err)
	assert.Equal(t, services.StatusFilterInProgress, filter)
	assert.Equal(t, "in_progress", filter.String())

	_, err = services.ParseDeliveryStatusFilter("maybe")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
