package commands_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"deliverydesk/internal/core/application/usecases/commands"
	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/core/domain/model/order"
	"deliverydesk/internal/core/domain/services"
	"deliverydesk/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const currentUser kernel.ID = 1

var fixedNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func newOrder(t *testing.T, number kernel.ID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(number, order.Attributes{
		Name:               "order " + number.String(),
		ClientID:           10,
		DestinationID:      20,
		DeliveryCategoryID: 1,
	})
	require.NoError(t, err)
	return o
}

func newRecord(t *testing.T, id, orderNumber kernel.ID, status delivery.Status) *delivery.Delivery {
	t.Helper()
	user := currentUser
	snap := delivery.Snapshot{
		ID:          id,
		OrderNumber: orderNumber,
		Status:      status,
		StartedAt:   ptr(fixedNow.Add(-time.Hour)),
		UserID:      &user,
	}
	if status == delivery.Stored {
		snap.LocationID = ptr(kernel.ID(7))
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

// lifecycleMocks wires a repository, a unit of work and a factory the way
// every lifecycle handler uses them.
type lifecycleMocks struct {
	repo    *MockCatalogRepository
	uow     *MockCatalogUoW
	factory *MockCatalogUoWFactory
	reg     *prometheus.Registry
	deps    commands.LifecycleDeps
}

func newLifecycleMocks(t *testing.T) *lifecycleMocks {
	t.Helper()
	lifecycle, err := services.NewDeliveryLifecycle(currentUser, func() time.Time { return fixedNow })
	require.NoError(t, err)

	m := &lifecycleMocks{
		repo:    new(MockCatalogRepository),
		uow:     new(MockCatalogUoW),
		factory: new(MockCatalogUoWFactory),
		reg:     prometheus.NewRegistry(),
	}
	m.deps = commands.LifecycleDeps{
		UoWFactory: m.factory,
		Lifecycle:  lifecycle,
		Metrics:    metrics.NewDeliveryMetrics(m.reg),
	}
	m.factory.On("Create").Return(m.uow).Once()
	return m
}

// expectLoad expects Begin, repository access and both reads.
func (m *lifecycleMocks) expectLoad(orders []*order.Order, ledger *delivery.Ledger) {
	m.uow.On("Begin", mock.Anything).Return(nil).Once()
	m.uow.On("CatalogRepository").Return(m.repo).Once()
	m.repo.On("Orders", mock.Anything).Return(orders, nil).Once()
	m.repo.On("Deliveries", mock.Anything).Return(ledger, nil).Once()
}

func (m *lifecycleMocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.factory.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.repo.AssertExpectations(t)
}

func (m *lifecycleMocks) assertOutcome(t *testing.T, operation, outcome string) {
	t.Helper()
	expected := fmt.Sprintf(`
# HELP deliverydesk_delivery_commands_total Delivery lifecycle commands by operation and outcome.
# TYPE deliverydesk_delivery_commands_total counter
deliverydesk_delivery_commands_total{operation=%q,outcome=%q} 1
`, operation, outcome)
	require.NoError(t, testutil.GatherAndCompare(m.reg, strings.NewReader(expected),
		"deliverydesk_delivery_commands_total"))
}

func ledgerMatching(fn func(*delivery.Ledger) bool) any {
	return mock.MatchedBy(fn)
}
