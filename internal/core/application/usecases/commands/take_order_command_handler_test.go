package commands_test

import (
	"errors"
	"testing"

	"deliverydesk/internal/core/application/usecases/commands"
	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/core/domain/model/order"
	"deliverydesk/internal/pkg/errs"
	"deliverydesk/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewTakeOrderCommand(t *testing.T) {
	t.Run("should create command with positive number", func(t *testing.T) {
		cmd, err := commands.NewTakeOrderCommand(42)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.EqualValues(t, 42, cmd.OrderNumber())
	})

	t.Run("should reject zero number", func(t *testing.T) {
		cmd, err := commands.NewTakeOrderCommand(0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "order number")
		require.ErrorIs(t, cmd.Validate(), commands.ErrTakeOrderCommandIsNotConstructed)
	})
}

func TestTakeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	m := newLifecycleMocks(t)
	ledger := newLedger(t)

	m.expectLoad([]*order.Order{newOrder(t, 42)}, ledger)
	mock.InOrder(
		m.repo.On("SaveDeliveries", mock.Anything, ledgerMatching(func(l *delivery.Ledger) bool {
			return l.Len() == 1 && l.At(0).Status() == delivery.InProgress && l.At(0).OrderNumber() == 42
		})).Return(nil).Once(),
		m.uow.On("Commit", mock.Anything).Return(nil).Once(),
		m.uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	cmd, err := commands.NewTakeOrderCommand(42)
	require.NoError(t, err)

	handler := commands.NewTakeOrderCommandHandler(m.deps)
	msg, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "order 42 taken", msg)
	m.assertExpectations(t)
	m.assertOutcome(t, "take_order", metrics.OutcomeOK)
}

func TestTakeOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	ctx := t.Context()
	factory := new(MockCatalogUoWFactory)

	handler := commands.NewTakeOrderCommandHandler(commands.LifecycleDeps{UoWFactory: factory})
	_, err := handler.Handle(ctx, commands.TakeOrderCommand{})

	require.ErrorIs(t, err, commands.ErrTakeOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestTakeOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	m := newLifecycleMocks(t)
	beginErr := errors.New("connection refused")

	m.uow.On("Begin", mock.Anything).Return(beginErr).Once()

	cmd, _ := commands.NewTakeOrderCommand(42)
	handler := commands.NewTakeOrderCommandHandler(m.deps)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPersistence)
	require.ErrorIs(t, err, beginErr)
	m.assertExpectations(t)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	m.assertOutcome(t, "take_order", metrics.OutcomeFailed)
}

func TestTakeOrderCommandHandler_Handle_LoadError(t *testing.T) {
	ctx := t.Context()
	m := newLifecycleMocks(t)
	loadErr := errs.NewVersionIsInvalidError("schema version")

	mock.InOrder(
		m.uow.On("Begin", mock.Anything).Return(nil).Once(),
		m.uow.On("CatalogRepository").Return(m.repo).Once(),
		m.repo.On("Orders", mock.Anything).Return(nil, loadErr).Once(),
		m.uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	cmd, _ := commands.NewTakeOrderCommand(42)
	handler := commands.NewTakeOrderCommandHandler(m.deps)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	assert.NotErrorIs(t, err, errs.ErrPersistence)
	m.assertExpectations(t)
	m.assertOutcome(t, "take_order", metrics.OutcomeRejected)
}

func TestTakeOrderCommandHandler_Handle_DomainErrors(t *testing.T) {
	testCases := []struct {
		name     string
		records  func(t *testing.T) []*delivery.Delivery
		number   kernel.ID
		expected error
	}{
		{
			name:     "unknown order",
			records:  func(*testing.T) []*delivery.Delivery { return nil },
			number:   99,
			expected: errs.ErrObjectNotFound,
		},
		{
			name: "already active",
			records: func(t *testing.T) []*delivery.Delivery {
				return []*delivery.Delivery{newRecord(t, 1, 42, delivery.Stored)}
			},
			number:   42,
			expected: errs.ErrStateConflict,
		},
	}

	for _, tc := range testCases {
		t.Run("should not save on "+tc.name, func(t *testing.T) {
			ctx := t.Context()
			m := newLifecycleMocks(t)

			m.expectLoad([]*order.Order{newOrder(t, 42)}, newLedger(t, tc.records(t)...))
			m.uow.On("Rollback", mock.Anything).Return(nil).Once()

			cmd, err := commands.NewTakeOrderCommand(tc.number)
			require.NoError(t, err)

			handler := commands.NewTakeOrderCommandHandler(m.deps)
			msg, err := handler.Handle(ctx, cmd)

			require.ErrorIs(t, err, tc.expected)
			assert.Empty(t, msg)
			m.assertExpectations(t)
			m.repo.AssertNotCalled(t, "SaveDeliveries", mock.Anything, mock.Anything)
			m.uow.AssertNotCalled(t, "Commit", mock.Anything)
			m.assertOutcome(t, "take_order", metrics.OutcomeRejected)
		})
	}
}

func TestTakeOrderCommandHandler_Handle_SaveError(t *testing.T) {
	ctx := t.Context()
	m := newLifecycleMocks(t)
	saveErr := errors.New("disk full")

	m.expectLoad([]*order.Order{newOrder(t, 42)}, newLedger(t))
	mock.InOrder(
		m.repo.On("SaveDeliveries", mock.Anything, mock.Anything).Return(saveErr).Once(),
		m.uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	cmd, _ := commands.NewTakeOrderCommand(42)
	handler := commands.NewTakeOrderCommandHandler(m.deps)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPersistence)
	assert.Contains(t, err.Error(), "save deliveries")
	m.assertExpectations(t)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTakeOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	m := newLifecycleMocks(t)
	commitErr := errors.New("commit failed")

	m.expectLoad([]*order.Order{newOrder(t, 42)}, newLedger(t))
	mock.InOrder(
		m.repo.On("SaveDeliveries", mock.Anything, mock.Anything).Return(nil).Once(),
		m.uow.On("Commit", mock.Anything).Return(commitErr).Once(),
		m.uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	cmd, _ := commands.NewTakeOrderCommand(42)
	handler := commands.NewTakeOrderCommandHandler(m.deps)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPersistence)
	require.ErrorIs(t, err, commitErr)
	m.assertExpectations(t)
	m.assertOutcome(t, "take_order", metrics.OutcomeFailed)
}
