package services

import (
	"errors"
	"fmt"
	"time"

	"deliverydesk/internal/core/domain/model/delivery"
	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/core/domain/model/order"
	"deliverydesk/internal/pkg/errs"
)

var errNoActiveDelivery = errors.New("no active delivery for this order")

// DeliveryLifecycle applies status transitions to a delivery ledger on behalf
// of one user.
//
// Business rules:
//   - Active-delivery lookups only see records owned by the user; records
//     without an owner count as the user's own
//   - At most one active record per order and user
//   - Completing an order without an active record creates one first
//   - BulkAccept skips what it cannot take; BulkComplete fails fast
//
// The ledger is mutated in place. Callers persist it only on success, so an
// error leaves the stored collection untouched.
//
// Example usage:
//
//	lifecycle, _ := services.NewDeliveryLifecycle(1, nil)
//	msg, err := lifecycle.TakeOrder(orders, ledger, 42)
//	if err != nil {
//	    // errs.ErrObjectNotFound or errs.ErrStateConflict
//	}
//	fmt.Println(msg) // order 42 taken
type DeliveryLifecycle struct {
	userID kernel.ID
	now    func() time.Time
}

// NewDeliveryLifecycle binds the lifecycle to a user and a clock.
// A nil clock uses the current UTC time.
func NewDeliveryLifecycle(userID kernel.ID, now func() time.Time) (DeliveryLifecycle, error) {
	if err := userID.ValidateAs("user id"); err != nil {
		return DeliveryLifecycle{}, err
	}

	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	return DeliveryLifecycle{userID: userID, now: now}, nil
}

// UserID returns the user the lifecycle acts for.
func (s DeliveryLifecycle) UserID() kernel.ID {
	return s.userID
}

// TakeOrder starts a new InProgress delivery for the order.
//
// Returns:
//   - "order <n> taken" on success
//   - ObjectNotFoundError if the order is unknown
//   - StateConflictError if the user already has an active delivery for it
func (s DeliveryLifecycle) TakeOrder(orders []*order.Order, ledger *delivery.Ledger, orderNumber kernel.ID) (string, error) {
	if _, ok := order.Find(orders, orderNumber); !ok {
		return "", errs.NewObjectNotFoundError("order", orderNumber)
	}

	if _, active := ledger.FindActive(orderNumber, s.userID); active {
		return "", errs.NewStateConflictError("delivery already active or stored for this order")
	}

	if _, err := s.start(ledger, orderNumber); err != nil {
		return "", err
	}

	return fmt.Sprintf("order %d taken", orderNumber), nil
}

// StoreDelivery parks the active delivery at a location.
func (s DeliveryLifecycle) StoreDelivery(
	ledger *delivery.Ledger,
	orderNumber, locationID kernel.ID,
	comment *string,
) (string, error) {
	d, err := s.active(ledger, orderNumber)
	if err != nil {
		return "", err
	}

	if err = d.Store(locationID, comment); err != nil {
		return "", err
	}

	return "stored", nil
}

// ContinueDelivery resumes a stored delivery.
func (s DeliveryLifecycle) ContinueDelivery(ledger *delivery.Ledger, orderNumber kernel.ID, comment *string) (string, error) {
	d, err := s.active(ledger, orderNumber)
	if err != nil {
		return "", err
	}

	if err = d.Continue(comment); err != nil {
		return "", err
	}

	return "continued", nil
}

// CompleteDelivery finishes the order at its client location, creating a
// delivery first when the user has none active.
func (s DeliveryLifecycle) CompleteDelivery(orders []*order.Order, ledger *delivery.Ledger, orderNumber kernel.ID) (string, error) {
	o, ok := order.Find(orders, orderNumber)
	if !ok {
		return "", errs.NewObjectNotFoundError("order", orderNumber)
	}

	if err := s.complete(o, ledger); err != nil {
		return "", err
	}

	return "completed", nil
}

// FailDelivery finishes the active delivery at the order's destination.
func (s DeliveryLifecycle) FailDelivery(
	orders []*order.Order,
	ledger *delivery.Ledger,
	orderNumber kernel.ID,
	comment *string,
) (string, error) {
	o, ok := order.Find(orders, orderNumber)
	if !ok {
		return "", errs.NewObjectNotFoundError("order", orderNumber)
	}

	d, err := s.active(ledger, orderNumber)
	if err != nil {
		return "", err
	}

	if err = d.Fail(s.now(), o.DestinationID(), comment); err != nil {
		return "", err
	}

	return "failed", nil
}

// LoseDelivery marks the active delivery as lost.
func (s DeliveryLifecycle) LoseDelivery(ledger *delivery.Ledger, orderNumber kernel.ID, comment *string) (string, error) {
	d, err := s.active(ledger, orderNumber)
	if err != nil {
		return "", err
	}

	if err = d.Lose(s.now(), comment); err != nil {
		return "", err
	}

	return "lost", nil
}

// BulkAccept takes every listed order that exists and has no active delivery.
// Unknown and already active orders are skipped; duplicates collapse.
func (s DeliveryLifecycle) BulkAccept(
	orders []*order.Order,
	ledger *delivery.Ledger,
	orderNumbers []kernel.ID,
) (string, error) {
	index := order.Index(orders)
	accepted := 0

	for _, n := range orderNumbers {
		if _, ok := index[n]; !ok {
			continue
		}
		if _, active := ledger.FindActive(n, s.userID); active {
			continue
		}
		if _, err := s.start(ledger, n); err != nil {
			return "", err
		}
		accepted++
	}

	return fmt.Sprintf("accepted %d", accepted), nil
}

// BulkComplete completes every listed order that exists. Unknown orders are
// skipped and the first error aborts the call.
//
// The returned message is "completed N", where N counts distinct order
// numbers. Repeated numbers are completed and counted once, so [1, 1]
// reports "completed 1".
func (s DeliveryLifecycle) BulkComplete(
	orders []*order.Order,
	ledger *delivery.Ledger,
	orderNumbers []kernel.ID,
) (string, error) {
	index := order.Index(orders)
	seen := make(map[kernel.ID]struct{}, len(orderNumbers))
	completed := 0

	for _, n := range orderNumbers {
		o, ok := index[n]
		if !ok {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}

		if err := s.complete(o, ledger); err != nil {
			return "", fmt.Errorf("complete order %d: %w", n, err)
		}
		completed++
	}

	return fmt.Sprintf("completed %d", completed), nil
}

func (s DeliveryLifecycle) complete(o *order.Order, ledger *delivery.Ledger) error {
	idx, ok := ledger.FindActive(o.Number(), s.userID)
	if !ok {
		var err error
		if idx, err = s.start(ledger, o.Number()); err != nil {
			return err
		}
	}

	return ledger.At(idx).Complete(s.now(), o.ClientID())
}

func (s DeliveryLifecycle) active(ledger *delivery.Ledger, orderNumber kernel.ID) (*delivery.Delivery, error) {
	idx, ok := ledger.FindActive(orderNumber, s.userID)
	if !ok {
		return nil, errs.NewObjectNotFoundErrorWithCause("delivery", orderNumber, errNoActiveDelivery)
	}
	return ledger.At(idx), nil
}

func (s DeliveryLifecycle) start(ledger *delivery.Ledger, orderNumber kernel.ID) (int, error) {
	userID := s.userID
	d, err := delivery.NewDelivery(ledger.NextID(), orderNumber, &userID, s.now())
	if err != nil {
		return -1, err
	}
	return ledger.Append(d)
}
