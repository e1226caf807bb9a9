package delivery

import (
	"fmt"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/errs"
)

// Ledger is the ordered collection of delivery records. Lookups return
// positions, and callers reach records through At.
type Ledger struct {
	records []*Delivery
}

// NewLedger wraps existing records, keeping their order.
func NewLedger(records []*Delivery) (*Ledger, error) {
	for i, d := range records {
		if err := d.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("deliveries[%d]", i), err)
		}
	}

	owned := make([]*Delivery, len(records))
	copy(owned, records)
	return &Ledger{records: owned}, nil
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// At returns the record at position i.
func (l *Ledger) At(i int) *Delivery {
	return l.records[i]
}

// All returns the records in insertion order. The slice is a copy.
func (l *Ledger) All() []*Delivery {
	out := make([]*Delivery, len(l.records))
	copy(out, l.records)
	return out
}

// FindActive returns the position of the first InProgress or Stored record
// of the order that belongs to the user.
func (l *Ledger) FindActive(orderNumber, userID kernel.ID) (int, bool) {
	for i, d := range l.records {
		if d.OrderNumber() == orderNumber && d.IsActive() && d.BelongsTo(userID) {
			return i, true
		}
	}
	return -1, false
}

// HasAny reports whether the order has any record at all, for any user.
func (l *Ledger) HasAny(orderNumber kernel.ID) bool {
	for _, d := range l.records {
		if d.OrderNumber() == orderNumber {
			return true
		}
	}
	return false
}

// HasStatus reports whether any record of the order, for any user, has the status.
func (l *Ledger) HasStatus(orderNumber kernel.ID, status Status) bool {
	for _, d := range l.records {
		if d.OrderNumber() == orderNumber && d.Status() == status {
			return true
		}
	}
	return false
}

// ForOrder returns the records of one order in insertion order.
func (l *Ledger) ForOrder(orderNumber kernel.ID) []*Delivery {
	var out []*Delivery
	for _, d := range l.records {
		if d.OrderNumber() == orderNumber {
			out = append(out, d)
		}
	}
	return out
}

// WithStatus returns every record with the status.
func (l *Ledger) WithStatus(status Status) []*Delivery {
	var out []*Delivery
	for _, d := range l.records {
		if d.Status() == status {
			out = append(out, d)
		}
	}
	return out
}

// NextID returns one more than the largest id in the ledger.
func (l *Ledger) NextID() kernel.ID {
	var maxID kernel.ID
	for _, d := range l.records {
		if d.ID() > maxID {
			maxID = d.ID()
		}
	}
	return maxID + 1
}

// Append adds a record and returns its position.
func (l *Ledger) Append(d *Delivery) (int, error) {
	if err := d.Validate(); err != nil {
		return -1, err
	}
	l.records = append(l.records, d)
	return len(l.records) - 1, nil
}
