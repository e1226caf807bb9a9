package order

import (
	"fmt"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/errs"
)

// ValidateCatalog checks an imported order collection: every order must be
// constructed and order numbers must be unique.
func ValidateCatalog(orders []*Order) error {
	seen := make(map[kernel.ID]struct{}, len(orders))
	for i, o := range orders {
		if err := o.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("orders[%d]", i), err)
		}
		if _, dup := seen[o.Number()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"order number",
				fmt.Errorf("duplicate order number %d", o.Number()),
			)
		}
		seen[o.Number()] = struct{}{}
	}
	return nil
}

// Index maps order numbers to orders.
func Index(orders []*Order) map[kernel.ID]*Order {
	index := make(map[kernel.ID]*Order, len(orders))
	for _, o := range orders {
		if _, ok := index[o.Number()]; !ok {
			index[o.Number()] = o
		}
	}
	return index
}

// Find returns the first order with the given number.
func Find(orders []*Order, number kernel.ID) (*Order, bool) {
	for _, o := range orders {
		if o.Number() == number {
			return o, true
		}
	}
	return nil, false
}
