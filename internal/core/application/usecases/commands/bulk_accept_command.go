package commands

import (
	"errors"
	"fmt"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/guard"
)

var (
	ErrBulkAcceptCommandIsNotConstructed = errors.New(
		"BulkAcceptCommand must be created via NewBulkAcceptCommand constructor",
	)
)

// BulkAcceptCommand takes every listed order that exists and has no active delivery.
type BulkAcceptCommand struct { //nolint:recvcheck //using for validation
	orderNumbers []kernel.ID

	guard guard.ConstructorGuard
}

// NewBulkAcceptCommand accepts an empty list. Every listed number must be positive.
func NewBulkAcceptCommand(orderNumbers []kernel.ID) (BulkAcceptCommand, error) {
	cmd := BulkAcceptCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setOrderNumbers(orderNumbers); err != nil {
		return BulkAcceptCommand{}, err
	}

	return cmd, nil
}

func (c BulkAcceptCommand) Validate() error {
	return c.guard.Validate(ErrBulkAcceptCommandIsNotConstructed)
}

func (c BulkAcceptCommand) OrderNumbers() []kernel.ID {
	return append([]kernel.ID(nil), c.orderNumbers...)
}

func (c *BulkAcceptCommand) setOrderNumbers(orderNumbers []kernel.ID) error {
	var errList []error
	for i, n := range orderNumbers {
		errList = append(errList, n.ValidateAs(fmt.Sprintf("order numbers[%d]", i)))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.orderNumbers = append([]kernel.ID(nil), orderNumbers...)
	return nil
}
