package commands

import (
	"errors"
	"fmt"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/guard"
)

var (
	ErrBulkCompleteCommandIsNotConstructed = errors.New(
		"BulkCompleteCommand must be created via NewBulkCompleteCommand constructor",
	)
)

// BulkCompleteCommand completes every listed order that exists.
type BulkCompleteCommand struct { //nolint:recvcheck //using for validation
	orderNumbers []kernel.ID

	guard guard.ConstructorGuard
}

// NewBulkCompleteCommand accepts an empty list. Every listed number must be positive.
func NewBulkCompleteCommand(orderNumbers []kernel.ID) (BulkCompleteCommand, error) {
	cmd := BulkCompleteCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setOrderNumbers(orderNumbers); err != nil {
		return BulkCompleteCommand{}, err
	}

	return cmd, nil
}

func (c BulkCompleteCommand) Validate() error {
	return c.guard.Validate(ErrBulkCompleteCommandIsNotConstructed)
}

func (c BulkCompleteCommand) OrderNumbers() []kernel.ID {
	return append([]kernel.ID(nil), c.orderNumbers...)
}

func (c *BulkCompleteCommand) setOrderNumbers(orderNumbers []kernel.ID) error {
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
