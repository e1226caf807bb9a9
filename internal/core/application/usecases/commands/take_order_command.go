package commands

import (
	"errors"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/guard"
)

var (
	ErrTakeOrderCommandIsNotConstructed = errors.New(
		"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
	)
)

// TakeOrderCommand starts a delivery of an order for the current user.
//
// Example:
//
//	cmd, err := NewTakeOrderCommand(42)
//	if err != nil {
//	    return fmt.Errorf("invalid order number: %w", err)
//	}
//	msg, err := handler.Handle(ctx, cmd) // "order 42 taken"
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.ID

	guard guard.ConstructorGuard
}

// NewTakeOrderCommand validates that the order number is positive.
func NewTakeOrderCommand(orderNumber kernel.ID) (TakeOrderCommand, error) {
	cmd := TakeOrderCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setOrderNumber(orderNumber); err != nil {
		return TakeOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

func (c TakeOrderCommand) OrderNumber() kernel.ID {
	return c.orderNumber
}

func (c *TakeOrderCommand) setOrderNumber(orderNumber kernel.ID) error {
	if err := orderNumber.ValidateAs("order number"); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}
