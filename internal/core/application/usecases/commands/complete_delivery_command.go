package commands

import (
	"errors"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/guard"
)

var (
	ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
		"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
	)
)

// CompleteDeliveryCommand finishes an order at its client location.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.ID

	guard guard.ConstructorGuard
}

func NewCompleteDeliveryCommand(orderNumber kernel.ID) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setOrderNumber(orderNumber); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) OrderNumber() kernel.ID {
	return c.orderNumber
}

func (c *CompleteDeliveryCommand) setOrderNumber(orderNumber kernel.ID) error {
	if err := orderNumber.ValidateAs("order number"); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}
