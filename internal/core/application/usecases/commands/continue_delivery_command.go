package commands

import (
	"errors"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/guard"
)

var (
	ErrContinueDeliveryCommandIsNotConstructed = errors.New(
		"ContinueDeliveryCommand must be created via NewContinueDeliveryCommand constructor",
	)
)

// ContinueDeliveryCommand resumes a stored delivery. A nil comment keeps the stored one.
type ContinueDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.ID
	comment     *string

	guard guard.ConstructorGuard
}

func NewContinueDeliveryCommand(orderNumber kernel.ID, comment *string) (ContinueDeliveryCommand, error) {
	cmd := ContinueDeliveryCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setComment(comment),
	); err != nil {
		return ContinueDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c ContinueDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrContinueDeliveryCommandIsNotConstructed)
}

func (c ContinueDeliveryCommand) OrderNumber() kernel.ID {
	return c.orderNumber
}

func (c ContinueDeliveryCommand) Comment() *string {
	return copyComment(c.comment)
}

func (c *ContinueDeliveryCommand) setOrderNumber(orderNumber kernel.ID) error {
	if err := orderNumber.ValidateAs("order number"); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *ContinueDeliveryCommand) setComment(comment *string) error {
	if err := validateComment(comment); err != nil {
		return err
	}

	c.comment = copyComment(comment)
	return nil
}
