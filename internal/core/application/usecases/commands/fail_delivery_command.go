package commands

import (
	"errors"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/guard"
)

var (
	ErrFailDeliveryCommandIsNotConstructed = errors.New(
		"FailDeliveryCommand must be created via NewFailDeliveryCommand constructor",
	)
)

// FailDeliveryCommand ends the active delivery as failed at the order destination.
type FailDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.ID
	comment     *string

	guard guard.ConstructorGuard
}

func NewFailDeliveryCommand(orderNumber kernel.ID, comment *string) (FailDeliveryCommand, error) {
	cmd := FailDeliveryCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setComment(comment),
	); err != nil {
		return FailDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c FailDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrFailDeliveryCommandIsNotConstructed)
}

func (c FailDeliveryCommand) OrderNumber() kernel.ID {
	return c.orderNumber
}

func (c FailDeliveryCommand) Comment() *string {
	return copyComment(c.comment)
}

func (c *FailDeliveryCommand) setOrderNumber(orderNumber kernel.ID) error {
	if err := orderNumber.ValidateAs("order number"); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *FailDeliveryCommand) setComment(comment *string) error {
	if err := validateComment(comment); err != nil {
		return err
	}

	c.comment = copyComment(comment)
	return nil
}
