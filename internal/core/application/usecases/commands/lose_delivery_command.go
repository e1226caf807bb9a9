package commands

import (
	"errors"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/guard"
)

var (
	ErrLoseDeliveryCommandIsNotConstructed = errors.New(
		"LoseDeliveryCommand must be created via NewLoseDeliveryCommand constructor",
	)
)

// LoseDeliveryCommand ends the active delivery as lost, keeping its last location.
type LoseDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.ID
	comment     *string

	guard guard.ConstructorGuard
}

func NewLoseDeliveryCommand(orderNumber kernel.ID, comment *string) (LoseDeliveryCommand, error) {
	cmd := LoseDeliveryCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setComment(comment),
	); err != nil {
		return LoseDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c LoseDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrLoseDeliveryCommandIsNotConstructed)
}

func (c LoseDeliveryCommand) OrderNumber() kernel.ID {
	return c.orderNumber
}

func (c LoseDeliveryCommand) Comment() *string {
	return copyComment(c.comment)
}

func (c *LoseDeliveryCommand) setOrderNumber(orderNumber kernel.ID) error {
	if err := orderNumber.ValidateAs("order number"); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *LoseDeliveryCommand) setComment(comment *string) error {
	if err := validateComment(comment); err != nil {
		return err
	}

	c.comment = copyComment(comment)
	return nil
}
