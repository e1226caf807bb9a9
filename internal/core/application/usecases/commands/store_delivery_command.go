package commands

import (
	"errors"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/guard"
)

var (
	ErrStoreDeliveryCommandIsNotConstructed = errors.New(
		"StoreDeliveryCommand must be created via NewStoreDeliveryCommand constructor",
	)
)

// StoreDeliveryCommand parks the active delivery of an order at a location.
type StoreDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.ID
	locationID  kernel.ID
	comment     *string

	guard guard.ConstructorGuard
}

// NewStoreDeliveryCommand validates ids and the comment length. A nil
// comment keeps the stored one.
func NewStoreDeliveryCommand(orderNumber, locationID kernel.ID, comment *string) (StoreDeliveryCommand, error) {
	cmd := StoreDeliveryCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setLocationID(locationID),
		cmd.setComment(comment),
	); err != nil {
		return StoreDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c StoreDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStoreDeliveryCommandIsNotConstructed)
}

func (c StoreDeliveryCommand) OrderNumber() kernel.ID {
	return c.orderNumber
}

func (c StoreDeliveryCommand) LocationID() kernel.ID {
	return c.locationID
}

func (c StoreDeliveryCommand) Comment() *string {
	return copyComment(c.comment)
}

func (c *StoreDeliveryCommand) setOrderNumber(orderNumber kernel.ID) error {
	if err := orderNumber.ValidateAs("order number"); err != nil {
		return err
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *StoreDeliveryCommand) setLocationID(locationID kernel.ID) error {
	if err := locationID.ValidateAs("location id"); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *StoreDeliveryCommand) setComment(comment *string) error {
	if err := validateComment(comment); err != nil {
		return err
	}

	c.comment = copyComment(comment)
	return nil
}
