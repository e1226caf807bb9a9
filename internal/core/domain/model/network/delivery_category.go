package network

import (
	"errors"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/guard"
)

var ErrDeliveryCategoryIsNotConstructed = errors.New(
	"DeliveryCategory must be created via NewDeliveryCategory constructor",
)

// DeliveryCategory is reference-only; orders point at it by id.
type DeliveryCategory struct {
	id   kernel.ID
	name string

	guard guard.ConstructorGuard
}

func NewDeliveryCategory(id kernel.ID, name string) (*DeliveryCategory, error) {
	c := &DeliveryCategory{name: name, guard: guard.NewConstructorGuard()}

	if err := c.setID(id); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *DeliveryCategory) Validate() error {
	if c == nil {
		return ErrDeliveryCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrDeliveryCategoryIsNotConstructed)
}

func (c *DeliveryCategory) ID() kernel.ID {
	return c.id
}

func (c *DeliveryCategory) Name() string {
	return c.name
}

func (c *DeliveryCategory) setID(id kernel.ID) error {
	if err := id.ValidateAs("delivery category id"); err != nil {
		return err
	}
	c.id = id
	return nil
}
