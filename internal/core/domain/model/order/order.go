package order

import (
	"errors"

	"deliverydesk/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a shipment request. The number is the natural key used by
// deliveries and by every query.
//
// Order follows these invariants:
//   - Number, client, destination and delivery category ids are positive
//   - Name, weight and max likes are stored as given
//   - Can only be created through NewOrder
type Order struct {
	// number is the unique natural key of the order
	number kernel.ID

	name string

	// clientID is the origin location; completed deliveries end here
	clientID kernel.ID

	// destinationID is the target location; failed deliveries end here
	destinationID kernel.ID

	deliveryCategoryID kernel.ID

	maxLikes float64
	weight   float64

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// Attributes groups the descriptive values of an order.
type Attributes struct {
	Name               string
	ClientID           kernel.ID
	DestinationID      kernel.ID
	DeliveryCategoryID kernel.ID
	MaxLikes           float64
	Weight             float64
}

// NewOrder creates an Order with validation. All validation failures are
// joined into one error.
//
// Example:
//
//	o, err := order.NewOrder(42, order.Attributes{
//	    Name:               "Chiral crystals",
//	    ClientID:           100,
//	    DestinationID:      200,
//	    DeliveryCategoryID: 1,
//	    MaxLikes:           12,
//	    Weight:             3.5,
//	})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(number kernel.ID, attrs Attributes) (*Order, error) {
	o := &Order{
		name:          attrs.Name,
		maxLikes:      attrs.MaxLikes,
		weight:        attrs.Weight,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setClientID(attrs.ClientID),
		o.setDestinationID(attrs.DestinationID),
		o.setDeliveryCategoryID(attrs.DeliveryCategoryID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// Number returns the order's natural key.
func (o *Order) Number() kernel.ID {
	return o.number
}

func (o *Order) Name() string {
	return o.name
}

// ClientID returns the origin location id.
func (o *Order) ClientID() kernel.ID {
	return o.clientID
}

// DestinationID returns the target location id.
func (o *Order) DestinationID() kernel.ID {
	return o.destinationID
}

func (o *Order) DeliveryCategoryID() kernel.ID {
	return o.deliveryCategoryID
}

func (o *Order) MaxLikes() float64 {
	return o.maxLikes
}

func (o *Order) Weight() float64 {
	return o.weight
}

// Attributes returns a copy of the descriptive values.
func (o *Order) Attributes() Attributes {
	return Attributes{
		Name:               o.name,
		ClientID:           o.clientID,
		DestinationID:      o.destinationID,
		DeliveryCategoryID: o.deliveryCategoryID,
		MaxLikes:           o.maxLikes,
		Weight:             o.weight,
	}
}

func (o *Order) setNumber(number kernel.ID) error {
	if err := number.ValidateAs("order number"); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setClientID(id kernel.ID) error {
	if err := id.ValidateAs("client id"); err != nil {
		return err
	}
	o.clientID = id
	return nil
}

func (o *Order) setDestinationID(id kernel.ID) error {
	if err := id.ValidateAs("destination id"); err != nil {
		return err
	}
	o.destinationID = id
	return nil
}

func (o *Order) setDeliveryCategoryID(id kernel.ID) error {
	if err := id.ValidateAs("delivery category id"); err != nil {
		return err
	}
	o.deliveryCategoryID = id
	return nil
}
