package delivery

import (
	"errors"
	"fmt"
	"time"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
	// through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")
)

// Delivery is one attempt to fulfil an order.
//
// Delivery follows these invariants:
//   - id and order number are positive
//   - startedAt is set on creation and never cleared
//   - endedAt is set only in a terminal status
//   - terminal records never transition again
type Delivery struct {
	id          kernel.ID
	orderNumber kernel.ID
	status      Status

	// locationID is where the cargo currently rests: the storage point while
	// Stored, the client on Complete, the destination on Failed.
	locationID *kernel.ID

	startedAt *time.Time
	endedAt   *time.Time
	comment   *string

	// userID is nil for records imported without an owner; those belong to
	// whoever is the current user.
	userID *kernel.ID

	isConstructed bool
}

// NewDelivery starts a fresh InProgress delivery for an order.
//
// Example:
//
//	d, err := delivery.NewDelivery(ledger.NextID(), 42, &currentUser, time.Now().UTC())
func NewDelivery(id, orderNumber kernel.ID, userID *kernel.ID, startedAt time.Time) (*Delivery, error) {
	d := &Delivery{
		status:        InProgress,
		userID:        copyID(userID),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderNumber(orderNumber),
		d.setStartedAt(&startedAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Snapshot is the full state of a delivery record, used by persistence.
type Snapshot struct {
	ID          kernel.ID
	OrderNumber kernel.ID
	Status      Status
	LocationID  *kernel.ID
	StartedAt   *time.Time
	EndedAt     *time.Time
	Comment     *string
	UserID      *kernel.ID
}

// RestoreDelivery rebuilds a record from storage or import. Historic records
// may lack startedAt, so only ids and status are mandatory.
func RestoreDelivery(s Snapshot) (*Delivery, error) {
	d := &Delivery{
		locationID:    copyID(s.LocationID),
		startedAt:     copyTime(s.StartedAt),
		comment:       copyString(s.Comment),
		userID:        copyID(s.UserID),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(s.ID),
		d.setOrderNumber(s.OrderNumber),
		d.setStatus(s.Status),
		d.setEndedAt(s.Status, s.EndedAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// Snapshot returns a detached copy of the record state.
func (d *Delivery) Snapshot() Snapshot {
	return Snapshot{
		ID:          d.id,
		OrderNumber: d.orderNumber,
		Status:      d.status,
		LocationID:  copyID(d.locationID),
		StartedAt:   copyTime(d.startedAt),
		EndedAt:     copyTime(d.endedAt),
		Comment:     copyString(d.comment),
		UserID:      copyID(d.userID),
	}
}

func (d *Delivery) ID() kernel.ID {
	return d.id
}

func (d *Delivery) OrderNumber() kernel.ID {
	return d.orderNumber
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) LocationID() *kernel.ID {
	return copyID(d.locationID)
}

func (d *Delivery) StartedAt() *time.Time {
	return copyTime(d.startedAt)
}

func (d *Delivery) EndedAt() *time.Time {
	return copyTime(d.endedAt)
}

func (d *Delivery) Comment() *string {
	return copyString(d.comment)
}

func (d *Delivery) UserID() *kernel.ID {
	return copyID(d.userID)
}

// IsActive reports whether the record is InProgress or Stored.
func (d *Delivery) IsActive() bool {
	return d.status.IsActive()
}

// BelongsTo reports whether the record is owned by the user. Records
// without an owner belong to everybody.
func (d *Delivery) BelongsTo(userID kernel.ID) bool {
	return d.userID == nil || *d.userID == userID
}

// Store parks the cargo at a location. A nil comment keeps the old one.
func (d *Delivery) Store(locationID kernel.ID, comment *string) error {
	if err := locationID.ValidateAs("location id"); err != nil {
		return err
	}

	status, err := d.status.Store()
	if err != nil {
		return err
	}

	d.status = status
	d.locationID = &locationID
	d.overwriteComment(comment)
	return nil
}

// Continue picks stored cargo up again and clears its location.
func (d *Delivery) Continue(comment *string) error {
	status, err := d.status.Continue()
	if err != nil {
		return err
	}

	d.status = status
	d.locationID = nil
	d.overwriteComment(comment)
	return nil
}

// Complete finishes the delivery back at the client location.
func (d *Delivery) Complete(at time.Time, clientID kernel.ID) error {
	status, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = status
	d.endedAt = &at
	d.locationID = &clientID
	return nil
}

// Fail finishes the delivery at the destination location.
func (d *Delivery) Fail(at time.Time, destinationID kernel.ID, comment *string) error {
	status, err := d.status.Fail()
	if err != nil {
		return err
	}

	d.status = status
	d.endedAt = &at
	d.locationID = &destinationID
	d.overwriteComment(comment)
	return nil
}

// Lose finishes the delivery as lost. The location is left untouched.
func (d *Delivery) Lose(at time.Time, comment *string) error {
	status, err := d.status.Lose()
	if err != nil {
		return err
	}

	d.status = status
	d.endedAt = &at
	d.overwriteComment(comment)
	return nil
}

func (d *Delivery) overwriteComment(comment *string) {
	if comment != nil {
		d.comment = copyString(comment)
	}
}

func (d *Delivery) setID(id kernel.ID) error {
	if err := id.ValidateAs("delivery id"); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderNumber(orderNumber kernel.ID) error {
	if err := orderNumber.ValidateAs("order number"); err != nil {
		return err
	}
	d.orderNumber = orderNumber
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Delivery) setStartedAt(startedAt *time.Time) error {
	if startedAt == nil || startedAt.IsZero() {
		return errs.NewValueIsRequiredError("started at")
	}
	d.startedAt = copyTime(startedAt)
	return nil
}

func (d *Delivery) setEndedAt(status Status, endedAt *time.Time) error {
	if endedAt != nil && !status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"ended at is invalid",
			fmt.Errorf("%s delivery cannot have an end time", status),
		)
	}
	d.endedAt = copyTime(endedAt)
	return nil
}

func copyID(id *kernel.ID) *kernel.ID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
