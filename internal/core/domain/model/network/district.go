package network

import (
	"errors"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/guard"
)

var ErrDistrictIsNotConstructed = errors.New("District must be created via NewDistrict constructor")

// District is a named group of locations fixed to one region.
type District struct {
	id     kernel.ID
	name   string
	region Region

	guard guard.ConstructorGuard
}

// NewDistrict validates the id and region of a district. The name is kept as given.
//
// Example:
//
//	d, err := network.NewDistrict(1, "Harbor", network.Central)
func NewDistrict(id kernel.ID, name string, region Region) (*District, error) {
	d := &District{name: name, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setID(id),
		d.setRegion(region),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the district was built by NewDistrict.
func (d *District) Validate() error {
	if d == nil {
		return ErrDistrictIsNotConstructed
	}
	return d.guard.Validate(ErrDistrictIsNotConstructed)
}

func (d *District) ID() kernel.ID {
	return d.id
}

func (d *District) Name() string {
	return d.name
}

func (d *District) Region() Region {
	return d.region
}

func (d *District) setID(id kernel.ID) error {
	if err := id.ValidateAs("district id"); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *District) setRegion(region Region) error {
	if err := region.Validate(); err != nil {
		return err
	}
	d.region = region
	return nil
}
