package network

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"deliverydesk/internal/core/domain/model/kernel"
	"deliverydesk/internal/pkg/guard"
)

var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location is a pickup, drop-off or storage point inside a district.
type Location struct {
	id         kernel.ID
	name       string
	districtID kernel.ID
	isPhysical bool

	guard guard.ConstructorGuard
}

// NewLocation validates the id and owning district of a location.
func NewLocation(id kernel.ID, name string, districtID kernel.ID, isPhysical bool) (*Location, error) {
	l := &Location{
		name:       name,
		isPhysical: isPhysical,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setDistrictID(districtID),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the location was built by NewLocation.
func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) ID() kernel.ID {
	return l.id
}

func (l *Location) Name() string {
	return l.name
}

func (l *Location) DistrictID() kernel.ID {
	return l.districtID
}

func (l *Location) IsPhysical() bool {
	return l.isPhysical
}

// Initial returns the first alphabetic character of the name. ASCII letters
// are uppercased; other letters are returned unchanged. The second result is
// false when the name has no letters.
func (l *Location) Initial() (rune, bool) {
	for _, r := range l.name {
		if !unicode.IsLetter(r) {
			continue
		}
		if r < utf8.RuneSelf {
			r = unicode.ToUpper(r)
		}
		return r, true
	}
	return 0, false
}

func (l *Location) setID(id kernel.ID) error {
	if err := id.ValidateAs("location id"); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setDistrictID(districtID kernel.ID) error {
	if err := districtID.ValidateAs("district id"); err != nil {
		return err
	}
	l.districtID = districtID
	return nil
}
