package ports

import (
	"fmt"
	"strings"

	"deliverydesk/internal/pkg/errs"
)

// Collection names one stored JSON array.
type Collection string

const (
	Districts          Collection = "districts"
	Locations          Collection = "locations"
	DeliveryCategories Collection = "delivery_categories"
	Orders             Collection = "orders"
	Deliveries         Collection = "deliveries"
)

// Collections lists every collection in import order: reference data first.
func Collections() []Collection {
	return []Collection{Districts, Locations, DeliveryCategories, Orders, Deliveries}
}

// IsReference reports whether the collection is seed data whose import
// stamps the schema version.
func (c Collection) IsReference() bool {
	return c != Deliveries
}

func (c Collection) Validate() error {
	for _, known := range Collections() {
		if c == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("collection", fmt.Errorf("%q is not a known collection", string(c)))
}

// ParseCollection accepts the canonical names case-insensitively; dashes
// are read as underscores.
func ParseCollection(raw string) (Collection, error) {
	c := Collection(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_"))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}
