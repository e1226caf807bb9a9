package kernel

import (
	"strconv"

	"deliverydesk/internal/pkg/errs"
)

// ID identifies districts, locations, categories, orders, deliveries and users.
// Valid identifiers are positive; the zero value means "unset".
//
// Example:
//
//	id := kernel.ID(42)
//	if err := id.ValidateAs("order number"); err != nil {
//	    return err
//	}
type ID uint64

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool {
	return id == 0
}

// Validate rejects the zero identifier.
func (id ID) Validate() error {
	return id.ValidateAs("id")
}

// ValidateAs rejects the zero identifier and names the offending parameter.
func (id ID) ValidateAs(paramName string) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

// String renders the identifier as a decimal number.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// OptionalID converts a nullable wire value into a pointer, mapping zero to nil.
func OptionalID(raw *uint64) *ID {
	if raw == nil || *raw == 0 {
		return nil
	}
	id := ID(*raw)
	return &id
}
