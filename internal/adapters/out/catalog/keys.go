// Package catalog stores the domain collections as JSON arrays in a
// key-value store and reads them back with lenient decoding.
package catalog

import "deliverydesk/internal/core/ports"

const (
	keyPrefix = "ds:"

	// SchemaVersionKey holds the version of the stored reference data.
	SchemaVersionKey = keyPrefix + "schema_version"

	// CurrentSchemaVersion is stamped by reference imports. Any other stored
	// value is rejected on read.
	CurrentSchemaVersion = "1"

	emptyArray = "[]"
)

// Key returns the storage key of a collection, e.g. "ds:orders".
func Key(c ports.Collection) string {
	return keyPrefix + string(c)
}
