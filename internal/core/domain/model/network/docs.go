// Package network models the reference data of the logistics network:
// regions, districts, locations and delivery categories.
//
// Reference data is immutable once imported and is replaced wholesale on
// re-import. Every entity is created through its constructor, which validates
// identifiers and names and joins all validation errors together.
//
// Key relationships:
//   - A District belongs to exactly one Region (East, Central or West)
//   - A Location belongs to exactly one District
//   - Orders reference Locations as client and destination
package network
