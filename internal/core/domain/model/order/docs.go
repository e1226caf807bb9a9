// Package order provides the Order entity of the delivery desk.
//
// An order is a shipment request identified by its unique number. It carries a
// client location (origin), a destination location, a delivery category and two
// numeric attributes, weight and max likes, used for sorting.
//
// Orders are reference data: they are imported as a whole collection and are
// never mutated afterwards. Delivery attempts live in the delivery package and
// point back at orders by number.
//
// Key business rules:
//   - Order numbers, client, destination and category ids must be positive
//   - Name, weight and max likes are kept as imported
//   - Order numbers are unique across an imported collection (ValidateCatalog)
package order
