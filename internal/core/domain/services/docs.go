// Package services provides the domain services of the delivery desk. They
// operate on in-memory collections and never perform I/O.
//
// The package includes:
//   - DeliveryLifecycle: applies take/store/continue/complete/fail/lose and
//     the bulk variants to a delivery ledger
//   - OrderQuery: filters, projects, searches, sorts and paginates orders
//   - DashboardAggregator: counts completed deliveries by destination region
//
// The boundary layer loads collections, calls a service, and persists the
// ledger only when the service reports success.
package services
