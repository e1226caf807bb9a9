// Package kernel provides the shared primitives of the delivery desk domain.
//
// The package includes:
//   - ID: a positive integer identifier; zero is reserved as "unset"
//   - ParseFlag: the lenient boolean parser used when importing reference data
//
// Every other model package (network, order, delivery) builds on these types.
package kernel
