// Package delivery provides the Delivery entity, its Status state machine and
// the Ledger collection of delivery records.
//
// A delivery is one attempt to fulfil an order. Records are created by taking
// an order (or implicitly by completing it), mutated in place by status
// transitions and never deleted, so the ledger is a flat, growing history.
//
// Key business rules:
//   - A delivery is active while it is InProgress or Stored
//   - Complete, Failed and Lost are terminal for the record
//   - StartedAt is set on creation and never cleared
//   - EndedAt is set only when the record reaches a terminal status
//   - For a given order and user at most one record is active at a time
//
// Status parsing at the import boundary is lenient (ParseStatus); the rest of
// the system only ever sees the canonical enum.
package delivery
