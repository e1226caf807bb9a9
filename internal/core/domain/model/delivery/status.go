package delivery

import (
	"fmt"
	"strings"

	"deliverydesk/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery record.
//
// State transitions:
//
//	(new) ──> InProgress ──store──> Stored
//	              ^                   │
//	              └─────continue──────┘
//
//	InProgress | Stored ──> Complete | Failed | Lost
//
// Complete, Failed and Lost are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// InProgress is the status of a freshly taken delivery.
	InProgress

	// Stored means the cargo was parked at a location and will be picked up again.
	Stored

	// Complete means the cargo reached the client location.
	Complete

	// Failed means the attempt ended at the destination without success.
	Failed

	// Lost means the cargo is gone; the last known location is kept.
	Lost
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		InProgress: "InProgress",
		Stored:     "Stored",
		Complete:   "Complete",
		Failed:     "Failed",
		Lost:       "Lost",
	}
}

// Validate checks if the Status value is one of the five known states.
func (s Status) Validate() error {
	if s < InProgress || s > Lost {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether further transitions are legal.
func (s Status) IsActive() bool {
	return s == InProgress || s == Stored
}

// IsTerminal reports whether the record is finished.
func (s Status) IsTerminal() bool {
	return s == Complete || s == Failed || s == Lost
}

// Store transitions InProgress to Stored.
//
// Returns:
//   - (Stored, nil) on valid transition
//   - (0, StateConflictError) for any other current status
func (s Status) Store() (Status, error) {
	if s != InProgress {
		return 0, errs.NewStateConflictError("can only store an in-progress delivery")
	}
	return Stored, nil
}

// Continue transitions Stored back to InProgress.
func (s Status) Continue() (Status, error) {
	if s != Stored {
		return 0, errs.NewStateConflictError("can only continue a stored delivery")
	}
	return InProgress, nil
}

// Complete finishes an active delivery successfully.
func (s Status) Complete() (Status, error) {
	return s.finish(Complete)
}

// Fail finishes an active delivery unsuccessfully.
func (s Status) Fail() (Status, error) {
	return s.finish(Failed)
}

// Lose finishes an active delivery as lost.
func (s Status) Lose() (Status, error) {
	return s.finish(Lost)
}

func (s Status) finish(target Status) (Status, error) {
	if !s.IsActive() {
		return 0, errs.NewStateConflictError(
			fmt.Sprintf("cannot mark a %s delivery as %s", strings.ToLower(s.String()), strings.ToLower(target.String())),
		)
	}
	return target, nil
}

// ParseStatus reads a status leniently: case-insensitive names plus the
// aliases "in progress", "in_progress", "completed" and "fail".
//
// Example:
//
//	status, err := delivery.ParseStatus("IN_PROGRESS") // InProgress
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "in progress", "in_progress", "inprogress", "in-progress":
		return InProgress, nil
	case "stored":
		return Stored, nil
	case "complete", "completed":
		return Complete, nil
	case "failed", "fail":
		return Failed, nil
	case "lost":
		return Lost, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid delivery status", raw),
	)
}
