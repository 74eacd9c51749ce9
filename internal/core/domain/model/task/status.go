package task

import (
	"fmt"

	"parcelnet/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipper task.
//
// State transitions:
//
//	Pending ──> InProgress ──> Completed
//	   │             │
//	   │             └──> Failed
//	   └──> Cancelled
//
// A pickup recorded in a single handheld scan may jump straight from
// Pending to Completed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status when a task is assigned to a shipper.
	Pending

	// InProgress indicates the shipper has started working the task.
	InProgress

	// Completed indicates the task finished successfully.
	Completed

	// Failed indicates the task could not be finished.
	Failed

	// Cancelled indicates the task was withdrawn before completion.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		Failed:     "failed",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		Failed:     "failed",
		Cancelled:  "cancelled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed || s == Cancelled
}
