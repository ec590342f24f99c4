package order

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	WAITING ──> ACCEPTED ──> SERVED ──┬──────────────────────────────> COMPLETED
//	                                  │                                   ▲
//	                                  └──> DELIVERING ──> DELIVERED ──────┘
//	                                       (DELIVERY orders only)
//
// WAITING is set only on creation and COMPLETED is final. The allowed source
// status of each transition is kept in the Transition table.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota

	// Waiting is the status of a freshly created order.
	Waiting

	// Accepted means the restaurant took the order. For DELIVERY orders the
	// delivery was requested from the riders at this point.
	Accepted

	// Served means the food is ready and handed over (to the table, to the
	// takeout customer or to the rider).
	Served

	// Delivering means a rider is on the way.
	Delivering

	// Delivered means the rider handed the order to the customer.
	Delivered

	// Completed is the final status.
	Completed
)

var statusNames = map[Status]string{
	Waiting:    "WAITING",
	Accepted:   "ACCEPTED",
	Served:     "SERVED",
	Delivering: "DELIVERING",
	Delivered:  "DELIVERED",
	Completed:  "COMPLETED",
}

// Validate checks that s is one of the listed statuses. Unknown is invalid.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper case name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "UNKNOWN"
}

// IsFinal reports whether no transition leaves s.
func (s Status) IsFinal() bool {
	return s == Completed
}

// ParseStatus maps an upper case name (e.g. "SERVED") back to a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}
