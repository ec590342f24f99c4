package order

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// Transition names a status change an order can be asked to make.
type Transition int

const (
	TransitionAccept Transition = iota + 1
	TransitionServe
	TransitionStartDelivery
	TransitionCompleteDelivery
	TransitionComplete
)

// SideEffect is work outside the Order aggregate that a transition requires.
// The application layer performs it in the same unit of work.
type SideEffect int

const (
	NoSideEffect SideEffect = iota

	// RequestDelivery asks the delivery riders to pick the order up. Failure
	// aborts the transition.
	RequestDelivery

	// ClearOrderTable frees the table the order was eaten at.
	ClearOrderTable
)

type transitionRule struct {
	name    string
	from    map[Type]Status
	to      Status
	effects map[Type]SideEffect
}

// transitions is the single source of truth for the state machine. A type
// missing from a rule's from map cannot make that transition at all.
var transitions = map[Transition]transitionRule{
	TransitionAccept: {
		name:    "accept",
		from:    map[Type]Status{Delivery: Waiting, Takeout: Waiting, EatIn: Waiting},
		to:      Accepted,
		effects: map[Type]SideEffect{Delivery: RequestDelivery},
	},
	TransitionServe: {
		name: "serve",
		from: map[Type]Status{Delivery: Accepted, Takeout: Accepted, EatIn: Accepted},
		to:   Served,
	},
	TransitionStartDelivery: {
		name: "start delivery",
		from: map[Type]Status{Delivery: Served},
		to:   Delivering,
	},
	TransitionCompleteDelivery: {
		name: "complete delivery",
		from: map[Type]Status{Delivery: Delivering},
		to:   Delivered,
	},
	TransitionComplete: {
		name:    "complete",
		from:    map[Type]Status{Delivery: Delivered, Takeout: Served, EatIn: Served},
		to:      Completed,
		effects: map[Type]SideEffect{EatIn: ClearOrderTable},
	},
}

func (t Transition) String() string {
	if r, ok := transitions[t]; ok {
		return r.name
	}
	return fmt.Sprintf("transition(%d)", int(t))
}

// Next returns the status an order of type orderType moves to from current.
// It fails with errs.StateConflictError when the type cannot make the
// transition or current is not the required source status.
func (t Transition) Next(orderType Type, current Status) (Status, error) {
	rule, ok := transitions[t]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("transition", fmt.Errorf("%d is not a valid transition", int(t)))
	}

	source, ok := rule.from[orderType]
	if !ok {
		return Unknown, errs.NewStateConflictError("order", fmt.Sprintf("of type %s cannot %s", orderType, rule.name))
	}
	if current != source {
		return Unknown, errs.NewStateConflictError("order", fmt.Sprintf("in status %s cannot %s, status must be %s", current, rule.name, source))
	}

	return rule.to, nil
}

// SideEffect returns the external work the transition requires for orderType.
func (t Transition) SideEffect(orderType Type) SideEffect {
	return transitions[t].effects[orderType]
}
