package order

import (
	"fmt"

	"kitchenpos/internal/pkg/errs"
)

// Type tells how an order reaches the customer. The zero value is invalid.
type Type int

const (
	UnknownType Type = iota
	Delivery
	Takeout
	EatIn
)

var typeNames = map[Type]string{
	Delivery: "DELIVERY",
	Takeout:  "TAKEOUT",
	EatIn:    "EAT_IN",
}

// Types lists every valid order type.
func Types() []Type {
	return []Type{Delivery, Takeout, EatIn}
}

// ParseType maps the external name (e.g. "EAT_IN") to a Type. An empty name is
// reported as a missing value.
func ParseType(name string) (Type, error) {
	if name == "" {
		return UnknownType, errs.NewValueIsRequiredError("order type")
	}
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%q is not a valid order type", name))
}

// Validate reports UnknownType as missing and any other unlisted value as invalid.
func (t Type) Validate() error {
	if t == UnknownType {
		return errs.NewValueIsRequiredError("order type")
	}
	if _, ok := typeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "UNKNOWN"
}
