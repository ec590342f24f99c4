// Package kernel holds the primitives shared by every kitchenpos aggregate:
// the UUID identity value object and the DomainEvent contract that aggregates
// use to announce state changes.
package kernel
