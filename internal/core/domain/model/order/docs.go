// Package order provides the Order aggregate of the kitchenpos point of sale:
// a customer order placed for delivery, for takeout or to be eaten in at an
// order table, and the state machine it moves through.
//
// The package includes:
//   - Order: the aggregate root holding type, status, line items and destination
//   - LineItem: a menu, a quantity and the menu price captured at order time
//   - Type: DELIVERY, TAKEOUT or EAT_IN
//   - Status: WAITING, ACCEPTED, SERVED, DELIVERING, DELIVERED, COMPLETED
//   - Transition: the lookup table of source status and side effect per order type
//   - StatusChangedEvent: recorded on creation and on every transition
//
// Key business rules:
//   - An order has at least one line item and a known type
//   - A DELIVERY order carries a non-empty delivery address
//   - An EAT_IN order references an order table
//   - Status only advances along
//     WAITING -> ACCEPTED -> SERVED -> (DELIVERING -> DELIVERED) -> COMPLETED,
//     where the bracketed states are visited by DELIVERY orders only
package order
