// Package services provides domain services for rules that span more than one
// aggregate of the kitchenpos order lifecycle.
//
// The package includes:
//   - LineItemMatcher: checks requested line items against the menu catalog
//     and turns them into order line items with snapshot prices
package services
