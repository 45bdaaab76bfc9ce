// Package order provides the Order aggregate and its delivery status.
//
// An order references one or more menu items by id (duplicates allowed) and moves
// through a fixed progression, one step at a time:
//
//	Preparing ──> Out for Delivery ──> Delivered
//
// Status never regresses and Delivered is final. Orders are created in Preparing
// by NewOrder; RestoreOrder rebuilds an order that a store already holds.
package order
