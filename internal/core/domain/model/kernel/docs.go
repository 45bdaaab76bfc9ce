// Package kernel holds the value objects shared by the menu and order aggregates.
//
//   - ID: positive integer identifier assigned by a store
//   - Price: strictly positive amount of money
//
// Both are plain value types; their constructors enforce the invariants and
// Validate re-checks values that arrive from outside the domain.
package kernel
