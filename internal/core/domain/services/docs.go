// Package services holds domain rules that span more than one aggregate.
//
//   - ItemReferenceChecker: every item of an order must exist on the menu
//   - StatusProgression: one scheduler tick over a set of orders
package services
