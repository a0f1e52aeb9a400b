// Package services provides domain services that implement business operations
// spanning more than one aggregate instance.
//
// The package includes:
//   - OrderProgressor: Advances a batch of orders one lifecycle step each
//
// Domain services hold no state and perform no I/O, so they can run inside
// a repository's critical section.
package services
