// Package kernel provides core domain primitives shared by the menu and order models.
//
// The package includes:
//   - ID: A positive integer identifier assigned by the owning collection
//   - Clock: A source of the current time, injected so timestamps are testable
//
// These primitives are immutable and safe for concurrent use.
package kernel
