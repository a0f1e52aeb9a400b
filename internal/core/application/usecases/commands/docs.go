// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: construction-time validation,
// a guard against zero-value commands, and a handler that talks to ports.
package commands
