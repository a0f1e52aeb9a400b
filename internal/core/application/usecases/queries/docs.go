// Package queries contains read-only operations. Query handlers return plain
// response structs that never alias stored state.
package queries
