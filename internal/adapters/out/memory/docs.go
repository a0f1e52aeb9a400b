// Package memory holds the process-local storage adapters. State lives for the
// lifetime of the process and is lost on restart.
//
// Each repository owns one collection behind its own sync.RWMutex:
//   - menurepo: the menu catalog, append-only, unique by name
//   - orderrepo: the order collection, append-only, status updated in place
//
// Writers take the exclusive lock, readers the shared lock, and values handed
// to callers never alias mutable state. No I/O happens while a lock is held.
package memory
