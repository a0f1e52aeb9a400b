// Package order provides domain entities and business logic for order management.
// It implements the Order aggregate root with its delivery lifecycle.
//
// The package includes:
//   - Order: The aggregate root holding lines, customer, status and creation time
//   - Customer: The recipient's name and delivery address, embedded by value
//   - Line: A reference to a menu item by id
//   - Status: A state machine that enforces forward-only status transitions
//
// Key business rules:
//   - Orders must have a valid id, at least one line and a complete customer
//   - Lines and customer are fixed at creation; status is the only mutable field
//   - Status follows Preparing -> Out for Delivery -> Delivered, and Delivered is terminal
package order
