package services

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderProgressor advances orders along Preparing -> Out for Delivery -> Delivered.
//
// Business rules:
//   - Every non-terminal order moves exactly one step per call
//   - Delivered orders are left untouched
//   - An order whose status is not recognized is left untouched and reported,
//     and the remaining orders are still processed
//
// Example usage:
//
//	progressor := services.NewOrderProgressor()
//	progress := progressor.Progress(orders)
//	for _, failure := range progress.Failures {
//	    logger.Error("order left untouched", "order_id", failure.OrderID, "error", failure.Err)
//	}
type OrderProgressor struct{}

// NewOrderProgressor creates a new OrderProgressor instance.
func NewOrderProgressor() OrderProgressor {
	return OrderProgressor{}
}

// Progress summarizes one pass over a batch of orders.
type Progress struct {
	// Advanced counts orders that moved one step.
	Advanced int
	// Terminal counts delivered orders that were left as they are.
	Terminal int
	// Failures lists orders that could not be advanced.
	Failures []Failure
}

// Failure records an order that was skipped because it could not be advanced.
type Failure struct {
	OrderID kernel.ID
	Status  order.Status
	Err     error
}

// Progress advances every order in orders by one step. The result does not
// depend on the order of orders, since each transition only reads its own status.
func (p OrderProgressor) Progress(orders []*order.Order) Progress {
	var progress Progress

	for _, o := range orders {
		if err := o.Status().Validate(); err != nil {
			progress.Failures = append(progress.Failures, Failure{
				OrderID: o.ID(),
				Status:  o.Status(),
				Err:     err,
			})
			continue
		}

		if o.Status().IsTerminal() {
			progress.Terminal++
			continue
		}

		if err := o.Advance(); err != nil {
			progress.Failures = append(progress.Failures, Failure{
				OrderID: o.ID(),
				Status:  o.Status(),
				Err:     err,
			})
			continue
		}

		progress.Advanced++
	}

	return progress
}
