package services

import (
	"restopos/internal/core/domain/model/courier"
	"restopos/internal/core/domain/model/order"
	"restopos/internal/core/domain/model/table"
)

// StatusReconciler recomputes the dependent statuses that the lifecycle
// coordinator normally keeps in step with orders. Because the archive and
// release writes are not transactional with the order write, a crash between
// them can leave a table occupied without an order or a courier busy without
// a delivery; reconciliation derives the expected state from the live orders
// alone and reports what has to change.
//
// Example:
//
//	reconciler := services.NewStatusReconciler()
//	expected := reconciler.ExpectedTableStatus(tbl, openOrders)
//	if expected != tbl.Status() {
//	    // repair the table document
//	}
type StatusReconciler struct{}

// NewStatusReconciler creates a new StatusReconciler instance.
func NewStatusReconciler() StatusReconciler {
	return StatusReconciler{}
}

// ExpectedTableStatus derives the status a table should have given the open
// orders: occupied while any open order references it, otherwise reserved
// when a reservation is attached, otherwise free.
func (StatusReconciler) ExpectedTableStatus(tbl *table.Table, openOrders []*order.Order) table.Status {
	for _, o := range openOrders {
		if !o.Status().IsOpen() {
			continue
		}
		if o.TableID() != nil && o.TableID().IsEqual(tbl.ID()) {
			return table.Occupied
		}
	}

	if tbl.Reservation() != nil {
		return table.Reserved
	}
	return table.Free
}

// ExpectedCourierStatus derives the status a courier should have given the
// open orders: busy while any open delivery order references them, otherwise
// available. An offline courier stays offline; going back on shift is a
// manual action, not something reconciliation may decide.
func (StatusReconciler) ExpectedCourierStatus(c *courier.Courier, openOrders []*order.Order) courier.Status {
	if c.Status() == courier.Offline {
		return courier.Offline
	}

	for _, o := range openOrders {
		if o.Type() != order.Delivery || !o.Status().IsOpen() {
			continue
		}
		if o.CourierID() != nil && o.CourierID().IsEqual(c.ID()) {
			return courier.Busy
		}
	}
	return courier.Available
}
