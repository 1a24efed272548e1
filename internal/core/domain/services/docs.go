// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the POS system.
//
// The package includes:
//   - StatusReconciler: recomputes table occupancy and courier availability
//     from the live orders, used to repair drift left behind by the
//     non-transactional multi-document operations
//
// Domain services hold logic that spans aggregates and does not naturally
// belong to a single aggregate root.
package services
