// Package services provides domain services that decide questions spanning a
// principal and an order, which neither the kernel nor the order aggregate can
// answer alone.
//
// The package includes:
//   - VisibilityPolicy: who may read or modify an order, and which orders each
//     list scope returns for a given principal
package services
