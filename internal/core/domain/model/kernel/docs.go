// Package kernel provides the shared domain primitives of the sales workflow.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Slot: a calendar day plus a free-form hour, used for scheduled times,
//     rendezvous and follow-ups
//   - Role and Principal: the authenticated actor every lifecycle operation
//     is evaluated against
//
// All values are immutable and must be built through their constructors; the
// zero value of each type fails Validate.
package kernel
