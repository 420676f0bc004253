// Package order provides the Order aggregate of the sales workflow.
//
// An order moves through two independent sub-records:
//   - Confirmation: owned by the assigned confirmer, who phones the client,
//     records the call status and schedules a rendezvous
//   - Fulfillment: owned by the assigned buyer, who records the sale outcome
//
// Key business rules:
//   - Kind, price, contact, scheduled time and description are required at creation
//   - Confirmation status starts at call_not_response with zero call attempts
//   - Statuses are plain enum assignments: any value may follow any other
//   - Every assignment of call_not_response adds exactly one call attempt, and
//     the counter is never reset
//   - An outcome can only be recorded once a buyer is assigned
//
// Role checks on the referenced confirmer and buyer live in the application
// layer, which is the only place with access to the user directory.
package order
