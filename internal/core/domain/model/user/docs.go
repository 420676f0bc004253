// Package user holds the directory entry of the people working orders.
//
// Users are created by the seed command and looked up when an order is
// assigned, when a request principal is resolved, and when order views name
// their confirmer and buyer. Managing users is not part of this service.
package user
