// Package order contains the Order aggregate and its lifecycle model.
//
// An order moves through a fixed status graph from Scheduled to a terminal
// status (Delivered, Completed or Cancelled). Agents claim the pickup and
// delivery legs exclusively, and every physical handoff is confirmed by
// presenting the order's four digit code at a checkpoint. The aggregate
// enforces the graph, the claim exclusivity and the code check; persistence
// closes races with a version token.
package order
