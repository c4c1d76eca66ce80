// Package layout implements the size-negotiation engine for terminal UIs.
//
// Layout works on one axis at a time. A parent hands the engine its ordered
// children, the available extent in cells, and a policy accessor; the engine
// builds a Span, seeds each child's allocation from its size hint, and then
// negotiates toward either each child's maximum (grow) or minimum (shrink)
// until the allocations sum to the available extent. Distribution is weighted
// by stretch when growing and by inverse stretch when shrinking.
//
// The engine is deterministic and order-stable: when the children's combined
// minimums cannot fit, later children are starved first, and remainder cells
// are handed out in declaration order. Types are re-exported through the root
// petrel package for public consumption.
//
// The main entry point is [Negotiate]; [Span] exposes the individual
// negotiation steps for callers that drive the passes themselves.
package layout
