// Package petrel is a terminal widget toolkit built around explicit size
// negotiation.
//
// Widgets form a tree. Each widget carries a size policy per axis (minimum,
// maximum, preferred hint, stretch weight); container widgets negotiate their
// children's lengths one axis at a time through the span engine in
// internal/layout, then paint into a double-buffered cell grid that is
// diff-flushed to the terminal as ANSI escape sequences.
//
// An App owns the terminal, the cell buffer, the input reader, the focus
// manager, and the root widget, and drives everything from a single-threaded
// frame loop. All widget mutation happens on that loop; use App.QueueUpdate
// to cross in from other goroutines.
package petrel
