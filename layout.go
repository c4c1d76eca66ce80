package petrel

// This file re-exports the size-negotiation types from internal/layout.

import "github.com/petrelkit/petrel/internal/layout"

// SizePolicy describes a widget's sizing behavior along one axis.
type SizePolicy = layout.Policy

// Unbounded marks a policy with no maximum length.
const Unbounded = layout.Unbounded

// ErrInvalidPolicy is returned for malformed size policies.
var ErrInvalidPolicy = layout.ErrInvalidPolicy

// ErrStaleQuery is the panic value for pass-scoped queries read too early.
var ErrStaleQuery = layout.ErrStaleQuery

// NewSizePolicy creates a SizePolicy with explicit bounds, hint, and stretch.
func NewSizePolicy(min, max, hint int, stretch float64) (SizePolicy, error) {
	return layout.NewPolicy(min, max, hint, stretch)
}

// MustSizePolicy is like NewSizePolicy but panics on invalid input.
func MustSizePolicy(min, max, hint int, stretch float64) SizePolicy {
	return layout.MustPolicy(min, max, hint, stretch)
}

// FixedPolicy returns a policy locked to exactly n cells.
func FixedPolicy(n int) SizePolicy { return layout.Fixed(n) }

// MinimumPolicy returns a policy that needs at least hint cells and may grow.
func MinimumPolicy(hint int) SizePolicy { return layout.Minimum(hint) }

// MaximumPolicy returns a policy that takes at most hint cells.
func MaximumPolicy(hint int) SizePolicy { return layout.Maximum(hint) }

// PreferredPolicy returns a policy that wants hint cells but accepts any length.
func PreferredPolicy(hint int) SizePolicy { return layout.Preferred(hint) }

// ExpandingPolicy returns a policy that wants hint cells and competes
// aggressively for surplus space.
func ExpandingPolicy(hint int) SizePolicy { return layout.Expanding(hint) }

// MinimumExpandingPolicy returns a policy that needs at least hint cells and
// competes aggressively for surplus space.
func MinimumExpandingPolicy(hint int) SizePolicy { return layout.MinimumExpanding(hint) }

// IgnoredPolicy returns a policy with no sizing opinion.
func IgnoredPolicy() SizePolicy { return layout.Ignored() }

// Rect is an axis-aligned cell rectangle.
type Rect = layout.Rect

// Point is an x/y cell coordinate.
type Point = layout.Point

// Size is a width/height pair in cells.
type Size = layout.Size

// Edges is per-side spacing.
type Edges = layout.Edges

// NewRect creates a Rect from a position and extents.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll returns Edges with the same value on every side.
func EdgeAll(n int) Edges { return layout.EdgeAll(n) }
