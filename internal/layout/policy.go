package layout

import (
	"errors"
	"fmt"
	"math"
)

// Unbounded marks a policy with no maximum length.
const Unbounded = math.MaxInt

// ErrInvalidPolicy is returned when a policy's bounds or stretch are malformed.
var ErrInvalidPolicy = errors.New("layout: invalid size policy")

// Policy describes a widget's sizing behavior along one axis: hard bounds,
// a preferred length, and a stretch weight relative to siblings.
//
// Policies are immutable. The hint is stored raw—it is not required to lie
// within [min, max] and is clamped only when the engine uses it, so callers
// can always inspect the value they set.
type Policy struct {
	min     int
	max     int
	hint    int
	stretch float64
}

// NewPolicy creates a Policy with explicit bounds, hint, and stretch.
// Returns ErrInvalidPolicy if min is negative, max < min, or stretch <= 0.
func NewPolicy(min, max, hint int, stretch float64) (Policy, error) {
	if min < 0 {
		return Policy{}, fmt.Errorf("%w: negative minimum %d", ErrInvalidPolicy, min)
	}
	if max < min {
		return Policy{}, fmt.Errorf("%w: maximum %d < minimum %d", ErrInvalidPolicy, max, min)
	}
	if stretch <= 0 {
		return Policy{}, fmt.Errorf("%w: non-positive stretch %v", ErrInvalidPolicy, stretch)
	}
	return Policy{min: min, max: max, hint: hint, stretch: stretch}, nil
}

// MustPolicy is like NewPolicy but panics on invalid input.
// Use for statically-known policies.
func MustPolicy(min, max, hint int, stretch float64) Policy {
	p, err := NewPolicy(min, max, hint, stretch)
	if err != nil {
		panic(err)
	}
	return p
}

// Fixed returns a policy locked to exactly n cells.
func Fixed(n int) Policy {
	return MustPolicy(n, n, n, 1)
}

// Minimum returns a policy that needs at least hint cells and may grow.
func Minimum(hint int) Policy {
	return MustPolicy(hint, Unbounded, hint, 1)
}

// Maximum returns a policy that takes at most hint cells and may shrink to zero.
func Maximum(hint int) Policy {
	return MustPolicy(0, hint, hint, 1)
}

// Preferred returns a policy that wants hint cells but accepts any length.
func Preferred(hint int) Policy {
	return MustPolicy(0, Unbounded, hint, 1)
}

// Expanding returns a policy that wants hint cells and competes aggressively
// for surplus space.
func Expanding(hint int) Policy {
	return MustPolicy(0, Unbounded, hint, 2)
}

// MinimumExpanding returns a policy that needs at least hint cells and
// competes aggressively for surplus space.
func MinimumExpanding(hint int) Policy {
	return MustPolicy(hint, Unbounded, hint, 2)
}

// Ignored returns a policy with no opinion: any length is acceptable and the
// hint is zero.
func Ignored() Policy {
	return MustPolicy(0, Unbounded, 0, 1)
}

// WithStretch returns a copy of p with the given stretch weight.
// Returns ErrInvalidPolicy if stretch <= 0.
func (p Policy) WithStretch(stretch float64) (Policy, error) {
	if stretch <= 0 {
		return Policy{}, fmt.Errorf("%w: non-positive stretch %v", ErrInvalidPolicy, stretch)
	}
	p.stretch = stretch
	return p, nil
}

// WithHint returns a copy of p with the given size hint. The hint is stored
// raw; it is not clamped into [Min, Max].
func (p Policy) WithHint(hint int) Policy {
	p.hint = hint
	return p
}

// Min returns the hard lower bound in cells.
func (p Policy) Min() int { return p.min }

// Max returns the hard upper bound in cells (Unbounded if none).
func (p Policy) Max() int { return p.max }

// Hint returns the preferred length as set, unclamped.
func (p Policy) Hint() int { return p.hint }

// Stretch returns the relative weight used when distributing surplus space.
func (p Policy) Stretch() float64 { return p.stretch }

// IsUnbounded reports whether the policy has no maximum.
func (p Policy) IsUnbounded() bool { return p.max == Unbounded }

// Clamp restricts n to [Min, Max].
func (p Policy) Clamp(n int) int {
	if n < p.min {
		return p.min
	}
	if n > p.max {
		return p.max
	}
	return n
}
