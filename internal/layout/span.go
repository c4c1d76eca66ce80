package layout

import (
	"errors"
	"fmt"
)

// ErrStaleQuery is the panic value raised when a pass-scoped total is read
// before the matching pass has begun. This is a programming error in the
// caller, not a recoverable condition.
var ErrStaleQuery = errors.New("layout: stale query")

// Dimension is one child's working allocation for a single negotiation pass.
// Exclusion is an explicit tagged state rather than a nil-widget sentinel:
// an excluded dimension keeps its position and final length but never
// re-enters negotiation for this pass.
type Dimension struct {
	length   int
	excluded bool
}

type passKind uint8

const (
	passNone passKind = iota
	passGrow
	passShrink
)

// Span owns the dimension sequence for exactly one negotiation over one axis
// of one parent's children. It is constructed fresh for every layout pass,
// consumed, and discarded; it holds no state across passes.
//
// The type parameter W is the caller's widget representation. The engine
// never inspects W—policies are captured once through the accessor given to
// NewSpan and treated as a frozen snapshot for the life of the Span.
type Span[W any] struct {
	widgets  []W
	policies []Policy
	dims     []Dimension
	extent   int

	pass                passKind
	totalStretch        float64
	totalInverseStretch float64
	growBegun           bool
	shrinkBegun         bool
}

// NewSpan captures the ordered children against the available extent and
// builds the initial allocation in a single forward pass.
//
// A running total of minimums decides exclusion: the moment the cumulative
// minimum requirement overflows the extent, that child—and every later child
// pushing the total further—is recorded as excluded with length zero. A child
// can therefore be excluded even though its own minimum would fit on its own;
// earlier siblings consumed the budget first. Active children start at their
// raw size hint, unclamped.
func NewSpan[W any](children []W, extent int, policy func(W) Policy) *Span[W] {
	s := &Span[W]{
		widgets:  children,
		policies: make([]Policy, len(children)),
		dims:     make([]Dimension, len(children)),
		extent:   extent,
	}
	runningMin := 0
	for i, w := range children {
		p := policy(w)
		s.policies[i] = p
		runningMin += p.Min()
		if runningMin > extent {
			s.dims[i] = Dimension{length: 0, excluded: true}
		} else {
			s.dims[i] = Dimension{length: p.Hint()}
		}
	}
	return s
}

// BeginGrow starts (or restarts) a grow pass: it recomputes the total stretch
// over the still-active dimensions, then excludes any dimension already
// sitting at its maximum. Returns the total stretch.
func (s *Span[W]) BeginGrow() float64 {
	s.pass = passGrow
	s.growBegun = true
	total := 0.0
	for _, i := range s.Active() {
		total += s.policies[i].Stretch()
	}
	s.totalStretch = total
	s.ExcludeSaturated()
	return total
}

// BeginShrink starts (or restarts) a shrink pass: it recomputes the total
// inverse stretch over the still-active dimensions, then excludes any
// dimension already sitting at its minimum. Returns the total inverse stretch.
func (s *Span[W]) BeginShrink() float64 {
	s.pass = passShrink
	s.shrinkBegun = true
	total := 0.0
	for _, i := range s.Active() {
		total += 1 / s.policies[i].Stretch()
	}
	s.totalInverseStretch = total
	s.ExcludeSaturated()
	return total
}

// ExcludeSaturated permanently excludes every active dimension whose length
// has reached the bound of the current pass (maximum when growing, minimum
// when shrinking). It is a pure scan: no length changes. Returns the number
// of dimensions excluded.
//
// Exclusion is monotonic within a pass—once excluded, a dimension is never
// re-included, even if a later computation would otherwise touch it.
func (s *Span[W]) ExcludeSaturated() int {
	var limit func(Policy) int
	switch s.pass {
	case passGrow:
		limit = Policy.Max
	case passShrink:
		limit = Policy.Min
	default:
		panic(fmt.Errorf("%w: ExcludeSaturated before BeginGrow/BeginShrink", ErrStaleQuery))
	}
	n := 0
	for i := range s.dims {
		d := &s.dims[i]
		if !d.excluded && d.length == limit(s.policies[i]) {
			d.excluded = true
			n++
		}
	}
	return n
}

// ClampToBounds clamps every active dimension's length into its policy's
// [min, max]. Construction seeds lengths from raw hints, so drivers call this
// once before negotiating.
func (s *Span[W]) ClampToBounds() {
	for i := range s.dims {
		if d := &s.dims[i]; !d.excluded {
			d.length = s.policies[i].Clamp(d.length)
		}
	}
}

// Active returns the indices of the still-active dimensions in original
// child order. Excluded dimensions are skipped transparently.
func (s *Span[W]) Active() []int {
	indices := make([]int, 0, len(s.dims))
	for i := range s.dims {
		if !s.dims[i].excluded {
			indices = append(indices, i)
		}
	}
	return indices
}

// Length returns the current allocation of dimension i.
func (s *Span[W]) Length(i int) int {
	return s.dims[i].length
}

// SetLength sets the allocation of dimension i. Mutating an excluded
// dimension violates the pass invariant and panics.
func (s *Span[W]) SetLength(i, length int) {
	if s.dims[i].excluded {
		panic(fmt.Sprintf("layout: SetLength on excluded dimension %d", i))
	}
	s.dims[i].length = length
}

// PolicyAt returns the frozen policy snapshot for dimension i.
func (s *Span[W]) PolicyAt(i int) Policy {
	return s.policies[i]
}

// IsExcluded reports whether dimension i has been excluded, either at
// construction or by a pass.
func (s *Span[W]) IsExcluded(i int) bool {
	return s.dims[i].excluded
}

// Extent returns the available extent the span was built against.
func (s *Span[W]) Extent() int {
	return s.extent
}

// TotalStretch returns the stretch sum cached by the most recent BeginGrow.
// Panics with ErrStaleQuery if no grow pass has begun on this span.
func (s *Span[W]) TotalStretch() float64 {
	if !s.growBegun {
		panic(fmt.Errorf("%w: TotalStretch before BeginGrow", ErrStaleQuery))
	}
	return s.totalStretch
}

// TotalInverseStretch returns the inverse-stretch sum cached by the most
// recent BeginShrink. Panics with ErrStaleQuery if no shrink pass has begun
// on this span.
func (s *Span[W]) TotalInverseStretch() float64 {
	if !s.shrinkBegun {
		panic(fmt.Errorf("%w: TotalInverseStretch before BeginShrink", ErrStaleQuery))
	}
	return s.totalInverseStretch
}

// EntireLength returns the sum of current lengths over all dimensions,
// active and excluded. Callers compare this against the extent to decide
// whether to grow, shrink, or stop.
func (s *Span[W]) EntireLength() int {
	total := 0
	for i := range s.dims {
		total += s.dims[i].length
	}
	return total
}

// Size returns the number of still-active dimensions.
func (s *Span[W]) Size() int {
	n := 0
	for i := range s.dims {
		if !s.dims[i].excluded {
			n++
		}
	}
	return n
}

// Results returns a snapshot of every dimension's current length in original
// child order. Dimensions excluded at construction report zero; dimensions
// excluded by a pass report the bound that excluded them. Reading results
// performs no mutation, so repeated calls return identical sequences.
func (s *Span[W]) Results() []int {
	lengths := make([]int, len(s.dims))
	for i := range s.dims {
		lengths[i] = s.dims[i].length
	}
	return lengths
}
