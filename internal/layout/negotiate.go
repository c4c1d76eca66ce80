package layout

// Negotiate computes a concrete length for every child against the available
// extent. It builds a fresh Span, clamps the initial hint allocations into
// each child's bounds, then runs the pass the totals call for: grow when the
// allocations undershoot the extent, shrink when they overshoot, neither when
// they already match.
//
// Guarantees: no length is negative; every active child ends within
// [min, max]; and whenever the children's minimums fit and their maximums
// cover the extent, the results sum to the extent exactly.
func Negotiate[W any](children []W, extent int, policy func(W) Policy) []int {
	s := NewSpan(children, extent, policy)
	s.ClampToBounds()
	switch entire := s.EntireLength(); {
	case entire < extent:
		Grow(s, extent)
	case entire > extent:
		Shrink(s, extent)
	}
	return s.Results()
}

// Grow distributes surplus space toward each active dimension's maximum,
// proportional to stretch. Each round restarts the pass (recomputing the
// stretch total and sweeping out saturated dimensions), hands every active
// dimension its floored share of the remaining surplus, and stops when the
// target is met or nothing can absorb more space. Flooring can stall before
// the target; the remainder is then handed out one cell at a time in
// declaration order.
func Grow[W any](s *Span[W], target int) {
	for s.EntireLength() < target {
		total := s.BeginGrow()
		active := s.Active()
		if len(active) == 0 || total <= 0 {
			return
		}
		surplus := target - s.EntireLength()
		progressed := false
		for _, i := range active {
			p := s.PolicyAt(i)
			share := int(float64(surplus) * (p.Stretch() / total))
			if share <= 0 {
				continue
			}
			length := s.Length(i)
			if room := p.Max() - length; share > room {
				share = room
			}
			if share <= 0 {
				continue
			}
			s.SetLength(i, length+share)
			progressed = true
		}
		if !progressed {
			growByOne(s, target)
			return
		}
	}
}

// Shrink distributes deficit toward each active dimension's minimum,
// proportional to inverse stretch, so that high-stretch dimensions give up
// less space. Structure mirrors Grow.
func Shrink[W any](s *Span[W], target int) {
	for s.EntireLength() > target {
		total := s.BeginShrink()
		active := s.Active()
		if len(active) == 0 || total <= 0 {
			return
		}
		deficit := s.EntireLength() - target
		progressed := false
		for _, i := range active {
			p := s.PolicyAt(i)
			share := int(float64(deficit) * ((1 / p.Stretch()) / total))
			if share <= 0 {
				continue
			}
			length := s.Length(i)
			if room := length - p.Min(); share > room {
				share = room
			}
			if share <= 0 {
				continue
			}
			s.SetLength(i, length-share)
			progressed = true
		}
		if !progressed {
			shrinkByOne(s, target)
			return
		}
	}
}

// growByOne hands out single cells in declaration order until the target is
// reached or every dimension is saturated.
func growByOne[W any](s *Span[W], target int) {
	for s.EntireLength() < target {
		s.ExcludeSaturated()
		progressed := false
		for _, i := range s.Active() {
			if s.EntireLength() == target {
				return
			}
			if length := s.Length(i); length < s.PolicyAt(i).Max() {
				s.SetLength(i, length+1)
				progressed = true
			}
		}
		if !progressed {
			return
		}
	}
}

// shrinkByOne takes back single cells in declaration order until the target
// is reached or every dimension is at its minimum.
func shrinkByOne[W any](s *Span[W], target int) {
	for s.EntireLength() > target {
		s.ExcludeSaturated()
		progressed := false
		for _, i := range s.Active() {
			if s.EntireLength() == target {
				return
			}
			if length := s.Length(i); length > s.PolicyAt(i).Min() {
				s.SetLength(i, length-1)
				progressed = true
			}
		}
		if !progressed {
			return
		}
	}
}
