package layout

import "testing"

func negotiatePolicies(extent int, policies ...Policy) []int {
	return Negotiate(policies, extent, func(p Policy) Policy { return p })
}

func sum(lengths []int) int {
	total := 0
	for _, n := range lengths {
		total += n
	}
	return total
}

func TestNegotiate_ConservationUnderSufficiency(t *testing.T) {
	// Whenever sum(min) <= extent <= sum(max), the results sum to the extent
	// exactly, for both grow and shrink starts.
	policies := []Policy{
		MustPolicy(2, 30, 10, 1),
		MustPolicy(5, 25, 10, 2),
		MustPolicy(0, 40, 10, 1),
	}
	for _, extent := range []int{7, 12, 30, 31, 47, 80, 95} {
		got := negotiatePolicies(extent, policies...)
		if sum(got) != extent {
			t.Errorf("extent %d: results %v sum to %d, want %d", extent, got, sum(got), extent)
		}
	}
}

func TestNegotiate_BoundRespect(t *testing.T) {
	policies := []Policy{
		MustPolicy(3, 12, 6, 1),
		MustPolicy(1, 9, 4, 3),
		MustPolicy(2, 20, 8, 0.5),
	}
	for _, extent := range []int{6, 10, 18, 25, 41, 60} {
		got := negotiatePolicies(extent, policies...)
		for i, n := range got {
			if n == 0 {
				continue // starved at construction
			}
			if n < policies[i].Min() || n > policies[i].Max() {
				t.Errorf("extent %d: child %d length %d outside [%d, %d]",
					extent, i, n, policies[i].Min(), policies[i].Max())
			}
			if n < 0 {
				t.Errorf("extent %d: child %d negative length %d", extent, i, n)
			}
		}
	}
}

func TestNegotiate_ExactFitLeavesHints(t *testing.T) {
	got := negotiatePolicies(30,
		MustPolicy(0, 50, 10, 1),
		MustPolicy(0, 50, 20, 1),
	)
	if got[0] != 10 || got[1] != 20 {
		t.Errorf("results = %v, want hints [10 20] untouched at exact fit", got)
	}
}

func TestNegotiate_GrowStretchProportionality(t *testing.T) {
	// Surplus 40 split 1:3 between equal children.
	got := negotiatePolicies(60,
		MustPolicy(0, Unbounded, 10, 1),
		MustPolicy(0, Unbounded, 10, 3),
	)
	if got[0] != 20 || got[1] != 40 {
		t.Errorf("results = %v, want [20 40] (surplus in ratio 1:3)", got)
	}
}

func TestNegotiate_GrowStopsAtMaximum(t *testing.T) {
	// The first child saturates at 12; the rest of the surplus flows to the
	// second child once the first is excluded.
	got := negotiatePolicies(50,
		MustPolicy(0, 12, 10, 1),
		MustPolicy(0, Unbounded, 10, 1),
	)
	if got[0] != 12 {
		t.Errorf("results[0] = %d, want 12 (clamped at maximum)", got[0])
	}
	if got[1] != 38 {
		t.Errorf("results[1] = %d, want 38 (absorbs the remainder)", got[1])
	}
}

func TestNegotiate_GrowRemainderInOrder(t *testing.T) {
	// Surplus 2 over three stretch-1 children floors to zero shares; the
	// single-cell sweep hands cells out in declaration order.
	got := negotiatePolicies(17,
		MustPolicy(0, 20, 5, 1),
		MustPolicy(0, 20, 5, 1),
		MustPolicy(0, 20, 5, 1),
	)
	want := []int{6, 6, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("results = %v, want %v", got, want)
			break
		}
	}
}

func TestNegotiate_ShrinkInverseStretchWeighting(t *testing.T) {
	// Deficit 16: the stretch-3 child gives up a quarter of it, the stretch-1
	// child three quarters.
	got := negotiatePolicies(24,
		MustPolicy(0, 50, 20, 1),
		MustPolicy(0, 50, 20, 3),
	)
	if got[0] != 8 || got[1] != 16 {
		t.Errorf("results = %v, want [8 16]", got)
	}
}

func TestNegotiate_ShrinkStopsAtMinimum(t *testing.T) {
	got := negotiatePolicies(20,
		MustPolicy(18, 50, 20, 1),
		MustPolicy(0, 50, 20, 1),
	)
	if got[0] != 18 {
		t.Errorf("results[0] = %d, want 18 (clamped at minimum)", got[0])
	}
	if got[1] != 2 {
		t.Errorf("results[1] = %d, want 2", got[1])
	}
}

func TestNegotiate_ShrinkRemainderInOrder(t *testing.T) {
	// Deficit 2 over three children floors to zero shares; the single-cell
	// sweep takes cells back in declaration order.
	got := negotiatePolicies(13,
		MustPolicy(0, 20, 5, 1),
		MustPolicy(0, 20, 5, 1),
		MustPolicy(0, 20, 5, 1),
	)
	want := []int{4, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("results = %v, want %v", got, want)
			break
		}
	}
}

func TestNegotiate_HintAboveMaxClamped(t *testing.T) {
	got := negotiatePolicies(30,
		MustPolicy(0, 10, 99, 1),
		MustPolicy(0, Unbounded, 5, 1),
	)
	if got[0] != 10 {
		t.Errorf("results[0] = %d, want 10 (hint clamped to maximum)", got[0])
	}
	if sum(got) != 30 {
		t.Errorf("results %v sum to %d, want 30", got, sum(got))
	}
}

func TestNegotiate_HintBelowMinClamped(t *testing.T) {
	got := negotiatePolicies(30,
		MustPolicy(12, 20, 1, 1),
		MustPolicy(0, Unbounded, 5, 1),
	)
	if got[0] < 12 {
		t.Errorf("results[0] = %d, want at least the minimum 12", got[0])
	}
	if sum(got) != 30 {
		t.Errorf("results %v sum to %d, want 30", got, sum(got))
	}
}

func TestNegotiate_InsufficientExtentStarvesInOrder(t *testing.T) {
	got := negotiatePolicies(8,
		MustPolicy(5, 20, 5, 1),
		MustPolicy(5, 20, 5, 1),
		MustPolicy(5, 20, 5, 1),
	)
	if got[1] != 0 || got[2] != 0 {
		t.Errorf("results = %v, want later children starved to 0", got)
	}
	if got[0] != 8 {
		t.Errorf("results[0] = %d, want 8 (sole active child absorbs the extent)", got[0])
	}
}

func TestNegotiate_AllAtMaxLeavesSurplusUnassigned(t *testing.T) {
	got := negotiatePolicies(100,
		MustPolicy(0, 10, 5, 1),
		MustPolicy(0, 10, 5, 1),
	)
	if got[0] != 10 || got[1] != 10 {
		t.Errorf("results = %v, want [10 10] (growth capped by maximums)", got)
	}
}

func TestNegotiate_ZeroExtent(t *testing.T) {
	got := negotiatePolicies(0,
		MustPolicy(1, 10, 5, 1),
		MustPolicy(0, 10, 5, 1),
	)
	if got[0] != 0 || got[1] != 0 {
		t.Errorf("results = %v, want [0 0]", got)
	}
}

func TestNegotiate_NoChildren(t *testing.T) {
	got := negotiatePolicies(42)
	if len(got) != 0 {
		t.Errorf("results = %v, want empty", got)
	}
}

func TestNegotiate_SingleUnboundedChild(t *testing.T) {
	got := negotiatePolicies(120, MustPolicy(0, Unbounded, 10, 1))
	if got[0] != 120 {
		t.Errorf("results[0] = %d, want 120", got[0])
	}
}
