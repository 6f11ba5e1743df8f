package motion

import (
	"errors"
	"math"
	"testing"
)

func buildTwoLevel(t *testing.T) *Node {
	t.Helper()
	root := NewGroup("s")
	for w := 0; w < 2; w++ {
		word := NewGroup("w" + string(rune('0'+w)))
		root.AddChild(word)
		for c := 0; c < 3; c++ {
			word.AddChild(NewNode(word.ID+"c"+string(rune('0'+c)), 0.8, EaseOut, FadeUp(40, 10)))
		}
	}
	return root
}

func TestComputeDelaysTwoLevels(t *testing.T) {
	root := buildTwoLevel(t)
	delays, err := ComputeDelays(root, 0.8, []StaggerPolicy{{ChildInterval: 0.15}, {ChildInterval: 0.04}})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{
		"s": 0.8, "w0": 0.8, "w1": 0.95,
		"w0c0": 0.8, "w0c1": 0.84, "w0c2": 0.88,
		"w1c0": 0.95, "w1c1": 0.99, "w1c2": 1.03,
	}
	for id, w := range want {
		if math.Abs(delays[id]-w) > 1e-9 {
			t.Errorf("delay[%s] = %v, want %v", id, delays[id], w)
		}
	}
}

func TestComputeDelaysMonotonicSiblings(t *testing.T) {
	root := buildTwoLevel(t)
	delays, err := ComputeDelays(root, 0, []StaggerPolicy{{ChildInterval: 0.2}, {ChildInterval: 0.05}})
	if err != nil {
		t.Fatal(err)
	}
	root.Walk(func(n *Node) bool {
		for i := 1; i < n.NumChildren(); i++ {
			if delays[n.ChildAt(i).ID] < delays[n.ChildAt(i-1).ID] {
				t.Errorf("sibling %s starts before %s", n.ChildAt(i).ID, n.ChildAt(i-1).ID)
			}
		}
		if p := n.Parent(); p != nil && delays[n.ID] < delays[p.ID] {
			t.Errorf("child %s starts before parent %s", n.ID, p.ID)
		}
		return true
	})
}

func TestComputeDelaysBaseAndLocal(t *testing.T) {
	root := NewGroup("r")
	root.LocalDelay = 0.1
	a := NewGroup("a")
	b := NewGroup("b")
	b.LocalDelay = 0.5
	root.AddChild(a)
	root.AddChild(b)

	delays, err := ComputeDelays(root, 1, []StaggerPolicy{{ChildInterval: 0.2, ChildDelayBase: 0.3}})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(delays["r"]-1.1) > 1e-9 {
		t.Errorf("root = %v, want 1.1", delays["r"])
	}
	if math.Abs(delays["a"]-1.4) > 1e-9 {
		t.Errorf("a = %v, want 1.4", delays["a"])
	}
	if math.Abs(delays["b"]-2.1) > 1e-9 {
		t.Errorf("b = %v, want 2.1", delays["b"])
	}
}

func TestComputeDelaysNegativeLocalClamped(t *testing.T) {
	root := NewGroup("r")
	c := NewGroup("c")
	c.LocalDelay = -5
	root.AddChild(c)
	delays, err := ComputeDelays(root, 0.5, nil)
	if err != nil {
		t.Fatal(err)
	}
	if delays["c"] != 0.5 {
		t.Errorf("c = %v, want 0.5", delays["c"])
	}
}

func TestComputeDelaysEmptyTree(t *testing.T) {
	delays, err := ComputeDelays(nil, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(delays) != 0 {
		t.Errorf("len = %d, want 0", len(delays))
	}

	sched, err := NewSchedule(nil, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sched.Span() != 0 || len(sched.Snapshot(1)) != 0 {
		t.Error("empty schedule should have no nodes")
	}
}

func TestComputeDelaysDuplicateID(t *testing.T) {
	root := NewGroup("r")
	root.AddChild(NewGroup("x"))
	root.AddChild(NewGroup("x"))
	_, err := ComputeDelays(root, 0, nil)
	var ov *OrderingViolation
	if !errors.As(err, &ov) {
		t.Fatalf("err = %v, want *OrderingViolation", err)
	}
	if ov.Parent != "r" || ov.ID != "x" || ov.Index != 1 {
		t.Errorf("violation = %+v", ov)
	}
	if !errors.Is(err, ErrOrdering) {
		t.Error("errors.Is(ErrOrdering) = false")
	}
}

func TestComputeDelaysInvalidPolicy(t *testing.T) {
	root := NewGroup("r")
	for _, p := range []StaggerPolicy{
		{ChildInterval: -0.1},
		{ChildInterval: math.NaN()},
		{ChildDelayBase: -1},
	} {
		_, err := ComputeDelays(root, 0, []StaggerPolicy{p})
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("policy %+v: err = %v, want configuration error", p, err)
		}
	}
	if _, err := ComputeDelays(root, -1, nil); !errors.Is(err, ErrConfiguration) {
		t.Errorf("negative root delay: err = %v", err)
	}
}

func TestScheduleLookups(t *testing.T) {
	root := buildTwoLevel(t)
	sched, err := NewSchedule(root, 0.8, []StaggerPolicy{{ChildInterval: 0.15}, {ChildInterval: 0.04}})
	if err != nil {
		t.Fatal(err)
	}
	if sched.Root() != root {
		t.Error("Root mismatch")
	}
	if len(sched.Nodes()) != 9 {
		t.Errorf("Nodes = %d, want 9", len(sched.Nodes()))
	}
	if n, ok := sched.Node("w1c2"); !ok || n.ID != "w1c2" {
		t.Error("Node lookup failed")
	}
	if math.Abs(sched.Span()-1.83) > 1e-9 {
		t.Errorf("Span = %v, want 1.83", sched.Span())
	}
	if got := sched.State("missing", 5); got != StatePending {
		t.Errorf("unknown id state = %s", got)
	}
	if got := sched.Sample("missing", 5); got != Rest {
		t.Errorf("unknown id sample = %+v", got)
	}

	snap := sched.Snapshot(0.9)
	if snap[0].ID != "s" || snap[2].ID != "w0c0" {
		t.Errorf("snapshot not depth-first: %v, %v", snap[0].ID, snap[2].ID)
	}
	if snap[2].State != StateAnimating {
		t.Errorf("w0c0 at 0.9 = %s, want animating", snap[2].State)
	}
	if snap[6].ID != "w1c0" || snap[6].State != StatePending {
		t.Errorf("w1c0 at 0.9 = %s, want pending", snap[6].State)
	}
}
