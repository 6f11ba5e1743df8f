package motion

import "math"

// StaggerPolicy spaces out the children of one tree level.
type StaggerPolicy struct {
	// ChildInterval is added per sibling index: child k starts k*ChildInterval
	// after child 0.
	ChildInterval float64 `yaml:"interval"`
	// ChildDelayBase is added once when descending into this level.
	ChildDelayBase float64 `yaml:"base,omitempty"`
}

func (p StaggerPolicy) validate(level int) error {
	if !finite(p.ChildInterval) || p.ChildInterval < 0 {
		return configError("stagger interval", "level %d: must be a non-negative number, got %v", level, p.ChildInterval)
	}
	if !finite(p.ChildDelayBase) || p.ChildDelayBase < 0 {
		return configError("stagger base", "level %d: must be a non-negative number, got %v", level, p.ChildDelayBase)
	}
	return nil
}

// ComputeDelays returns the effective delay of every node under root, keyed
// by node id. policies[i] applies to the children of nodes at depth i; deeper
// levels without a policy get no stagger.
//
// The root starts at rootDelay plus its own LocalDelay. A child at sibling
// index k of a node at depth i starts at
//
//	parentDelay + policies[i].ChildDelayBase + k*policies[i].ChildInterval + LocalDelay
//
// so a child never starts before its parent. A nil root yields an empty map.
func ComputeDelays(root *Node, rootDelay float64, policies []StaggerPolicy) (map[string]float64, error) {
	delays := make(map[string]float64)
	if root == nil {
		return delays, nil
	}
	if !finite(rootDelay) || rootDelay < 0 {
		return nil, configError("delay", "must be a non-negative number, got %v", rootDelay)
	}
	for i, p := range policies {
		if err := p.validate(i); err != nil {
			return nil, err
		}
	}
	delays[root.ID] = rootDelay + localDelay(root)
	if err := assignDelays(root, 0, policies, delays); err != nil {
		return nil, err
	}
	return delays, nil
}

func assignDelays(n *Node, depth int, policies []StaggerPolicy, delays map[string]float64) error {
	var policy StaggerPolicy
	if depth < len(policies) {
		policy = policies[depth]
	}
	base := delays[n.ID] + policy.ChildDelayBase
	for k, c := range n.children {
		if c.parent != n {
			return &OrderingViolation{Parent: n.ID, ID: c.ID, Index: k}
		}
		if _, dup := delays[c.ID]; dup {
			return &OrderingViolation{Parent: n.ID, ID: c.ID, Index: k}
		}
		delays[c.ID] = base + float64(k)*policy.ChildInterval + localDelay(c)
		if err := assignDelays(c, depth+1, policies, delays); err != nil {
			return err
		}
	}
	return nil
}

func localDelay(n *Node) float64 {
	if math.IsNaN(n.LocalDelay) || n.LocalDelay < 0 {
		return 0
	}
	return n.LocalDelay
}

// Schedule is a frozen tree together with its computed delays. It answers
// lifecycle questions for any time t measured from the trigger firing, and is
// safe to share because nothing in it changes after construction.
type Schedule struct {
	root   *Node
	order  []*Node
	byID   map[string]*Node
	delays map[string]float64
	span   float64
}

// NewSchedule computes delays for root and freezes the tree. A nil root gives
// an empty schedule.
func NewSchedule(root *Node, rootDelay float64, policies []StaggerPolicy) (*Schedule, error) {
	delays, err := ComputeDelays(root, rootDelay, policies)
	if err != nil {
		return nil, err
	}
	s := &Schedule{
		root:   root,
		byID:   make(map[string]*Node, len(delays)),
		delays: delays,
	}
	if root == nil {
		return s, nil
	}
	root.Walk(func(n *Node) bool {
		s.order = append(s.order, n)
		s.byID[n.ID] = n
		if end := delays[n.ID] + normalizeDuration(n.Duration); end > s.span {
			s.span = end
		}
		return true
	})
	root.freeze()
	return s, nil
}

// Root returns the scheduled tree's root, or nil.
func (s *Schedule) Root() *Node {
	return s.root
}

// Nodes returns every node in depth-first declared order. The returned slice
// MUST NOT be mutated by the caller.
func (s *Schedule) Nodes() []*Node {
	return s.order
}

// Node returns the node with the given id.
func (s *Schedule) Node(id string) (*Node, bool) {
	n, ok := s.byID[id]
	return n, ok
}

// Delay returns the effective delay of the node with the given id.
func (s *Schedule) Delay(id string) (float64, bool) {
	d, ok := s.delays[id]
	return d, ok
}

// Span returns the time at which the last node settles.
func (s *Schedule) Span() float64 {
	return s.span
}

// State returns the lifecycle state of id at t seconds after the trigger.
// Unknown ids read as Pending.
func (s *Schedule) State(id string, t float64) State {
	n, ok := s.byID[id]
	if !ok {
		return StatePending
	}
	return n.StateAt(t, s.delays[id])
}

// Sample returns the properties of id at t seconds after the trigger. Unknown
// ids read as Rest.
func (s *Schedule) Sample(id string, t float64) Props {
	n, ok := s.byID[id]
	if !ok {
		return Rest
	}
	return n.SampleAt(t, s.delays[id])
}

// Snapshot samples every node at t, in depth-first order.
func (s *Schedule) Snapshot(t float64) []NodeSnapshot {
	out := make([]NodeSnapshot, len(s.order))
	for i, n := range s.order {
		d := s.delays[n.ID]
		out[i] = NodeSnapshot{ID: n.ID, State: n.StateAt(t, d), Props: n.SampleAt(t, d)}
	}
	return out
}
