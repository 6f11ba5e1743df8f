package motion

// RevealConfig is the timing shared by every node of one reveal tree.
type RevealConfig struct {
	// Delay is the root's delay after the trigger fires, in seconds.
	Delay float64 `yaml:"delay"`
	// Levels holds one stagger policy per tree depth.
	Levels []StaggerPolicy `yaml:"levels,omitempty"`
	// Trigger decides when the reveal starts and whether it repeats.
	Trigger TriggerConfig `yaml:"trigger"`
}

// Reveal drives the lifecycle of one animation tree. It owns the trigger and
// the time at which the trigger last fired; everything else is derived from
// the frozen Schedule, so sampling has no side effects.
type Reveal struct {
	name     string
	schedule *Schedule
	trigger  *Trigger

	firedAt float64
	live    bool
}

// NewReveal freezes root and prepares it to play when its trigger fires.
func NewReveal(name string, root *Node, cfg RevealConfig) (*Reveal, error) {
	trig, err := NewTrigger(cfg.Trigger)
	if err != nil {
		return nil, err
	}
	sched, err := NewSchedule(root, cfg.Delay, cfg.Levels)
	if err != nil {
		return nil, err
	}
	return &Reveal{name: name, schedule: sched, trigger: trig}, nil
}

// Name returns the block name the reveal was created with.
func (r *Reveal) Name() string { return r.name }

// Schedule returns the frozen schedule.
func (r *Reveal) Schedule() *Schedule { return r.schedule }

// Trigger returns the visibility trigger.
func (r *Reveal) Trigger() *Trigger { return r.trigger }

// Observe feeds an intersection ratio observed at clock time now and applies
// the resulting transition:
//   - enter starts the tree at now (Pending -> Animating as delays elapse);
//   - leave under WhileVisible reverts every node to Pending.
//
// A OnceWhenVisible reveal ignores everything after its first enter.
func (r *Reveal) Observe(ratio, now float64) (TriggerEventType, bool) {
	ev, ok := r.trigger.Update(ratio)
	if ok {
		r.apply(ev, now)
	}
	return ev, ok
}

// Fire starts the reveal at now as if it had scrolled fully into view.
func (r *Reveal) Fire(now float64) bool {
	ev, ok := r.trigger.Force()
	if ok {
		r.apply(ev, now)
	}
	return ok
}

func (r *Reveal) apply(ev TriggerEventType, now float64) {
	switch ev {
	case TriggerEnter:
		if !finite(now) {
			now = 0
		}
		r.firedAt = now
		r.live = true
	case TriggerLeave:
		if r.trigger.Mode() == WhileVisible {
			r.live = false
		}
	}
}

// Live reports whether the trigger has fired and not been withdrawn.
func (r *Reveal) Live() bool { return r.live }

// Elapsed returns the time since the trigger fired, and false when the reveal
// is not live.
func (r *Reveal) Elapsed(now float64) (float64, bool) {
	if !r.live {
		return 0, false
	}
	return now - r.firedAt, true
}

// local converts a clock time to schedule time. Not-live and pre-fire times
// map to -1, which every node reads as Pending.
func (r *Reveal) local(now float64) float64 {
	t, ok := r.Elapsed(now)
	if !ok || !finite(t) || t < 0 {
		return -1
	}
	return t
}

// State returns the lifecycle state of node id at clock time now.
func (r *Reveal) State(id string, now float64) State {
	return r.schedule.State(id, r.local(now))
}

// Sample returns the properties of node id at clock time now.
func (r *Reveal) Sample(id string, now float64) Props {
	return r.schedule.Sample(id, r.local(now))
}

// Snapshot samples every node at clock time now, in depth-first order.
func (r *Reveal) Snapshot(now float64) []NodeSnapshot {
	return r.schedule.Snapshot(r.local(now))
}

// Settled reports whether every node has reached its target at now.
func (r *Reveal) Settled(now float64) bool {
	t := r.local(now)
	return t >= 0 && t >= r.schedule.Span()
}
