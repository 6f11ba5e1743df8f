package motion

// SceneBlock is the block name under which the Scene's badge entrances are
// observed and fired.
const SceneBlock = "scene"

// EventSink is the interface for optional ECS integration.
// When set on a Stage, trigger transitions are forwarded to it.
type EventSink interface {
	EmitTrigger(event TriggerEvent)
}

// TriggerEvent carries one visibility transition of a block.
type TriggerEvent struct {
	Block string
	Type  TriggerEventType
	Ratio float64
	Time  float64
}

// Frame is everything a painter needs for one display refresh.
type Frame struct {
	Time      float64                     `yaml:"time"`
	Blocks    map[string][]NodeSnapshot   `yaml:"blocks"`
	Ambient   map[string]Props            `yaml:"ambient"`
	Hovers    map[string]Props            `yaml:"hovers,omitempty"`
	Presences map[string]PresenceSnapshot `yaml:"presences,omitempty"`
	Scene     *SceneSnapshot              `yaml:"scene,omitempty"`
}

// Stage is the top-level object that owns every animated section of a page
// and the clock they are sampled against. It is single-threaded: call Tick,
// Observe and Frame from the frame loop only.
type Stage struct {
	now float64

	reveals []*Reveal
	byName  map[string]*Reveal
	margins map[string]float64
	loops   []*Loop
	hovers  []*Hover
	shows   []*Presence
	scene   *Scene

	sink  EventSink
	debug bool
}

// NewStage creates an empty stage at clock time 0.
func NewStage() *Stage {
	return &Stage{
		byName:  make(map[string]*Reveal),
		margins: make(map[string]float64),
	}
}

// AddReveal registers a reveal under its name. Names must be unique and may
// not be SceneBlock.
func (s *Stage) AddReveal(r *Reveal) error {
	if r.Name() == SceneBlock {
		return configError("block name", "%q is reserved for the scene", SceneBlock)
	}
	if _, dup := s.byName[r.Name()]; dup {
		return configError("block name", "duplicate block %q", r.Name())
	}
	s.reveals = append(s.reveals, r)
	s.byName[r.Name()] = r
	if s.debug {
		debugLogSchedule(r)
	}
	return nil
}

// SetMargin shrinks the viewport by m pixels when ObserveBox computes the
// visibility of block.
func (s *Stage) SetMargin(block string, m float64) {
	s.margins[block] = m
}

// AddLoop registers an ambient loop.
func (s *Stage) AddLoop(l *Loop) {
	s.loops = append(s.loops, l)
}

// AddHover registers a hover spring.
func (s *Stage) AddHover(h *Hover) {
	s.hovers = append(s.hovers, h)
}

// AddPresence registers a presence. Names must be unique among presences.
func (s *Stage) AddPresence(p *Presence) error {
	if s.Presence(p.Name()) != nil {
		return configError("presence name", "duplicate presence %q", p.Name())
	}
	s.shows = append(s.shows, p)
	return nil
}

// Presence returns the presence registered under name, or nil.
func (s *Stage) Presence(name string) *Presence {
	for _, p := range s.shows {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// SetScene sets the decorative 3D composition. Pass nil to remove it.
func (s *Stage) SetScene(sc *Scene) {
	s.scene = sc
}

// Scene returns the composition, or nil.
func (s *Stage) Scene() *Scene {
	return s.scene
}

// Reveal returns the reveal registered under name, or nil. SceneBlock
// resolves to the scene's badge entrances.
func (s *Stage) Reveal(name string) *Reveal {
	if name == SceneBlock {
		if s.scene == nil {
			return nil
		}
		return s.scene.Entrances()
	}
	return s.byName[name]
}

// Reveals returns the reveals in registration order. The returned slice MUST
// NOT be mutated.
func (s *Stage) Reveals() []*Reveal {
	return s.reveals
}

// SetEventSink sets the optional ECS bridge.
func (s *Stage) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug logging of trigger transitions and
// schedules to stderr.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Now returns the last clock time passed to Tick.
func (s *Stage) Now() float64 {
	return s.now
}

// Tick sets the clock to now, the elapsed seconds supplied by the frame
// scheduler, and steps hover springs by the time since the previous tick.
// A clock that jumps backwards is accepted; reveals fired later than now
// simply read as Pending.
func (s *Stage) Tick(now float64) {
	if !finite(now) {
		return
	}
	dt := now - s.now
	s.now = now
	for _, h := range s.hovers {
		h.Step(dt)
	}
}

// Observe feeds an intersection ratio for block at the current clock time.
// It reports whether the block's trigger changed state.
func (s *Stage) Observe(block string, ratio float64) bool {
	var (
		ev TriggerEventType
		ok bool
	)
	switch {
	case block == SceneBlock && s.scene != nil:
		ev, ok = s.scene.Observe(ratio, s.now)
	case s.byName[block] != nil:
		ev, ok = s.byName[block].Observe(ratio, s.now)
	default:
		logUnknownBlock(block)
		return false
	}
	if ok {
		s.emit(TriggerEvent{Block: block, Type: ev, Ratio: ratio, Time: s.now})
	}
	return ok
}

// ObserveBox computes the visible ratio of box within viewport, shrunk by
// the block's margin, and feeds it to Observe.
func (s *Stage) ObserveBox(block string, box, viewport Rect) bool {
	if m := s.margins[block]; m != 0 {
		viewport = viewport.Inset(m)
	}
	return s.Observe(block, VisibleRatio(box, viewport))
}

// Fire starts block at the current clock time, for content that animates on
// mount.
func (s *Stage) Fire(block string) bool {
	var ok bool
	switch {
	case block == SceneBlock && s.scene != nil:
		ok = s.scene.Fire(s.now)
	case s.byName[block] != nil:
		ok = s.byName[block].Fire(s.now)
	default:
		logUnknownBlock(block)
		return false
	}
	if ok {
		s.emit(TriggerEvent{Block: block, Type: TriggerEnter, Ratio: 1, Time: s.now})
	}
	return ok
}

// FireAll fires every reveal and the scene, as a page does on mount.
func (s *Stage) FireAll() {
	for _, r := range s.reveals {
		s.Fire(r.Name())
	}
	if s.scene != nil {
		s.Fire(SceneBlock)
	}
}

// Hover sets the hover target of the named spring.
func (s *Stage) Hover(name string, hovered bool) {
	for _, h := range s.hovers {
		if h.Name() == name {
			h.Set(hovered)
			return
		}
	}
}

// Press sets the press target of the named spring.
func (s *Stage) Press(name string, pressed bool) {
	for _, h := range s.hovers {
		if h.Name() == name {
			h.SetPressed(pressed)
			return
		}
	}
}

// Present shows or hides the named presence at the current clock time. It
// reports whether the target changed; changes are forwarded to the event
// sink as Enter and Leave.
func (s *Stage) Present(name string, shown bool) bool {
	p := s.Presence(name)
	if p == nil {
		logUnknownBlock(name)
		return false
	}
	if !p.Set(shown, s.now) {
		return false
	}
	ev := TriggerEvent{Block: name, Type: TriggerLeave, Time: s.now}
	if shown {
		ev.Type, ev.Ratio = TriggerEnter, 1
	}
	s.emit(ev)
	return true
}

func (s *Stage) emit(ev TriggerEvent) {
	if s.debug {
		debugLogTrigger(ev)
	}
	if s.sink != nil {
		s.sink.EmitTrigger(ev)
	}
}

// Sample returns the properties of one node of block at the current clock.
func (s *Stage) Sample(block, id string) Props {
	if r := s.Reveal(block); r != nil {
		return r.Sample(id, s.now)
	}
	return Rest
}

// Frame samples every section at the current clock time. Calling it several
// times between ticks returns identical frames.
func (s *Stage) Frame() Frame {
	f := Frame{
		Time:    s.now,
		Blocks:  make(map[string][]NodeSnapshot, len(s.reveals)),
		Ambient: make(map[string]Props, len(s.loops)),
	}
	for _, r := range s.reveals {
		f.Blocks[r.Name()] = r.Snapshot(s.now)
	}
	for _, l := range s.loops {
		f.Ambient[l.Name()] = l.Sample(s.now)
	}
	if len(s.hovers) > 0 {
		f.Hovers = make(map[string]Props, len(s.hovers))
		for _, h := range s.hovers {
			f.Hovers[h.Name()] = h.Props()
		}
	}
	if len(s.shows) > 0 {
		f.Presences = make(map[string]PresenceSnapshot, len(s.shows))
		for _, p := range s.shows {
			f.Presences[p.Name()] = p.Snapshot(s.now)
		}
	}
	if s.scene != nil {
		snap := s.scene.Snapshot(s.now)
		f.Scene = &snap
	}
	return f
}
