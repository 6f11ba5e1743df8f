// Package motion orchestrates the entrance and ambient animations of a
// print-studio landing page.
//
// It decides what each element looks like at a given moment. It never draws:
// a [Painter] (or any other renderer) reads the [Frame] returned by
// [Stage.Frame] and produces pixels.
//
// # Quick start
//
// The simplest way to get started is [DefaultLayout], which holds the timing
// of the reference page, and [Run], which creates a window and drives the
// stage from Ebitengine's game loop:
//
//	stage, err := motion.DefaultLayout().Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//	motion.Run(stage, motion.RunConfig{
//		Title: "Studio", Width: 1280, Height: 720,
//		Painter: painter, MountFire: true,
//	})
//
// For full control, call [Stage.Tick], [Stage.Observe] and [Stage.Frame]
// from your own loop.
//
// # Reveal trees
//
// A staggered entrance is a tree of [Node] values: a headline is a sentence
// node holding word nodes holding character nodes. [NewSchedule] assigns every
// node an effective delay with one [StaggerPolicy] per depth:
//
//	delay(child k) = delay(parent) + base + k*interval + LocalDelay
//
// and freezes the tree. [NewTextReveal] and [NewCascade] build the common
// shapes. Each node moves Pending -> Animating -> Settled as time passes and
// is sampled with [Node.SampleAt], which has no side effects.
//
// # Triggers
//
// A [Reveal] starts when its [Trigger] sees the element cross a visibility
// threshold. [OnceWhenVisible] latches after the first entry; [WhileVisible]
// reverts the tree to Pending when the element leaves the viewport and
// replays it on the next entry. Blocks that animate on mount are started
// with [Stage.Fire].
//
// # Ambient motion
//
// Perpetual motion is a pure function of the clock. An [Oscillator] evaluates
// amplitude * sin(2π(t+phase)/period); [Keyframes] loops eased segments. A
// [Loop] maps tracks onto [Props] channels, and a [Scene] composes the
// floating panel stack, its sway and the overlay badges.
//
// # Interaction
//
// A [Hover] springs a button towards its lift while the pointer is over it
// and towards its press appearance while held; feed it with [Stage.Hover]
// and [Stage.Press]. A [Presence] animates content in when shown and back
// out before removal, like a mobile menu; toggle it with [Stage.Present].
//
// # Configuration
//
// [Layout] is the YAML form of every timing constant. [ReadLayout] and
// [WriteLayout] load and save it; [Layout.Build] validates it and returns a
// [Stage]. Invalid values surface as *[ConfigurationError] at construction
// time; sampling a frame never fails.
//
// # Scripts
//
// [LoadScript] parses a JSON list of clock, visibility and pointer steps, and
// [ScriptRunner] replays it against a stage, capturing labelled frames. This
// makes scroll-and-wait scenarios reproducible without a window.
package motion
