package motion

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// TextConfig is the configuration surface of one staggered headline.
type TextConfig struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
	// Delay before the first character starts, after the trigger fires.
	Delay float64 `yaml:"delay"`
	// WordInterval separates the start of consecutive words.
	WordInterval float64 `yaml:"wordInterval"`
	// CharInterval separates the start of consecutive characters in a word.
	CharInterval float64 `yaml:"charInterval"`
	// Duration of each character's entrance.
	Duration float64 `yaml:"duration"`
	Easing   Easing  `yaml:"easing"`
	// Rise is the starting vertical offset of each character.
	Rise float64 `yaml:"rise"`
	// Blur is the starting blur radius of each character.
	Blur    float64       `yaml:"blur"`
	Trigger TriggerConfig `yaml:"trigger"`
}

// Glyph is one user-perceived character of a text reveal.
type Glyph struct {
	ID   string // node id, "w<word>/c<char>"
	Text string // grapheme cluster
	Word int    // index of the word
	Char int    // index within the word
}

// NewTextReveal decomposes cfg.Text into words (split on white space) and
// grapheme clusters, and schedules them with word-level and character-level
// stagger. The sentence and word nodes are still groups; only characters
// animate.
func NewTextReveal(cfg TextConfig) (*Reveal, error) {
	root := BuildTextTree(cfg)
	return NewReveal(cfg.Name, root, RevealConfig{
		Delay: cfg.Delay,
		Levels: []StaggerPolicy{
			{ChildInterval: cfg.WordInterval},
			{ChildInterval: cfg.CharInterval},
		},
		Trigger: cfg.Trigger,
	})
}

// BuildTextTree returns the unscheduled sentence -> word -> character tree for
// cfg. Each character node carries its Glyph as UserData.
func BuildTextTree(cfg TextConfig) *Node {
	props := FadeUp(cfg.Rise, cfg.Blur)
	root := NewGroup(cfg.Name)
	for w, word := range Words(cfg.Text) {
		wordNode := NewGroup(fmt.Sprintf("w%d", w))
		root.AddChild(wordNode)

		g := uniseg.NewGraphemes(word)
		for c := 0; g.Next(); c++ {
			id := fmt.Sprintf("w%d/c%d", w, c)
			n := NewNode(id, cfg.Duration, cfg.Easing, props)
			n.UserData = Glyph{ID: id, Text: g.Str(), Word: w, Char: c}
			wordNode.AddChild(n)
		}
	}
	return root
}

// Glyphs lists the characters of a text reveal in reading order. Nodes that
// were not built by BuildTextTree are skipped.
func Glyphs(r *Reveal) []Glyph {
	var out []Glyph
	for _, n := range r.Schedule().Nodes() {
		if g, ok := n.UserData.(Glyph); ok {
			out = append(out, g)
		}
	}
	return out
}

// Words returns the words of text as the reveal tree sees them.
func Words(text string) []string {
	return strings.Fields(text)
}
