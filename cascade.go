package motion

// CascadeConfig describes a row of sibling blocks revealed one after another,
// such as the hero copy blocks or the feature cards.
type CascadeConfig struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
	// Delay before the first item starts.
	Delay float64 `yaml:"delay"`
	// Interval between consecutive items.
	Interval float64 `yaml:"interval"`
	Duration float64 `yaml:"duration"`
	Easing   Easing  `yaml:"easing"`
	Rise     float64 `yaml:"rise"`
	Blur     float64 `yaml:"blur,omitempty"`
	// Margin shrinks the viewport before computing visibility, in pixels.
	Margin  float64       `yaml:"margin,omitempty"`
	Trigger TriggerConfig `yaml:"trigger"`
}

// NewCascade builds a one-level reveal with one child per item. The root
// node takes the cascade name, so no item may reuse it.
func NewCascade(cfg CascadeConfig) (*Reveal, error) {
	props := FadeUp(cfg.Rise, cfg.Blur)
	root := NewGroup(cfg.Name)
	for _, item := range cfg.Items {
		if item == cfg.Name {
			return nil, configError("cascade item", "item %q has the same id as its cascade", item)
		}
		root.AddChild(NewNode(item, cfg.Duration, cfg.Easing, props))
	}
	return NewReveal(cfg.Name, root, RevealConfig{
		Delay:   cfg.Delay,
		Levels:  []StaggerPolicy{{ChildInterval: cfg.Interval}},
		Trigger: cfg.Trigger,
	})
}
