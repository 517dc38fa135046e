package motion

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// TimelineEntry describes one tween in a [Timeline] document.
type TimelineEntry struct {
	// Name identifies the entry for chain references. Optional; unnamed
	// entries get "tween-<index>".
	Name string `yaml:"name"`
	// Target names the object to animate, resolved against the map passed
	// to Build.
	Target string `yaml:"target"`
	// To maps property names to end values (scalar or keyframe sequence).
	To Props `yaml:"to"`
	// Duration is the play time in seconds.
	Duration float64 `yaml:"duration"`
	// Ease names a curve, resolved via [EaseByName]. Empty keeps linear.
	Ease string `yaml:"ease"`
	// Delay is the pre-roll wait in seconds, applied only when positive.
	Delay float64 `yaml:"delay"`
	// Loop restarts the tween on completion.
	Loop bool `yaml:"loop"`
	// Yoyo plays forward then backward before completing.
	Yoyo bool `yaml:"yoyo"`
	// AutoStart starts the entry during Build.
	AutoStart bool `yaml:"autostart"`
	// Chain lists entry names to start when this tween completes.
	Chain []string `yaml:"chain"`
}

// Timeline is a declarative set of tweens decoded from YAML:
//
//	tweens:
//	  - name: rise
//	    target: hero
//	    to: {Y: 40, Alpha: [1, 0.2, 1]}
//	    duration: 1.5
//	    ease: out-bounce
//	    autostart: true
//	    chain: [fall]
//	  - name: fall
//	    target: hero
//	    to: {Y: 200}
//	    duration: 0.5
type Timeline struct {
	Tweens []TimelineEntry `yaml:"tweens"`
}

// LoadTimeline decodes and validates a timeline document from r.
func LoadTimeline(r io.Reader) (*Timeline, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var tl Timeline
	if err := dec.Decode(&tl); err != nil {
		return nil, fmt.Errorf("decode timeline: %w", err)
	}
	if len(tl.Tweens) == 0 {
		return nil, fmt.Errorf("decode timeline: no tweens")
	}

	names := make(map[string]int, len(tl.Tweens))
	for i, e := range tl.Tweens {
		name := entryName(e, i)
		if prev, dup := names[name]; dup {
			return nil, fmt.Errorf("timeline entry %q: duplicates entry %d", name, prev)
		}
		names[name] = i

		if e.Target == "" {
			return nil, fmt.Errorf("timeline entry %q: missing target", name)
		}
		if len(e.To) == 0 {
			return nil, fmt.Errorf("timeline entry %q: missing properties", name)
		}
		if e.Ease != "" {
			if _, ok := EaseByName(e.Ease); !ok {
				return nil, fmt.Errorf("timeline entry %q: unknown easing %q", name, e.Ease)
			}
		}
	}
	for i, e := range tl.Tweens {
		for _, ref := range e.Chain {
			if _, ok := names[ref]; !ok {
				return nil, fmt.Errorf("timeline entry %q: chain references unknown entry %q", entryName(e, i), ref)
			}
		}
	}
	return &tl, nil
}

// Build constructs the timeline's tweens on m, resolving target names
// against targets and chain references against entry names, then starts the
// entries marked autostart. The returned map is keyed by entry name.
func (tl *Timeline) Build(m *Manager, targets map[string]Target) (map[string]*Tween, error) {
	built := make(map[string]*Tween, len(tl.Tweens))

	for i, e := range tl.Tweens {
		name := entryName(e, i)
		target, ok := targets[e.Target]
		if !ok {
			return nil, fmt.Errorf("timeline entry %q: no target named %q", name, e.Target)
		}
		var easing Easing
		if e.Ease != "" {
			easing, _ = EaseByName(e.Ease)
		}
		tw, err := m.NewTween(target).To(e.To, e.Duration, Options{
			Ease:  easing,
			Delay: e.Delay,
			Loop:  e.Loop,
			Yoyo:  e.Yoyo,
		})
		if err != nil {
			return nil, fmt.Errorf("timeline entry %q: %w", name, err)
		}
		built[name] = tw
	}

	for i, e := range tl.Tweens {
		tw := built[entryName(e, i)]
		for _, ref := range e.Chain {
			tw.Chain(built[ref])
		}
	}

	for i, e := range tl.Tweens {
		if !e.AutoStart {
			continue
		}
		name := entryName(e, i)
		if _, err := built[name].Start(); err != nil {
			return nil, fmt.Errorf("timeline entry %q: %w", name, err)
		}
	}
	return built, nil
}

func entryName(e TimelineEntry, i int) string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("tween-%d", i)
}

// UnmarshalYAML decodes a Value from either a YAML number or a sequence of
// numbers.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("tween value: %w", err)
		}
		*v = Num(f)
		return nil
	case yaml.SequenceNode:
		var frames []float64
		if err := node.Decode(&frames); err != nil {
			return fmt.Errorf("tween value: %w", err)
		}
		*v = Seq(frames...)
		return nil
	default:
		return fmt.Errorf("tween value: line %d: expected a number or a sequence of numbers", node.Line)
	}
}
