package motion

import (
	"math"
	"strings"
	"testing"
)

const demoTimeline = `
tweens:
  - name: rise
    target: hero
    to: {x: 100, y: [50, 0]}
    duration: 2
    ease: out-quad
    autostart: true
    chain: [fade]
  - name: fade
    target: hero
    to: {alpha: 0}
    duration: 1
  - name: spin
    target: coin
    to: {angle: 6.28}
    duration: 1
    loop: true
    yoyo: true
    delay: 0.5
`

func TestLoadTimelineDecodesEntries(t *testing.T) {
	tl, err := LoadTimeline(strings.NewReader(demoTimeline))
	if err != nil {
		t.Fatalf("LoadTimeline: %v", err)
	}
	if len(tl.Tweens) != 3 {
		t.Fatalf("decoded %d entries, want 3", len(tl.Tweens))
	}

	rise := tl.Tweens[0]
	if rise.Name != "rise" || rise.Target != "hero" || rise.Duration != 2 {
		t.Errorf("rise = %+v, fields mangled", rise)
	}
	if !rise.AutoStart || len(rise.Chain) != 1 || rise.Chain[0] != "fade" {
		t.Errorf("rise autostart/chain mangled: %+v", rise)
	}
	if v := rise.To["x"]; v.IsSequence() || v.Float() != 100 {
		t.Errorf("x decoded as %+v, want scalar 100", v)
	}
	if v := rise.To["y"]; !v.IsSequence() || len(v.Frames()) != 2 {
		t.Errorf("y decoded as %+v, want a 2-frame sequence", v)
	}

	spin := tl.Tweens[2]
	if !spin.Loop || !spin.Yoyo || spin.Delay != 0.5 {
		t.Errorf("spin flags mangled: %+v", spin)
	}
}

func TestLoadTimelineRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", "tweens: []"},
		{"missing target", "tweens: [{to: {x: 1}, duration: 1}]"},
		{"missing properties", "tweens: [{target: a, duration: 1}]"},
		{"unknown easing", "tweens: [{target: a, to: {x: 1}, duration: 1, ease: wobble}]"},
		{"unknown chain ref", "tweens: [{target: a, to: {x: 1}, duration: 1, chain: [ghost]}]"},
		{"duplicate names", "tweens: [{name: a, target: t, to: {x: 1}, duration: 1}, {name: a, target: t, to: {x: 1}, duration: 1}]"},
		{"unknown field", "tweens: [{target: a, to: {x: 1}, duration: 1, bounce: true}]"},
		{"value wrong kind", "tweens: [{target: a, to: {x: {nested: 1}}, duration: 1}]"},
	}
	for _, tt := range tests {
		if _, err := LoadTimeline(strings.NewReader(tt.doc)); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

func TestTimelineBuildWiresAndStarts(t *testing.T) {
	tl, err := LoadTimeline(strings.NewReader(demoTimeline))
	if err != nil {
		t.Fatalf("LoadTimeline: %v", err)
	}

	m, clock := newTestManager()
	hero := Object{"x": 0, "y": 100, "alpha": 1}
	coin := Object{"angle": 0}

	built, err := tl.Build(m, map[string]Target{"hero": hero, "coin": coin})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(built) != 3 {
		t.Fatalf("built %d tweens, want 3", len(built))
	}

	if !built["rise"].IsRunning() {
		t.Error("autostart entry should be running")
	}
	if built["fade"].IsRunning() {
		t.Error("non-autostart entry should wait for its chain")
	}
	if built["spin"].IsRunning() {
		t.Error("non-autostart entry should not be running")
	}
	if built["spin"].Delay() != 0.5 {
		t.Errorf("spin delay = %v, want 0.5", built["spin"].Delay())
	}

	// Run rise to completion; it should hand off to fade.
	clock.Set(2)
	m.Update()
	if x, _ := hero.Prop("x"); math.Abs(x-100) > 1e-9 {
		t.Errorf("x = %v after rise, want 100", x)
	}
	if !built["fade"].IsRunning() {
		t.Error("chain should have started fade")
	}
	clock.Set(3)
	m.Update()
	if alpha, _ := hero.Prop("alpha"); alpha != 0 {
		t.Errorf("alpha = %v after fade, want 0", alpha)
	}
}

func TestTimelineBuildUnknownTarget(t *testing.T) {
	tl, err := LoadTimeline(strings.NewReader(demoTimeline))
	if err != nil {
		t.Fatalf("LoadTimeline: %v", err)
	}
	m, _ := newTestManager()
	if _, err := tl.Build(m, map[string]Target{"hero": Object{}}); err == nil {
		t.Error("Build with a missing target should fail")
	}
}

func TestTimelineBuildSurfacesStartErrors(t *testing.T) {
	doc := `
tweens:
  - target: hero
    to: {ghost: 1}
    duration: 1
    autostart: true
`
	tl, err := LoadTimeline(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadTimeline: %v", err)
	}
	m, _ := newTestManager()
	_, err = tl.Build(m, map[string]Target{"hero": Object{"x": 0}})
	if err == nil {
		t.Fatal("Build should surface the start validation error")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error %q should name the missing property", err)
	}
}
