package motion

import (
	"testing"
)

func TestNewManagerInstallsGameClockByDefault(t *testing.T) {
	m := NewManager(nil)
	if _, ok := m.Clock().(*GameClock); !ok {
		t.Fatalf("default clock is %T, want *GameClock", m.Clock())
	}
}

func TestManagerAdvancesAllAndDropsFinished(t *testing.T) {
	m, clock := newTestManager()
	short := Object{"x": 0}
	long := Object{"x": 0}

	if _, err := m.NewTween(short).To(Props{"x": Num(1)}, 1, Options{AutoStart: true}); err != nil {
		t.Fatalf("start short: %v", err)
	}
	if _, err := m.NewTween(long).To(Props{"x": Num(1)}, 5, Options{AutoStart: true}); err != nil {
		t.Fatalf("start long: %v", err)
	}
	if m.Count() != 2 {
		t.Fatalf("Count = %d, want 2", m.Count())
	}

	clock.Set(1)
	if !m.Update() {
		t.Fatal("long tween still active")
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d after short finished, want 1", m.Count())
	}
	if x, _ := short.Prop("x"); x != 1 {
		t.Errorf("short x = %v, want 1", x)
	}

	clock.Set(5)
	if m.Update() {
		t.Fatal("manager should be idle once every tween finished")
	}
	if m.Count() != 0 {
		t.Errorf("Count = %d, want 0", m.Count())
	}
}

func TestManagerIsTweening(t *testing.T) {
	m, clock := newTestManager()
	obj := Object{"x": 0}
	other := Object{"x": 0}

	if _, err := m.NewTween(obj).To(Props{"x": Num(1)}, 1, Options{AutoStart: true}); err != nil {
		t.Fatalf("start: %v", err)
	}

	if !m.IsTweening(obj) {
		t.Error("IsTweening should report the active target")
	}
	if m.IsTweening(other) {
		t.Error("IsTweening should not report an unrelated target")
	}

	clock.Set(1)
	m.Update()
	if m.IsTweening(obj) {
		t.Error("IsTweening should clear once the tween finished")
	}
}

func TestManagerRemoveAllSkipsCompletion(t *testing.T) {
	m, clock := newTestManager()
	obj := Object{"x": 0}

	tw, err := m.NewTween(obj).To(Props{"x": Num(10)}, 1, Options{AutoStart: true})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	fired := false
	tw.Completed.Connect(func(Target) { fired = true })

	m.RemoveAll()
	if m.Count() != 0 {
		t.Errorf("Count = %d after RemoveAll, want 0", m.Count())
	}
	if tw.IsRunning() {
		t.Error("removed tween must not be running")
	}

	clock.Set(5)
	m.Update()
	if fired {
		t.Error("RemoveAll must not fire completion")
	}
	if x, _ := obj.Prop("x"); x != 0 {
		t.Errorf("x = %v, want untouched 0", x)
	}
}

func TestManagerPauseAllResumeAll(t *testing.T) {
	m, clock := newTestManager()
	obj := Object{"x": 0}

	if _, err := m.NewTween(obj).To(Props{"x": Num(10)}, 10, Options{AutoStart: true}); err != nil {
		t.Fatalf("start: %v", err)
	}

	clock.Set(4)
	m.Update()

	m.PauseAll()
	clock.Advance(6)
	m.Update()
	if x, _ := obj.Prop("x"); x != 4 {
		t.Errorf("x = %v while paused, want frozen 4", x)
	}

	m.ResumeAll()
	clock.Advance(2) // at 12, with a 6 second pause span discounted
	m.Update()
	if x, _ := obj.Prop("x"); x != 6 {
		t.Errorf("x = %v after resume, want 6", x)
	}
}

func TestChainedStartDuringUpdateJoinsNextPass(t *testing.T) {
	m, clock := newTestManager()
	objA := Object{"x": 0}
	objB := Object{"y": 5}

	a, err := m.NewTween(objA).To(Props{"x": Num(1)}, 1, Options{AutoStart: true})
	if err != nil {
		t.Fatalf("start a: %v", err)
	}
	b, _ := m.NewTween(objB).To(Props{"y": Num(10)}, 1, Options{})
	a.Chain(b)

	// The pass that completes a starts b re-entrantly; b must not be
	// advanced inside this same pass.
	clock.Set(1)
	if !m.Update() {
		t.Fatal("manager should stay active: the chained tween just started")
	}
	if y, _ := objB.Prop("y"); y != 5 {
		t.Errorf("y = %v, want 5 (chained tween untouched in the parent's pass)", y)
	}

	clock.Set(2)
	if m.Update() {
		t.Fatal("chained tween should finish one duration later")
	}
	if y, _ := objB.Prop("y"); y != 10 {
		t.Errorf("y = %v, want 10", y)
	}
}

func TestStopInsideListenerDuringUpdate(t *testing.T) {
	m, clock := newTestManager()
	victim := Object{"x": 0}
	killer := Object{"x": 0}

	vt, err := m.NewTween(victim).To(Props{"x": Num(10)}, 10, Options{AutoStart: true})
	if err != nil {
		t.Fatalf("start victim: %v", err)
	}
	kt, err := m.NewTween(killer).To(Props{"x": Num(10)}, 10, Options{AutoStart: true})
	if err != nil {
		t.Fatalf("start killer: %v", err)
	}
	kt.Updated.Connect(func(Target, float64) {
		vt.Stop()
	})

	clock.Set(1)
	m.Update() // must not corrupt iteration
	if m.IsTweening(victim) {
		t.Error("stopped tween should be out of the active set")
	}
	if !m.IsTweening(killer) {
		t.Error("the stopping tween itself should stay active")
	}
}

func TestManagerDefaultsInstalledOnNewTweens(t *testing.T) {
	m, clock := newTestManager()
	m.Easing = func(t float64) float64 { return 1 } // jump straight to the end
	obj := Object{"x": 0}

	tw, err := m.NewTween(obj).To(Props{"x": Num(10)}, 10, Options{AutoStart: true})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	clock.Set(0.1)
	tw.Update(clock.Now())
	if x, _ := obj.Prop("x"); x != 10 {
		t.Errorf("x = %v, want 10 via the manager's default easing", x)
	}
}
