package motion

import (
	"maps"
	"slices"
)

// defaultDuration is used when To is never given a positive duration.
const defaultDuration = 1.0

// Tween interpolates named numeric properties of a [Target] from a start
// snapshot captured at [Tween.Start] to an end snapshot configured by
// [Tween.To], over a duration, through a pluggable easing curve. Tweens are
// advanced externally, once per frame, by their owning [Manager].
//
// A tween can reverse itself once before completing (yoyo), restart forever
// (loop), and hand off to other tweens when it finishes (chain). Lifecycle
// notifications fire through three channels: Started, Updated, Completed.
type Tween struct {
	// Started fires on every external Start with the target as payload.
	Started Signal[func(Target)]
	// Updated fires after each property write pass with the target and the
	// eased progress value, which may lie outside [0, 1] for overshooting
	// curves.
	Updated Signal[func(Target, float64)]
	// Completed fires when a non-looping play-through finishes. Stop
	// disposes this channel.
	Completed Signal[func(Target)]

	target  Target
	manager *Manager

	startValues map[string]Value
	endValues   map[string]Value

	duration  float64
	delay     float64
	startTime float64

	easing Easing
	interp Interpolation

	loop      bool
	yoyo      bool
	yoyoCount int

	running bool
	paused  bool

	// seeded records that the current configuration's keyframe sequences
	// have already been prefixed with the target's live values, so a second
	// Start does not prepend again.
	seeded bool

	chained []*Tween

	// removed marks the tween for deletion from the manager's active set at
	// the end of the current update pass.
	removed bool
}

// NewTween returns a tween bound to target and owned by m. Either may be
// nil; such a tween is inert and Start on it is a silent no-op until both
// are bound.
func NewTween(target Target, m *Manager) *Tween {
	tw := &Tween{
		target:   target,
		manager:  m,
		duration: defaultDuration,
		easing:   Linear,
		interp:   LinearInterpolation,
	}
	if m != nil {
		if m.Easing != nil {
			tw.easing = m.Easing
		}
		if m.Interp != nil {
			tw.interp = m.Interp
		}
	}
	return tw
}

// To installs a fresh forward configuration: the end values (wholesale,
// replacing any previous set), the duration, and the options. A non-positive
// duration keeps the previous (or default) duration; a non-positive delay
// keeps the previous delay. Property existence is not checked here — that
// happens at Start.
//
// Returns the tween itself, or the result of [Tween.Start] when
// opts.AutoStart is set. The error is always nil without AutoStart.
func (tw *Tween) To(props Props, duration float64, opts Options) (*Tween, error) {
	if duration > 0 {
		tw.duration = duration
	}
	tw.endValues = make(map[string]Value, len(props))
	for k, v := range props {
		tw.endValues[k] = v.clone()
	}
	tw.startValues = nil
	if opts.Ease != nil {
		tw.easing = opts.Ease
	}
	if opts.Interp != nil {
		tw.interp = opts.Interp
	}
	if opts.Delay > 0 {
		tw.delay = opts.Delay
	}
	tw.loop = opts.Loop
	tw.yoyo = opts.Yoyo
	tw.yoyoCount = 0
	tw.seeded = false
	if opts.AutoStart {
		return tw.Start()
	}
	return tw, nil
}

// Start begins playback: it registers the tween with its manager, fires the
// Started channel, anchors the start time (shifted by any delay), and
// captures the target's current values as the start snapshot.
//
// Start returns (nil, nil) when the tween has no manager or no target bound
// yet — a deliberate silent no-op, not an error. It returns a
// [MissingPropertyError] when an end value refers to a property the target
// does not have; the whole start is aborted on the first such property
// (checked in sorted key order, so the reported property is deterministic)
// and the tween is deregistered.
func (tw *Tween) Start() (*Tween, error) {
	return tw.start(false)
}

// start is the shared entry point for external starts (looped == false) and
// the internal restarts issued by Reverse and Reset (looped == true).
// Registration, the Started notification, keyframe seeding, and start-value
// capture are exclusive to external starts.
func (tw *Tween) start(looped bool) (*Tween, error) {
	if tw.manager == nil || tw.target == nil {
		return nil, nil
	}

	if !looped {
		tw.manager.add(tw)
		for _, fn := range tw.Started.handlers {
			fn(tw.target)
		}
	}

	tw.startTime = tw.manager.clock.Now() + tw.delay
	tw.running = true

	if !looped {
		tw.startValues = make(map[string]Value, len(tw.endValues))
	}

	for _, key := range slices.Sorted(maps.Keys(tw.endValues)) {
		cur, ok := tw.target.Prop(key)
		if !ok {
			tw.running = false
			tw.manager.remove(tw)
			return nil, &MissingPropertyError{Property: key}
		}

		end := tw.endValues[key]
		if end.isSeq {
			// An empty sequence leaves the property untouched for the whole
			// tween: no start value is captured, so Update never writes it.
			if len(end.frames) == 0 {
				continue
			}
			if !looped && !tw.seeded {
				end.frames = append([]float64{cur}, end.frames...)
				tw.endValues[key] = end
			}
		}

		if !looped {
			tw.startValues[key] = Num(cur)
		}
	}
	if !looped {
		tw.seeded = true
	}
	return tw, nil
}

// Reverse swaps the start and end snapshots key-for-key, counts the yoyo
// leg, and restarts internally. It is the turn-around half of the yoyo path
// and does not re-fire Started.
func (tw *Tween) Reverse() *Tween {
	tw.startValues, tw.endValues = tw.endValues, tw.startValues
	tw.yoyoCount++
	if _, err := tw.start(true); err != nil {
		// Only reachable if the caller removed target properties mid-flight.
		tw.Stop()
	}
	return tw
}

// Reset writes the captured start values back onto the target, restoring its
// pre-tween state, and restarts internally. It is the wrap-around half of
// the loop path and does not re-fire Started.
func (tw *Tween) Reset() *Tween {
	if tw.target != nil {
		for key, v := range tw.startValues {
			tw.target.SetProp(key, v.Float())
		}
	}
	if _, err := tw.start(true); err != nil {
		tw.Stop()
	}
	return tw
}

// Update advances the tween to the absolute time now and writes the
// interpolated values to the target. It returns true while the tween is
// still alive (including during the delay window and while paused) and
// false exactly once, on the tick where the play-through finishes; the
// manager drops the tween from its active set on false.
func (tw *Tween) Update(now float64) bool {
	if tw.paused || now < tw.startTime {
		return true
	}

	elapsed := (now - tw.startTime) / tw.duration
	if elapsed > 1 {
		elapsed = 1
	}
	t := tw.easing(elapsed)

	for key, sv := range tw.startValues {
		end, ok := tw.endValues[key]
		if !ok {
			// An empty keyframe sequence that migrated across a Reverse
			// swap: the property stays untouched.
			continue
		}
		if end.isSeq {
			tw.target.SetProp(key, tw.interp(end.frames, t))
		} else {
			// Unclamped t flows through the blend, so overshooting curves
			// push the property past its end value.
			start := sv.Float()
			tw.target.SetProp(key, start+(end.n-start)*t)
		}
	}

	for _, fn := range tw.Updated.handlers {
		fn(tw.target, t)
	}

	if elapsed < 1 {
		return true
	}

	if tw.yoyo {
		if tw.yoyoCount == 0 {
			tw.Reverse()
			return true
		}
		if tw.loop {
			tw.yoyoCount = 0
			tw.Reverse()
			return true
		}
		tw.complete()
		return false
	}

	if tw.loop {
		tw.yoyoCount = 0
		tw.Reset()
		return true
	}

	tw.complete()
	if len(tw.chained) == 0 {
		tw.running = false
	}
	return false
}

// complete fires the Completed channel, then starts every chained tween in
// sequence order. Chain starts run synchronously, after the notification and
// before the parent's Update returns.
func (tw *Tween) complete() {
	for _, fn := range tw.Completed.handlers {
		fn(tw.target)
	}
	for _, next := range tw.chained {
		// A chained tween that fails its own start validation is skipped;
		// its error is not re-raised through the parent's Update.
		next.Start()
	}
}

// OnStart connects fn to the Started channel and returns its unsubscribe
// function.
func (tw *Tween) OnStart(fn func(Target)) (unsubscribe func()) {
	return tw.Started.Connect(fn)
}

// OnUpdate connects fn to the Updated channel and returns its unsubscribe
// function.
func (tw *Tween) OnUpdate(fn func(Target, float64)) (unsubscribe func()) {
	return tw.Updated.Connect(fn)
}

// OnComplete connects fn to the Completed channel and returns its unsubscribe
// function.
func (tw *Tween) OnComplete(fn func(Target)) (unsubscribe func()) {
	return tw.Completed.Connect(fn)
}

// Pause freezes the tween: Update becomes a no-op and the start time is left
// unchanged.
func (tw *Tween) Pause() {
	tw.paused = true
}

// Resume unfreezes the tween and shifts its start time forward by the
// clock's recorded pause duration, so time spent paused does not count as
// elapsed tween time.
func (tw *Tween) Resume() {
	tw.paused = false
	if tw.manager != nil {
		tw.startTime += tw.manager.clock.PauseDuration()
	}
}

// Stop ends the tween early: it deregisters from the manager, clears the
// running flag, and disposes the Completed channel so no further completion
// listeners can attach.
func (tw *Tween) Stop() *Tween {
	if tw.manager != nil {
		tw.manager.remove(tw)
	}
	tw.running = false
	tw.Completed.Dispose()
	return tw
}

// Clear drops all chained tweens and removes every listener from all three
// channels. Run state is untouched.
func (tw *Tween) Clear() *Tween {
	tw.chained = nil
	tw.Started.Clear()
	tw.Updated.Clear()
	tw.Completed.Clear()
	return tw
}

// Chain appends tweens to be started, in order, when this tween completes
// without looping.
func (tw *Tween) Chain(next ...*Tween) *Tween {
	tw.chained = append(tw.chained, next...)
	return tw
}

// Loop sets whether the tween restarts from its start values on completion.
func (tw *Tween) Loop(on bool) *Tween {
	tw.loop = on
	return tw
}

// Yoyo sets whether the tween plays backward once before completing, and
// resets the yoyo leg counter.
func (tw *Tween) Yoyo(on bool) *Tween {
	tw.yoyo = on
	tw.yoyoCount = 0
	return tw
}

// Target returns the object the tween animates.
func (tw *Tween) Target() Target {
	return tw.target
}

// Manager returns the owning manager.
func (tw *Tween) Manager() *Manager {
	return tw.manager
}

// SetManager re-parents the tween onto another manager. The tween is not
// moved between active sets; re-parenting a running tween takes effect on
// its next external Start.
func (tw *Tween) SetManager(m *Manager) {
	tw.manager = m
}

// Delay returns the pre-roll wait in seconds.
func (tw *Tween) Delay() float64 {
	return tw.delay
}

// SetDelay sets the pre-roll wait in seconds. It affects the next start.
func (tw *Tween) SetDelay(d float64) {
	tw.delay = d
}

// SetEasing replaces the easing function. A nil function is ignored.
func (tw *Tween) SetEasing(fn Easing) {
	if fn != nil {
		tw.easing = fn
	}
}

// SetInterpolation replaces the keyframe interpolation function. A nil
// function is ignored.
func (tw *Tween) SetInterpolation(fn Interpolation) {
	if fn != nil {
		tw.interp = fn
	}
}

// IsRunning reports whether the tween is active. A tween that completes
// with chained tweens pending leaves this true even though it no longer
// updates.
func (tw *Tween) IsRunning() bool {
	return tw.running
}

// IsPaused reports whether the tween is paused.
func (tw *Tween) IsPaused() bool {
	return tw.paused
}
