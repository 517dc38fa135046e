package motion

// Manager owns the set of active tweens and advances each one once per tick.
// It also supplies the clock and the default easing and interpolation
// functions to the tweens it creates — it is the tween's owning context.
//
// Tweens register themselves on Start and are dropped automatically when a
// play-through finishes. Adds and removes that happen inside an update pass
// (chained starts, Stop calls from listeners) are deferred until the pass
// ends, so re-entrant mutation cannot corrupt the iteration.
type Manager struct {
	// Easing is the default easing installed on tweens created by NewTween.
	Easing Easing
	// Interp is the default keyframe interpolation installed on tweens
	// created by NewTween.
	Interp Interpolation

	clock    Clock
	tweens   []*Tween
	added    []*Tween
	updating bool
}

// NewManager returns a manager driven by clock. A nil clock installs a
// [GameClock].
func NewManager(clock Clock) *Manager {
	if clock == nil {
		clock = NewGameClock()
	}
	return &Manager{
		clock:  clock,
		Easing: Linear,
		Interp: LinearInterpolation,
	}
}

// Clock returns the manager's time source.
func (m *Manager) Clock() Clock {
	return m.clock
}

// NewTween returns a tween bound to target and owned by this manager.
func (m *Manager) NewTween(target Target) *Tween {
	return NewTween(target, m)
}

// Update advances every active tween to the clock's current time and drops
// the ones that finished. Returns true while any tween remains active.
func (m *Manager) Update() bool {
	if len(m.tweens) == 0 && len(m.added) == 0 {
		return false
	}

	now := m.clock.Now()
	m.updating = true
	for _, tw := range m.tweens {
		if tw.removed {
			continue
		}
		if !tw.Update(now) {
			tw.removed = true
		}
	}
	m.updating = false
	m.compact()
	m.merge()

	return len(m.tweens) > 0
}

// Count returns the number of active tweens, including ones added during
// the current tick.
func (m *Manager) Count() int {
	n := len(m.added)
	for _, tw := range m.tweens {
		if !tw.removed {
			n++
		}
	}
	return n
}

// IsTweening reports whether any active tween animates target.
func (m *Manager) IsTweening(target Target) bool {
	for _, tw := range m.tweens {
		if !tw.removed && tw.target == target {
			return true
		}
	}
	for _, tw := range m.added {
		if tw.target == target {
			return true
		}
	}
	return false
}

// RemoveAll drops every tween from the active set without firing completion
// notifications.
func (m *Manager) RemoveAll() {
	for _, tw := range m.tweens {
		tw.running = false
		tw.removed = true
	}
	for _, tw := range m.added {
		tw.running = false
		tw.removed = true
	}
	if !m.updating {
		m.compact()
		m.merge()
	}
}

// PauseAll pauses the clock (when it supports pausing) and every active
// tween. Use with ResumeAll for host "game pause" semantics: the paused
// span is discounted from every tween's elapsed time on resume.
func (m *Manager) PauseAll() {
	if pc, ok := m.clock.(pausable); ok {
		pc.Pause()
	}
	for _, tw := range m.tweens {
		tw.Pause()
	}
	for _, tw := range m.added {
		tw.Pause()
	}
}

// ResumeAll resumes the clock (when it supports pausing) and every active
// tween.
func (m *Manager) ResumeAll() {
	if pc, ok := m.clock.(pausable); ok {
		pc.Resume()
	}
	for _, tw := range m.tweens {
		tw.Resume()
	}
	for _, tw := range m.added {
		tw.Resume()
	}
}

// add registers a tween, deferring the append while an update pass runs.
// Adding an already-registered tween only clears its pending removal.
func (m *Manager) add(tw *Tween) {
	if m.has(tw) {
		tw.removed = false
		return
	}
	tw.removed = false
	if m.updating {
		m.added = append(m.added, tw)
	} else {
		m.tweens = append(m.tweens, tw)
	}
}

// remove marks a tween for removal, deferring the splice while an update
// pass runs.
func (m *Manager) remove(tw *Tween) {
	if !m.has(tw) {
		return
	}
	tw.removed = true
	if !m.updating {
		m.compact()
	}
}

func (m *Manager) has(tw *Tween) bool {
	for _, t := range m.tweens {
		if t == tw {
			return true
		}
	}
	for _, t := range m.added {
		if t == tw {
			return true
		}
	}
	return false
}

// compact splices out tweens marked removed, preserving order.
func (m *Manager) compact() {
	alive := m.tweens[:0]
	for _, tw := range m.tweens {
		if !tw.removed {
			alive = append(alive, tw)
		}
	}
	for i := len(alive); i < len(m.tweens); i++ {
		m.tweens[i] = nil
	}
	m.tweens = alive
}

// merge moves tweens added during the last update pass into the active set.
func (m *Manager) merge() {
	if len(m.added) == 0 {
		return
	}
	for _, tw := range m.added {
		if !tw.removed {
			m.tweens = append(m.tweens, tw)
		}
	}
	m.added = m.added[:0]
}
