package flixel

// TweenManager owns a collection of tweens and advances them once per frame.
// Create one per scene (or per logical layer) and call Update from the game
// loop; there is no global manager.
//
// The manager also owns the instance free-list: pooled one-shot tweens are
// acquired from it by the factory methods and returned to it when they
// detach. Ownership of an instance transfers to the manager at Add and back
// to the pool on detach; no tween is ever owned by two parties at once.
type TweenManager struct {
	tweens []*Tween
	pool   tweenPool

	// Set while the Update loop runs so detachments triggered from inside
	// completion callbacks are deferred to the sweep instead of mutating the
	// slice under the loop.
	updating bool
	pending  int
}

// NewTweenManager creates an empty manager with the default pool capacity.
func NewTweenManager() *TweenManager {
	return &TweenManager{pool: tweenPool{cap: defaultPoolCap}}
}

// Update advances all attached active tweens by dt seconds. Tweens added
// from inside completion callbacks are not advanced until the next frame;
// tweens detached from inside callbacks are swept out afterward.
func (m *TweenManager) Update(dt float64) {
	m.updating = true
	n := len(m.tweens)
	for i := 0; i < n; i++ {
		t := m.tweens[i]
		if t.detached || !t.active {
			continue
		}
		t.Update(dt)
	}
	m.updating = false
	if m.pending > 0 {
		m.sweep()
	}
}

// Add attaches an externally held tween to this manager and, when start is
// set, starts it. Returns the tween for chaining.
func (m *TweenManager) Add(t *Tween, start bool) *Tween {
	if t == nil {
		panic("flixel: cannot add nil tween")
	}
	t.manager = m
	t.detached = false
	m.tweens = append(m.tweens, t)
	if start {
		t.Start()
	}
	return t
}

// Remove detaches a tween without invoking its completion callback. A
// pooled instance is destroyed and released back to the free-list; the
// caller must not touch it afterward.
func (m *TweenManager) Remove(t *Tween) {
	if t == nil || t.manager != m {
		return
	}
	t.active = false
	m.detach(t)
}

// Count returns the number of attached tweens, including inactive persist
// tweens that finished but were not removed.
func (m *TweenManager) Count() int {
	return len(m.tweens) - m.pending
}

// Clear detaches every tween without invoking completion callbacks.
func (m *TweenManager) Clear() {
	for _, t := range m.tweens {
		if t.detached {
			continue
		}
		t.active = false
		t.detached = true
		m.pending++
	}
	if !m.updating {
		m.sweep()
	}
}

// Tween creates a tween over the raw progress scale. apply receives the
// post-easing, post-direction scale once per frame; the typed factories
// (Num, Angle, Color, the motion family) are wrappers that capture their
// interpolation in this closure. The tween is attached and started.
func (m *TweenManager) Tween(duration float64, opt TweenOptions, apply func(scale float64)) *Tween {
	t := m.pool.Acquire()
	t.init(opt, apply)
	t.duration = duration
	return m.Add(t, true)
}

// detach marks a tween for removal. Called by the tween itself (one-shot
// completion, Cancel) or by Remove/Clear. Inside the Update loop the
// removal is deferred; otherwise it happens immediately.
func (m *TweenManager) detach(t *Tween) {
	if t.detached {
		return
	}
	t.detached = true
	m.pending++
	if !m.updating {
		m.sweep()
	}
}

// sweep compacts the tween slice, finalizing every detached instance.
func (m *TweenManager) sweep() {
	kept := m.tweens[:0]
	for _, t := range m.tweens {
		if t.detached {
			m.put(t)
			continue
		}
		kept = append(kept, t)
	}
	// Nil the tail so finalized tweens are not pinned by the backing array.
	for i := len(kept); i < len(m.tweens); i++ {
		m.tweens[i] = nil
	}
	m.tweens = kept
	m.pending = 0
}

// put is the pool-return hook for a detached tween. Non-pooled instances
// stay with their holder (counters remain readable); pooled ones are
// destroyed and returned to the free-list for the next factory call.
func (m *TweenManager) put(t *Tween) {
	t.manager = nil
	if t.pooled {
		t.Destroy()
		m.pool.Release(t)
	}
}
