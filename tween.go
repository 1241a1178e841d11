package flixel

import (
	"errors"
	"math"
)

// TweenType selects the playback-completion policy of a Tween.
type TweenType uint8

const (
	// TweenDefault lets the engine pick: TweenOneShot, or TweenPersist when
	// the tween plays backward.
	TweenDefault TweenType = iota
	// TweenPersist freezes at the end value when finished but stays attached
	// to its manager, so it can be started again.
	TweenPersist
	// TweenLooping restarts from the beginning after each completed pass.
	TweenLooping
	// TweenPingPong restarts after each pass with the direction reversed.
	TweenPingPong
	// TweenOneShot freezes at the end value and detaches from its manager.
	TweenOneShot
)

// normalizeTweenType resolves TweenDefault the same way the raw mode setter
// does: plain default is one-shot, backward default is persist.
func normalizeTweenType(typ TweenType, backward bool) (TweenType, bool) {
	if typ == TweenDefault {
		if backward {
			typ = TweenPersist
		} else {
			typ = TweenOneShot
		}
	}
	return typ, backward
}

// CompleteCallback is invoked once per completed pass, before the tween's
// type decides what happens next. The callback may mutate, cancel, or
// restart the tween it receives.
type CompleteCallback func(*Tween)

// TweenOptions configures a new tween. The zero value is a forward one-shot
// with no easing, no delays, and pooling enabled.
type TweenOptions struct {
	// Type is the playback policy. TweenDefault normalizes to TweenOneShot
	// (TweenPersist when Backward is set).
	Type TweenType
	// Backward runs progress from 1 to 0 instead of 0 to 1.
	Backward bool
	// Ease shapes the linear progress. nil means linear.
	Ease EaseFunc
	// OnComplete fires once per completed pass.
	OnComplete CompleteCallback
	// StartDelay is the wait in seconds before the first pass.
	StartDelay float64
	// LoopDelay is the wait in seconds between loop repetitions.
	LoopDelay float64
	// Unpooled keeps ownership of a one-shot tween with the caller so it can
	// be canceled. Types other than forward one-shot are never pooled.
	Unpooled bool
}

// ErrPooledCancel is returned by Tween.Cancel on a pooled tween. The pool
// relies on one-shot tweens detaching themselves through completion, so
// pooling must be disabled (TweenOptions.Unpooled) to permit cancellation.
var ErrPooledCancel = errors.New("flixel: cannot cancel a pooled tween; pooling must be disabled to permit cancellation")

// Tween is a per-instance timer and state machine. It is driven once per
// frame by its manager and exposes the current progress through Scale; the
// apply closure captured at creation writes that progress into the target
// property.
//
// Tweens are created through TweenManager factory methods, which handle
// pool recycling. All methods are single-threaded: a tween must only ever
// be touched by the goroutine running the manager's Update loop.
//
// Known limit: when a single Update delta overshoots a looping or
// ping-pong tween by more than one full period, the overshoot wraps once,
// not N times, and executions advances by one.
type Tween struct {
	// Timing state. elapsed accumulates frame deltas since the last Start;
	// delayToUse is the delay snapshotted by Start, which delay setters keep
	// consistent when changed mid-flight.
	duration   float64
	elapsed    float64
	delayToUse float64
	startDelay float64
	loopDelay  float64

	scale      float64
	active     bool
	finished   bool
	backward   bool
	detached   bool
	executions int

	typ        TweenType
	ease       EaseFunc
	onComplete CompleteCallback
	pooled     bool
	apply      func(scale float64)
	manager    *TweenManager

	// UserData is a free slot for callers to associate arbitrary data with a
	// tween (for example, identifying it inside a shared OnComplete). It is
	// cleared when a recycled instance is reconfigured.
	UserData any
}

// init (re)configures a fresh or pool-recycled instance. Everything a
// previous life may have left behind is reset so recycled tweens start
// clean; the caller (a factory method) assigns duration afterward.
func (t *Tween) init(opt TweenOptions, apply func(scale float64)) {
	typ, backward := normalizeTweenType(opt.Type, opt.Backward)
	t.typ = typ
	t.backward = backward
	t.ease = opt.Ease
	t.onComplete = opt.OnComplete
	t.pooled = !opt.Unpooled && typ == TweenOneShot && !backward
	t.apply = apply
	t.UserData = nil

	t.duration = 0
	t.elapsed = 0
	t.delayToUse = 0
	t.scale = 0
	t.active = false
	t.finished = false
	t.detached = false
	t.executions = 0
	t.startDelay = math.Abs(opt.StartDelay)
	t.loopDelay = math.Abs(opt.LoopDelay)
}

// Start resets the timer state and activates the tween. The delay in effect
// for the pass is snapshotted here: the start delay before the first
// completion, the loop delay after it.
//
// A zero-duration tween deactivates immediately instead of activating, so
// the progress computation never divides by zero.
func (t *Tween) Start() *Tween {
	t.elapsed = 0
	if t.executions > 0 {
		t.delayToUse = t.loopDelay
	} else {
		t.delayToUse = t.startDelay
	}
	if t.duration == 0 {
		t.active = false
		return t
	}
	t.active = true
	t.finished = false
	return t
}

// Update advances the tween by dt seconds, recomputes Scale, invokes the
// apply closure, and runs Finish when the pass completes. Called once per
// frame by the manager while the tween is active; dt is trusted to be
// non-negative.
func (t *Tween) Update(dt float64) {
	t.elapsed += dt

	// The delay is re-read every frame rather than using the Start-time
	// snapshot, so a delay changed mid-flight takes effect together with the
	// re-based elapsed time (see SetStartDelay / SetLoopDelay).
	delay := t.startDelay
	if t.executions > 0 {
		delay = t.loopDelay
	}

	t.scale = math.Max(t.elapsed-delay, 0) / t.duration
	if t.ease != nil {
		t.scale = t.ease(t.scale)
	}
	if t.backward {
		t.scale = 1 - t.scale
	}
	if t.elapsed >= t.duration+delay {
		if t.backward {
			t.scale = 0
		} else {
			t.scale = 1
		}
		t.finished = true
	}

	if t.apply != nil {
		t.apply(t.scale)
	}
	if t.finished {
		t.Finish()
	}
}

// Finish completes the current pass: increments the execution count, fires
// the completion callback, then transitions according to the tween's type.
// Normally invoked from Update when the pass runs out; calling it directly
// forces completion.
//
// The callback runs before the transition and may re-enter the same tween
// (cancel it, restart it, change its delays). The type driving the
// transition is read before the callback so a mode change inside it cannot
// switch branches mid-finish.
func (t *Tween) Finish() {
	t.executions++

	typ := t.typ
	if t.onComplete != nil {
		t.onComplete(t)
	}

	switch typ {
	case TweenPersist, TweenOneShot:
		t.elapsed = t.duration + t.startDelay
		t.active = false
		t.finished = true
		if typ == TweenOneShot && t.manager != nil {
			t.manager.detach(t)
		}
	case TweenLooping:
		t.rewind()
		t.Start()
	case TweenPingPong:
		t.rewind()
		t.backward = !t.backward
		if t.backward {
			t.scale = 1 - t.scale
		}
		t.Start()
	}
}

// rewind wraps elapsed time back into the current period, carrying the
// overshoot past the period boundary, and recomputes scale from the wrapped
// residual. Easing is re-applied only strictly inside (0,1) so exact
// endpoints stay exact. A delta spanning more than one full period wraps
// once, not N times.
func (t *Tween) rewind() {
	t.elapsed = math.Mod(t.elapsed-t.delayToUse, t.duration) + t.delayToUse
	t.scale = math.Max(t.elapsed-t.delayToUse, 0) / t.duration
	if t.ease != nil && t.scale > 0 && t.scale < 1 {
		t.scale = t.ease(t.scale)
	}
}

// Cancel deactivates the tween and detaches it from its manager without
// invoking the completion callback. Canceling a pooled tween is a contract
// violation and returns ErrPooledCancel, leaving the tween untouched: the
// pool assumes one-shot tweens self-detach through Finish, and a forced
// cancellation would leave its bookkeeping dangling.
func (t *Tween) Cancel() error {
	if t.pooled {
		return ErrPooledCancel
	}
	t.active = false
	if t.manager != nil {
		t.manager.detach(t)
	}
	return nil
}

// Destroy clears the callback, easing, and apply references so a detached
// tween cannot keep its target alive. Counters and timing state survive, so
// Executions and Scale remain readable after detachment.
func (t *Tween) Destroy() {
	t.onComplete = nil
	t.ease = nil
	t.apply = nil
	t.UserData = nil
}

// SetDelays sets both delays at once and returns the tween for chaining.
// Negative values are treated as their magnitude.
func (t *Tween) SetDelays(startDelay, loopDelay float64) *Tween {
	t.SetStartDelay(startDelay)
	t.SetLoopDelay(loopDelay)
	return t
}

// SetStartDelay sets the delay before the first pass. Before the first
// completion the change re-bases elapsed time so the current Percent
// progress is preserved under the new delay; after the first completion
// only the stored value changes (it no longer drives timing).
func (t *Tween) SetStartDelay(delay float64) {
	delay = math.Abs(delay)
	if t.executions == 0 {
		p := t.Percent()
		t.elapsed = t.duration*p + delay
		t.delayToUse = delay
	}
	t.startDelay = delay
}

// SetLoopDelay sets the delay between loop repetitions. Symmetric to
// SetStartDelay: it re-bases timing only after the first completion, when
// the loop delay is the one in effect.
func (t *Tween) SetLoopDelay(delay float64) {
	delay = math.Abs(delay)
	if t.executions > 0 {
		p := t.Percent()
		t.elapsed = t.duration*p + delay
		t.delayToUse = delay
	}
	t.loopDelay = delay
}

// SetType changes the playback policy. TweenDefault normalizes to
// TweenOneShot, or TweenPersist when backward is set.
func (t *Tween) SetType(typ TweenType, backward bool) {
	t.typ, t.backward = normalizeTweenType(typ, backward)
}

// Type returns the normalized playback policy.
func (t *Tween) Type() TweenType {
	return t.typ
}

// Percent is the raw linear progress through the current pass in [0,1],
// before easing and direction are applied.
func (t *Tween) Percent() float64 {
	return math.Max(t.elapsed-t.delayToUse, 0) / t.duration
}

// SetPercent jumps the tween to an arbitrary progress point in the current
// pass. The next Update reflects the jump.
func (t *Tween) SetPercent(p float64) {
	t.elapsed = t.duration*p + t.delayToUse
}

// Scale is the current progress after easing and direction: the value the
// apply closure received on the latest Update.
func (t *Tween) Scale() float64 {
	return t.scale
}

// Active reports whether the manager should still advance this tween.
func (t *Tween) Active() bool {
	return t.active
}

// Finished reports whether the current pass has reached its end.
func (t *Tween) Finished() bool {
	return t.finished
}

// Backward reports whether progress currently runs from 1 to 0. For
// ping-pong tweens this flips on every completed pass.
func (t *Tween) Backward() bool {
	return t.backward
}

// Executions is the number of completed passes.
func (t *Tween) Executions() int {
	return t.executions
}

// Duration is the length of one forward pass in seconds.
func (t *Tween) Duration() float64 {
	return t.duration
}

// Pooled reports whether this instance returns to the manager's free-list
// on completion. Pooled tweens cannot be canceled.
func (t *Tween) Pooled() bool {
	return t.pooled
}
