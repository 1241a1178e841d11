package flixel

// defaultPoolCap bounds how many recycled instances a manager keeps. Beyond
// this, released tweens are left to the GC.
const defaultPoolCap = 64

// tweenPool is a fixed-capacity free-list of Tween instances. Only the
// owning manager takes from or returns to it. After warmup, steady-state
// one-shot tween churn is zero-alloc.
type tweenPool struct {
	free []*Tween
	cap  int
}

// Acquire returns a clean instance: recycled from the free-list when one is
// available, freshly allocated otherwise. Recycled instances were fully
// reset at release time.
func (p *tweenPool) Acquire() *Tween {
	if n := len(p.free); n > 0 {
		t := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return t
	}
	return &Tween{}
}

// Release resets every mutable field and returns the instance to the
// free-list. Releases beyond capacity are dropped.
func (p *tweenPool) Release(t *Tween) {
	if t == nil || len(p.free) >= p.cap {
		return
	}
	*t = Tween{}
	p.free = append(p.free, t)
}

// Size returns how many instances currently sit in the free-list.
func (p *tweenPool) Size() int {
	return len(p.free)
}
