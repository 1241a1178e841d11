package flixel

import "testing"

func TestPoolAcquireReleaseRoundTrip(t *testing.T) {
	p := tweenPool{cap: 4}

	tw := p.Acquire()
	if tw == nil {
		t.Fatal("Acquire returned nil")
	}
	tw.executions = 3
	tw.scale = 0.7
	tw.UserData = "x"

	p.Release(tw)
	if p.Size() != 1 {
		t.Fatalf("size = %d, want 1", p.Size())
	}

	got := p.Acquire()
	if got != tw {
		t.Fatal("expected the released instance back")
	}
	if got.executions != 0 || got.scale != 0 || got.UserData != nil {
		t.Error("released instance was not reset")
	}
	if p.Size() != 0 {
		t.Errorf("size = %d, want 0", p.Size())
	}
}

func TestPoolDropsBeyondCapacity(t *testing.T) {
	p := tweenPool{cap: 2}
	for i := 0; i < 5; i++ {
		p.Release(&Tween{})
	}
	if p.Size() != 2 {
		t.Errorf("size = %d, want 2 (capacity bound)", p.Size())
	}
}

func TestPoolReleaseNil(t *testing.T) {
	p := tweenPool{cap: 2}
	p.Release(nil) // must not panic or grow
	if p.Size() != 0 {
		t.Errorf("size = %d, want 0", p.Size())
	}
}
