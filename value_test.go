package flixel

import (
	"math"
	"testing"
)

func TestNumInterpolates(t *testing.T) {
	m := NewTweenManager()
	var v float64
	m.Num(10, 30, 1.0, TweenOptions{Unpooled: true}, func(value float64) {
		v = value
	})

	m.Update(0.5)
	if math.Abs(v-20) > 1e-9 {
		t.Errorf("value at midpoint = %f, want 20", v)
	}
	m.Update(0.5)
	if v != 30 {
		t.Errorf("value at end = %f, want exactly 30", v)
	}
}

func TestNumBackwardRunsHighToLow(t *testing.T) {
	m := NewTweenManager()
	var v float64
	m.Num(0, 100, 1.0, TweenOptions{Type: TweenPersist, Backward: true}, func(value float64) {
		v = value
	})

	m.Update(0.25)
	if math.Abs(v-75) > 1e-9 {
		t.Errorf("value = %f, want 75", v)
	}
	m.Update(0.75)
	if v != 0 {
		t.Errorf("value at end = %f, want exactly 0", v)
	}
}

func TestAngleTakesShortestArc(t *testing.T) {
	m := NewTweenManager()
	var a float64
	m.Angle(350, 10, 1.0, TweenOptions{Unpooled: true}, func(angle float64) {
		a = angle
	})

	// 350° to 10° is 20° forward, not 340° backward.
	m.Update(0.5)
	if math.Abs(a-360) > 1e-9 {
		t.Errorf("angle at midpoint = %f, want 360", a)
	}
	m.Update(0.5)
	if math.Abs(a-370) > 1e-9 {
		t.Errorf("angle at end = %f, want 370 (unnormalized)", a)
	}
}

func TestAngleShortestArcNegative(t *testing.T) {
	m := NewTweenManager()
	var a float64
	m.Angle(-170, 170, 1.0, TweenOptions{Unpooled: true}, func(angle float64) {
		a = angle
	})

	// -170° to 170° is 20° backward across the seam.
	m.Update(1.0)
	if math.Abs(a-(-190)) > 1e-9 {
		t.Errorf("angle at end = %f, want -190 (unnormalized)", a)
	}
}

func TestAngleSameAngleStaysPut(t *testing.T) {
	m := NewTweenManager()
	var a float64
	m.Angle(45, 45, 1.0, TweenOptions{Unpooled: true}, func(angle float64) {
		a = angle
	})

	m.Update(0.5)
	if a != 45 {
		t.Errorf("angle = %f, want 45", a)
	}
}
