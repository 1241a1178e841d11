package flixel

import (
	"math"
	"testing"
)

func TestLinearMotionMovesAlongLine(t *testing.T) {
	m := NewTweenManager()
	var x, y float64
	m.LinearMotion(0, 0, 100, 50, 1.0, TweenOptions{Unpooled: true}, func(px, py float64) {
		x, y = px, py
	})

	m.Update(0.5)
	if math.Abs(x-50) > 1e-9 || math.Abs(y-25) > 1e-9 {
		t.Errorf("midpoint = (%f, %f), want (50, 25)", x, y)
	}
	m.Update(0.5)
	if x != 100 || y != 50 {
		t.Errorf("end = (%f, %f), want exactly (100, 50)", x, y)
	}
}

func TestLinearMotionSpeedDerivesDuration(t *testing.T) {
	m := NewTweenManager()
	var x float64
	tw := m.LinearMotionSpeed(0, 0, 100, 0, 50, TweenOptions{Unpooled: true}, func(px, _ float64) {
		x = px
	})

	if got := tw.Duration(); math.Abs(got-2.0) > 1e-9 {
		t.Fatalf("duration = %f, want 2.0 (100 units at 50/s)", got)
	}
	m.Update(1.0)
	if math.Abs(x-50) > 1e-9 {
		t.Errorf("x after 1s = %f, want 50", x)
	}
}

func TestLinearMotionZeroSpeedIsInstant(t *testing.T) {
	m := NewTweenManager()
	tw := m.LinearMotionSpeed(0, 0, 100, 0, 0, TweenOptions{Unpooled: true}, func(float64, float64) {})
	if tw.Active() {
		t.Error("zero speed should produce an inactive instant tween")
	}
}

func TestCircularMotionTracesCircle(t *testing.T) {
	m := NewTweenManager()
	var x, y float64
	m.CircularMotion(100, 100, 50, 0, false, 1.0, TweenOptions{Unpooled: true}, func(px, py float64) {
		x, y = px, py
	})

	// Quarter revolution counterclockwise from angle 0.
	m.Update(0.25)
	if math.Abs(x-100) > 1e-9 || math.Abs(y-150) > 1e-9 {
		t.Errorf("quarter point = (%f, %f), want (100, 150)", x, y)
	}

	// Full revolution returns to the start.
	m.Update(0.75)
	if math.Abs(x-150) > 1e-6 || math.Abs(y-100) > 1e-6 {
		t.Errorf("end = (%f, %f), want (150, 100)", x, y)
	}
}

func TestCircularMotionClockwise(t *testing.T) {
	m := NewTweenManager()
	var x, y float64
	m.CircularMotion(0, 0, 10, 0, true, 1.0, TweenOptions{Unpooled: true}, func(px, py float64) {
		x, y = px, py
	})

	m.Update(0.25)
	if math.Abs(x) > 1e-9 || math.Abs(y-(-10)) > 1e-9 {
		t.Errorf("quarter point = (%f, %f), want (0, -10)", x, y)
	}
}

func TestLinearPathUniformSpeed(t *testing.T) {
	m := NewTweenManager()
	var x, y float64
	// First segment is 100 long, second is 300: quarter progress is the end
	// of the first segment.
	points := []Point{{0, 0}, {100, 0}, {100, 300}}
	m.LinearPath(points, 1.0, TweenOptions{Unpooled: true}, func(px, py float64) {
		x, y = px, py
	})

	m.Update(0.25)
	if math.Abs(x-100) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Errorf("quarter point = (%f, %f), want (100, 0)", x, y)
	}

	m.Update(0.25)
	if math.Abs(x-100) > 1e-9 || math.Abs(y-100) > 1e-9 {
		t.Errorf("half point = (%f, %f), want (100, 100)", x, y)
	}

	m.Update(0.5)
	if x != 100 || y != 300 {
		t.Errorf("end = (%f, %f), want exactly (100, 300)", x, y)
	}
}

func TestLinearPathCopiesPoints(t *testing.T) {
	m := NewTweenManager()
	var x float64
	points := []Point{{0, 0}, {100, 0}}
	m.LinearPath(points, 1.0, TweenOptions{Unpooled: true}, func(px, _ float64) {
		x = px
	})

	// Caller mutating the slice after creation must not affect the path.
	points[1].X = -999
	m.Update(0.5)
	if math.Abs(x-50) > 1e-9 {
		t.Errorf("x = %f, want 50", x)
	}
}

func TestLinearPathTooFewPointsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a single-point path")
		}
	}()
	m := NewTweenManager()
	m.LinearPath([]Point{{0, 0}}, 1.0, TweenOptions{}, func(float64, float64) {})
}
