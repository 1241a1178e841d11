package flixel

import "math"

// Point is a 2D coordinate used by the motion tweens.
type Point struct {
	X, Y float64
}

// LinearMotion moves along the straight line between two points over
// duration seconds. onMove receives the interpolated position once per
// frame.
func (m *TweenManager) LinearMotion(fromX, fromY, toX, toY, duration float64, opt TweenOptions, onMove func(x, y float64)) *Tween {
	dx := toX - fromX
	dy := toY - fromY
	return m.Tween(duration, opt, func(scale float64) {
		onMove(fromX+dx*scale, fromY+dy*scale)
	})
}

// LinearMotionSpeed is LinearMotion with the duration derived from a travel
// speed in units per second. A zero or negative speed yields an instant
// tween (it deactivates on start without moving).
func (m *TweenManager) LinearMotionSpeed(fromX, fromY, toX, toY, speed float64, opt TweenOptions, onMove func(x, y float64)) *Tween {
	duration := 0.0
	if speed > 0 {
		duration = math.Hypot(toX-fromX, toY-fromY) / speed
	}
	return m.LinearMotion(fromX, fromY, toX, toY, duration, opt, onMove)
}

// CircularMotion moves along a full circle around a center point over
// duration seconds, starting at angleDeg (degrees, 0 pointing right,
// measured counterclockwise-positive in standard math orientation; note
// that with a top-left origin and Y increasing downward the visual sweep is
// mirrored). clockwise selects the travel direction. Combine with
// TweenLooping for continuous orbiting.
func (m *TweenManager) CircularMotion(centerX, centerY, radius, angleDeg float64, clockwise bool, duration float64, opt TweenOptions, onMove func(x, y float64)) *Tween {
	start := angleDeg * math.Pi / 180
	sweep := 2 * math.Pi
	if clockwise {
		sweep = -sweep
	}
	return m.Tween(duration, opt, func(scale float64) {
		a := start + sweep*scale
		onMove(centerX+math.Cos(a)*radius, centerY+math.Sin(a)*radius)
	})
}

// LinearPath moves through a sequence of points at uniform speed over
// duration seconds: progress maps to distance traveled, not to segment
// index, so short segments pass quickly and long ones slowly. The points
// slice is copied; at least two points are required.
func (m *TweenManager) LinearPath(points []Point, duration float64, opt TweenOptions, onMove func(x, y float64)) *Tween {
	if len(points) < 2 {
		panic("flixel: linear path needs at least two points")
	}
	pts := append([]Point(nil), points...)

	// Cumulative distance to each point.
	cum := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		cum[i] = cum[i-1] + math.Hypot(pts[i].X-pts[i-1].X, pts[i].Y-pts[i-1].Y)
	}
	total := cum[len(cum)-1]

	return m.Tween(duration, opt, func(scale float64) {
		if total == 0 || scale <= 0 {
			onMove(pts[0].X, pts[0].Y)
			return
		}
		if scale >= 1 {
			onMove(pts[len(pts)-1].X, pts[len(pts)-1].Y)
			return
		}
		target := total * scale
		i := 1
		for cum[i] < target {
			i++
		}
		seg := cum[i] - cum[i-1]
		t := 0.0
		if seg > 0 {
			t = (target - cum[i-1]) / seg
		}
		onMove(
			pts[i-1].X+(pts[i].X-pts[i-1].X)*t,
			pts[i-1].Y+(pts[i].Y-pts[i-1].Y)*t,
		)
	})
}
