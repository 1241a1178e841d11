package flixel

import "math"

// Num tweens a numeric value from from to to over duration seconds. onUpdate
// receives the interpolated value once per frame. This is the closure form
// of a property tween: capture whatever field the value should land in.
//
//	manager.Num(sprite.Alpha, 0, 0.5, flixel.TweenOptions{}, func(v float64) {
//		sprite.Alpha = v
//	})
func (m *TweenManager) Num(from, to, duration float64, opt TweenOptions, onUpdate func(value float64)) *Tween {
	span := to - from
	return m.Tween(duration, opt, func(scale float64) {
		onUpdate(from + span*scale)
	})
}

// Angle tweens between two angles in degrees along the shortest arc, so
// 350° to 10° travels 20° forward rather than 340° backward. onUpdate
// receives the interpolated angle; it is not normalized, so a target of 10°
// reached from 350° arrives as 370°.
func (m *TweenManager) Angle(fromAngle, toAngle, duration float64, opt TweenOptions, onUpdate func(angle float64)) *Tween {
	span := math.Mod(toAngle-fromAngle, 360)
	if span > 180 {
		span -= 360
	} else if span < -180 {
		span += 360
	}
	return m.Tween(duration, opt, func(scale float64) {
		onUpdate(fromAngle + span*scale)
	})
}
