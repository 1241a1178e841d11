package flixel

import colorful "github.com/lucasb-eyer/go-colorful"

// Color tweens between two colors in RGB space over duration seconds.
// onUpdate receives the blended color once per frame. colorful.Color uses
// [0,1] components, matching the engine's color convention; convert with
// colorful.MakeColor / Color.RGBA at the boundary when driving image/color
// targets.
//
// With an overshooting easing (back, elastic) the blend extrapolates
// outside the gamut mid-flight; clamp in onUpdate if the target requires it.
func (m *TweenManager) Color(from, to colorful.Color, duration float64, opt TweenOptions, onUpdate func(c colorful.Color)) *Tween {
	return m.Tween(duration, opt, func(scale float64) {
		onUpdate(from.BlendRgb(to, scale))
	})
}
