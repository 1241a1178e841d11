package flixel

import "github.com/tanema/gween/ease"

// EaseFunc maps linear progress in [0,1] to shaped progress. A nil EaseFunc
// means linear (identity). Functions are not required to be monotonic or to
// stay inside [0,1] mid-flight (back and elastic curves overshoot); the
// engine clamps only the completion frame.
type EaseFunc func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// Easing adapts an easing function from gween's ease package:
//
//	manager.Num(0, 1, 2.0, flixel.TweenOptions{Ease: flixel.Easing(ease.OutBounce)}, ...)
func Easing(fn ease.TweenFunc) EaseFunc {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// easings maps data-file names to gween easing functions. Kept in the gween
// naming order: in/out/in-out per curve family.
var easings = map[string]ease.TweenFunc{
	"linear":         ease.Linear,
	"quad-in":        ease.InQuad,
	"quad-out":       ease.OutQuad,
	"quad-in-out":    ease.InOutQuad,
	"cubic-in":       ease.InCubic,
	"cubic-out":      ease.OutCubic,
	"cubic-in-out":   ease.InOutCubic,
	"quart-in":       ease.InQuart,
	"quart-out":      ease.OutQuart,
	"quart-in-out":   ease.InOutQuart,
	"quint-in":       ease.InQuint,
	"quint-out":      ease.OutQuint,
	"quint-in-out":   ease.InOutQuint,
	"sine-in":        ease.InSine,
	"sine-out":       ease.OutSine,
	"sine-in-out":    ease.InOutSine,
	"expo-in":        ease.InExpo,
	"expo-out":       ease.OutExpo,
	"expo-in-out":    ease.InOutExpo,
	"circ-in":        ease.InCirc,
	"circ-out":       ease.OutCirc,
	"circ-in-out":    ease.InOutCirc,
	"back-in":        ease.InBack,
	"back-out":       ease.OutBack,
	"back-in-out":    ease.InOutBack,
	"bounce-in":      ease.InBounce,
	"bounce-out":     ease.OutBounce,
	"bounce-in-out":  ease.InOutBounce,
	"elastic-in":     ease.InElastic,
	"elastic-out":    ease.OutElastic,
	"elastic-in-out": ease.InOutElastic,
}

// EaseByName returns the easing function registered under name, for
// data-driven tween definitions. The second result reports whether the name
// is known.
func EaseByName(name string) (EaseFunc, bool) {
	fn, ok := easings[name]
	if !ok {
		return nil, false
	}
	return Easing(fn), true
}
