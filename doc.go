// Package flixel provides the tweening engine of a 2D game framework:
// time-driven interpolation of numeric and visual properties with easing
// curves, looping/ping-pong/reverse playback, per-instance delays,
// completion callbacks, and instance pooling.
//
// # Quick start
//
// Create one [TweenManager] per scene, drive it from your game loop, and
// create tweens through its factory methods:
//
//	manager := flixel.NewTweenManager()
//
//	manager.Num(0, 100, 1.5, flixel.TweenOptions{
//		Ease: flixel.Easing(ease.OutQuad),
//	}, func(v float64) {
//		sprite.X = v
//	})
//
//	// each frame:
//	manager.Update(dt)
//
// # Playback policies
//
// Every tween carries a [TweenType] deciding what happens when a pass
// completes: [TweenOneShot] detaches from the manager, [TweenPersist]
// freezes at the end value but stays attached, [TweenLooping] restarts,
// and [TweenPingPong] restarts with the direction reversed. Any type can
// additionally play backward (progress runs 1 to 0).
//
// One-shot forward tweens are pooled by default: once finished they are
// recycled through the manager's free-list, so per-frame tween churn does
// not allocate. A pooled tween must never be canceled — set
// [TweenOptions].Unpooled to keep ownership and allow [Tween.Cancel].
//
// # Value application
//
// The engine never touches game objects directly. Each factory captures a
// closure that receives the interpolated value once per frame:
// [TweenManager.Num] for plain numbers, [TweenManager.Angle] for
// shortest-arc angles, [TweenManager.Color] for colors,
// [TweenManager.LinearMotion], [TweenManager.CircularMotion], and
// [TweenManager.LinearPath] for 2D movement. [TweenManager.Tween] is the
// raw form taking a progress-scale closure.
//
// Easing functions come from [gween]'s ease package through the [Easing]
// adapter, or by name via [EaseByName] for data-driven setups (see
// [ParseTweenDefs]).
//
// [gween]: https://github.com/tanema/gween
package flixel
