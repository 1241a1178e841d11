package flixel

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TweenDef is the data-file form of a tween configuration, for animation
// sequences authored in YAML next to the rest of a game's content:
//
//	- type: looping
//	  ease: quad-in-out
//	  duration: 1.5
//	  loopDelay: 0.25
//
// Resolve it to engine values with Options; wire the target closure in code.
type TweenDef struct {
	// Type names the playback policy: "oneshot", "persist", "looping",
	// "pingpong". Empty means the default policy.
	Type string `yaml:"type"`
	// Ease names an easing curve known to EaseByName, e.g. "bounce-out".
	// Empty means linear.
	Ease string `yaml:"ease"`
	// Duration of one pass in seconds.
	Duration float64 `yaml:"duration"`
	// StartDelay before the first pass, in seconds.
	StartDelay float64 `yaml:"startDelay"`
	// LoopDelay between repetitions, in seconds.
	LoopDelay float64 `yaml:"loopDelay"`
	// Backward reverses the playback direction.
	Backward bool `yaml:"backward"`
	// Unpooled keeps ownership with the caller (see TweenOptions.Unpooled).
	Unpooled bool `yaml:"unpooled"`
}

// tweenTypeNames maps data-file policy names to TweenType values.
var tweenTypeNames = map[string]TweenType{
	"":         TweenDefault,
	"oneshot":  TweenOneShot,
	"persist":  TweenPersist,
	"looping":  TweenLooping,
	"pingpong": TweenPingPong,
}

// Options resolves the definition into TweenOptions. Unknown type or ease
// names are errors; the completion callback, if any, is wired in code.
func (d TweenDef) Options() (TweenOptions, error) {
	typ, ok := tweenTypeNames[d.Type]
	if !ok {
		return TweenOptions{}, fmt.Errorf("flixel: unknown tween type %q", d.Type)
	}

	var fn EaseFunc
	if d.Ease != "" {
		fn, ok = EaseByName(d.Ease)
		if !ok {
			return TweenOptions{}, fmt.Errorf("flixel: unknown easing %q", d.Ease)
		}
	}

	return TweenOptions{
		Type:       typ,
		Backward:   d.Backward,
		Ease:       fn,
		StartDelay: d.StartDelay,
		LoopDelay:  d.LoopDelay,
		Unpooled:   d.Unpooled,
	}, nil
}

// ParseTweenDefs parses a YAML list of tween definitions.
func ParseTweenDefs(data []byte) ([]TweenDef, error) {
	var defs []TweenDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("flixel: failed to parse tween defs: %w", err)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("flixel: tween defs are empty")
	}
	return defs, nil
}
