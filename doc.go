// Package motion is a property tween library for [Ebitengine] and other
// tick-driven Go hosts.
//
// A [Tween] interpolates named numeric properties of a target object from
// the values captured when it starts to the values you configure, over a
// duration, through a pluggable easing curve. Tweens support delays,
// looping, yoyo (forward-then-backward) playback, keyframe sequences,
// chaining, pause/resume, and start/update/complete notifications. A
// [Manager] owns the active set and advances every tween once per frame.
//
// # Quick start
//
// Create a manager, configure a tween against any [Target], and tick the
// manager from your game loop:
//
//	m := motion.NewManager(nil)
//
//	obj := motion.Object{"X": 0, "Y": 0}
//	m.NewTween(obj).To(motion.Props{
//		"X": motion.Num(320),
//		"Y": motion.Seq(0, 120, 40),
//	}, 1.5, motion.Options{
//		Ease:      motion.Ease(ease.OutBounce),
//		AutoStart: true,
//	})
//
//	// each frame:
//	m.Update()
//
// [Run] wraps the loop for you when motion is the whole program:
//
//	motion.Run(m, motion.RunConfig{Title: "demo", Draw: draw})
//
// # Targets
//
// Anything implementing [Target] can be tweened. [Object] is a plain map of
// named properties; [Struct] adapts a pointer to a struct with exported
// float64 fields:
//
//	type Sprite struct{ X, Y, Alpha float64 }
//
//	s := &Sprite{Alpha: 1}
//	target, _ := motion.Struct(s)
//	m.NewTween(target).To(motion.Props{"Alpha": motion.Num(0)}, 0.3,
//		motion.Options{AutoStart: true})
//
// # Easing and keyframes
//
// Easing curves come from [gween] via the [Ease] adapter; any
// func(float64) float64 works as well. End values given as keyframe
// sequences with [Seq] are interpolated with [LinearInterpolation] by
// default; [BezierInterpolation] and [CatmullRomInterpolation] are also
// provided.
//
// # Timelines
//
// Tween sets can be described declaratively in YAML and built against named
// targets at runtime; see [Timeline].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package motion
