package motion

import "fmt"

// Value is a tween end value: either a single number or an ordered sequence
// of numeric keyframes. Use [Num] for scalars and [Seq] for keyframes.
//
// The zero Value is the scalar 0.
type Value struct {
	n      float64
	frames []float64
	isSeq  bool
}

// Num returns a scalar Value.
func Num(v float64) Value {
	return Value{n: v}
}

// Seq returns a keyframe-sequence Value. An empty sequence is legal: a
// property configured with one is left untouched for the whole tween.
func Seq(frames ...float64) Value {
	return Value{frames: frames, isSeq: true}
}

// IsSequence reports whether the value is a keyframe sequence.
func (v Value) IsSequence() bool {
	return v.isSeq
}

// Frames returns a copy of the keyframe sequence, or nil for a scalar.
func (v Value) Frames() []float64 {
	if !v.isSeq {
		return nil
	}
	return append([]float64(nil), v.frames...)
}

// Float returns the scalar value. For a sequence it returns the final
// keyframe (the value the sequence lands on), or 0 if the sequence is empty.
func (v Value) Float() float64 {
	if !v.isSeq {
		return v.n
	}
	if len(v.frames) == 0 {
		return 0
	}
	return v.frames[len(v.frames)-1]
}

// clone returns a Value whose frame storage is independent of the original.
func (v Value) clone() Value {
	if v.isSeq {
		v.frames = append([]float64(nil), v.frames...)
	}
	return v
}

// Props maps property names to end values for [Tween.To].
type Props map[string]Value

// Options carries the optional parts of a [Tween.To] configuration.
type Options struct {
	// Ease replaces the tween's easing function. nil keeps the current one.
	Ease Easing
	// Interp replaces the tween's keyframe interpolation function.
	// nil keeps the current one.
	Interp Interpolation
	// AutoStart starts the tween immediately after configuring.
	AutoStart bool
	// Delay is the pre-roll wait in seconds. It is applied only when
	// positive; zero or negative leaves any previously set delay in place.
	Delay float64
	// Loop restarts the tween from its start values on completion, forever.
	Loop bool
	// Yoyo plays the tween forward, then backward, before completing.
	Yoyo bool
}

// MissingPropertyError is returned by [Tween.Start] when an end value refers
// to a property that is absent (or not numeric) on the target. It signals a
// caller-side configuration mistake, not a recoverable runtime condition.
type MissingPropertyError struct {
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("motion: cannot interpolate null or missing property %q", e.Property)
}
