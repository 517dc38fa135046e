package motion

import "math"

// Interpolation maps a keyframe sequence and a progress value to an output
// value. It is used for properties whose end value is a sequence rather than
// a single scalar. Implementations must tolerate progress values outside
// [0, 1], since easing curves such as elastic and back overshoot.
type Interpolation func(frames []float64, t float64) float64

// LinearInterpolation blends piecewise-linearly between adjacent keyframes.
// Progress below 0 extrapolates from the first segment and progress above 1
// from the last. This is the default interpolation.
func LinearInterpolation(frames []float64, t float64) float64 {
	switch len(frames) {
	case 0:
		return 0
	case 1:
		return frames[0]
	}
	m := len(frames) - 1
	f := float64(m) * t
	if t < 0 {
		return lerp(frames[0], frames[1], f)
	}
	if t > 1 {
		return lerp(frames[m], frames[m-1], float64(m)-f)
	}
	i := int(math.Floor(f))
	j := i + 1
	if j > m {
		j = m
	}
	return lerp(frames[i], frames[j], f-float64(i))
}

// BezierInterpolation treats the keyframes as control points of a Bezier
// curve of degree len(frames)-1 and evaluates it at t.
func BezierInterpolation(frames []float64, t float64) float64 {
	if len(frames) == 0 {
		return 0
	}
	n := len(frames) - 1
	b := 0.0
	for i, p := range frames {
		b += math.Pow(1-t, float64(n-i)) * math.Pow(t, float64(i)) * binomial(n, i) * p
	}
	return b
}

// CatmullRomInterpolation fits a Catmull-Rom spline through the keyframes.
// When the first and last keyframes are equal the spline closes into a loop;
// otherwise progress outside [0, 1] extrapolates by reflecting the end
// tangents.
func CatmullRomInterpolation(frames []float64, t float64) float64 {
	switch len(frames) {
	case 0:
		return 0
	case 1:
		return frames[0]
	}
	m := len(frames) - 1
	f := float64(m) * t

	if frames[0] == frames[m] {
		// Closed loop: wrap indices. Progress may sit arbitrarily far
		// outside [0, 1], so every tap wraps modulo the loop length.
		if t < 0 {
			f = float64(m) * (1 + t)
		}
		i := int(math.Floor(f))
		return catmullRom(
			frames[wrap(i-1, m)],
			frames[wrap(i, m)],
			frames[wrap(i+1, m)],
			frames[wrap(i+2, m)],
			f-float64(i),
		)
	}

	if t < 0 {
		return frames[0] - (catmullRom(frames[0], frames[0], frames[1], frames[1], -f) - frames[0])
	}
	if t > 1 {
		return frames[m] - (catmullRom(frames[m], frames[m], frames[m-1], frames[m-1], f-float64(m)) - frames[m])
	}

	i := int(math.Floor(f))
	i0 := i - 1
	if i0 < 0 {
		i0 = 0
	}
	i2 := i + 1
	if i2 > m {
		i2 = m
	}
	i3 := i + 2
	if i3 > m {
		i3 = m
	}
	return catmullRom(frames[i0], frames[i], frames[i2], frames[i3], f-float64(i))
}

func lerp(p0, p1 float64, t float64) float64 {
	return (p1-p0)*t + p0
}

// wrap maps i into [0, m), unlike % it stays non-negative for negative i.
func wrap(i, m int) int {
	i %= m
	if i < 0 {
		i += m
	}
	return i
}

// catmullRom evaluates the centripetal Catmull-Rom basis over one segment.
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	v0 := (p2 - p0) * 0.5
	v1 := (p3 - p1) * 0.5
	t2 := t * t
	t3 := t * t2
	return (2*p1-2*p2+v0+v1)*t3 + (-3*p1+3*p2-2*v0-v1)*t2 + v0*t + p1
}

// binomial computes n choose k without touching the factorial range limit.
func binomial(n, k int) float64 {
	r := 1.0
	for j := 1; j <= k; j++ {
		r *= float64(n-k+j) / float64(j)
	}
	return r
}
