package motion

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// Easing maps normalized elapsed time in [0, 1] to a progress value. The
// result need not stay inside [0, 1]: curves like elastic and back overshoot,
// and the property blend passes that straight through to the target.
type Easing func(t float64) float64

// Linear is the default easing: progress equals elapsed time.
func Linear(t float64) float64 {
	return t
}

// Ease adapts a [gween] easing function to an [Easing]. The full Penner set
// in gween/ease is usable this way:
//
//	tw.SetEasing(motion.Ease(ease.OutBounce))
//
// [gween]: https://github.com/tanema/gween
func Ease(fn ease.TweenFunc) Easing {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// curves lists the named gween curves recognized by EaseByName and timeline
// documents. Keys are normalized (lowercase, separators stripped).
var curves = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inquad":       ease.InQuad,
	"outquad":      ease.OutQuad,
	"inoutquad":    ease.InOutQuad,
	"incubic":      ease.InCubic,
	"outcubic":     ease.OutCubic,
	"inoutcubic":   ease.InOutCubic,
	"inquart":      ease.InQuart,
	"outquart":     ease.OutQuart,
	"inoutquart":   ease.InOutQuart,
	"inquint":      ease.InQuint,
	"outquint":     ease.OutQuint,
	"inoutquint":   ease.InOutQuint,
	"insine":       ease.InSine,
	"outsine":      ease.OutSine,
	"inoutsine":    ease.InOutSine,
	"inexpo":       ease.InExpo,
	"outexpo":      ease.OutExpo,
	"inoutexpo":    ease.InOutExpo,
	"incirc":       ease.InCirc,
	"outcirc":      ease.OutCirc,
	"inoutcirc":    ease.InOutCirc,
	"inback":       ease.InBack,
	"outback":      ease.OutBack,
	"inoutback":    ease.InOutBack,
	"inbounce":     ease.InBounce,
	"outbounce":    ease.OutBounce,
	"inoutbounce":  ease.InOutBounce,
	"inelastic":    ease.InElastic,
	"outelastic":   ease.OutElastic,
	"inoutelastic": ease.InOutElastic,
}

// EaseByName looks up a named easing curve. Names are case-insensitive and
// ignore "-" and "_" separators, so "out-bounce", "OutBounce", and
// "out_bounce" all resolve to the same curve. Used by timeline documents.
func EaseByName(name string) (Easing, bool) {
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, "-", "")
	key = strings.ReplaceAll(key, "_", "")
	fn, ok := curves[key]
	if !ok {
		return nil, false
	}
	if key == "linear" {
		return Linear, true
	}
	return Ease(fn), true
}
