package kernel

import "github.com/chewxy/math32"

// ToLogSpace converts a buffer of probabilities to natural-log space in
// place, using binary32 arithmetic throughout (github.com/chewxy/math32)
// so callers never pay a float64 round-trip on the hot path. A zero
// probability maps to float32 negative infinity, which is a legal δ/log-T
// value denoting an impossible transition or emission.
func ToLogSpace(probs []float32) {
	for i, p := range probs {
		probs[i] = math32.Log(p)
	}
}

// LogUniform returns log(1/states), the log-space value of a uniform
// categorical distribution over states states. Used to default an
// absent transition matrix or initial distribution to uniform.
func LogUniform(states int) float32 {
	return math32.Log(1 / float32(states))
}

// CheckFinite returns ErrNumericInvalid if logSpace contains a NaN or
// positive infinity. Negative infinity is legal (it represents an
// impossible transition/emission) and is never rejected.
func CheckFinite(logSpace []float32) error {
	for _, v := range logSpace {
		if math32.IsNaN(v) || math32.IsInf(v, 1) {
			return ErrNumericInvalid
		}
	}

	return nil
}
