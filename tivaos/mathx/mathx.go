// Package mathx holds small numeric helpers shared by tasks and drivers.
package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ScaleRound maps v from [0, inMax] onto [0, outMax] rounding half away from zero.
func ScaleRound[T constraints.Integer](v, inMax, outMax T) T {
	if inMax == 0 {
		return 0
	}
	num := int64(v) * int64(outMax)
	den := int64(inMax)
	if num >= 0 {
		return T((num*2 + den) / (den * 2))
	}
	return T((num*2 - den) / (den * 2))
}
