package geometry

import "math"

// Numerology is the fixed set of named constants used as default divisors
// and counts throughout the geometry. The names follow the traditional
// numerological sequence the diagrams are proportioned around.
//
// Every value is a positive finite number; [NormalizeNumerology] guarantees
// this regardless of caller input.
type Numerology struct {
	Three        float64
	Seven        float64
	Nine         float64
	Eleven       float64
	TwentyTwo    float64
	ThirtyThree  float64
	NinetyNine   float64
	OneFortyFour float64
}

// NumerologyPatch is a partial override for [Numerology]. Nil fields keep
// the default; set fields are accepted only when positive and finite.
type NumerologyPatch struct {
	Three        *float64
	Seven        *float64
	Nine         *float64
	Eleven       *float64
	TwentyTwo    *float64
	ThirtyThree  *float64
	NinetyNine   *float64
	OneFortyFour *float64
}

// defaultNumerology holds the built-in fallback constants. Never mutated;
// NormalizeNumerology returns copies.
var defaultNumerology = Numerology{
	Three:        3,
	Seven:        7,
	Nine:         9,
	Eleven:       11,
	TwentyTwo:    22,
	ThirtyThree:  33,
	NinetyNine:   99,
	OneFortyFour: 144,
}

// DefaultNumerology returns the built-in numerology constants.
func DefaultNumerology() Numerology {
	return defaultNumerology
}

// NormalizeNumerology merges a partial override into the built-in constants.
// Each key is considered independently: an override is used only when
// positive and finite, otherwise that key falls back to its default. The
// function is pure and total; it never fails.
func NormalizeNumerology(patch *NumerologyPatch) Numerology {
	n := defaultNumerology
	if patch == nil {
		return n
	}
	n.Three = overridePositive(n.Three, patch.Three)
	n.Seven = overridePositive(n.Seven, patch.Seven)
	n.Nine = overridePositive(n.Nine, patch.Nine)
	n.Eleven = overridePositive(n.Eleven, patch.Eleven)
	n.TwentyTwo = overridePositive(n.TwentyTwo, patch.TwentyTwo)
	n.ThirtyThree = overridePositive(n.ThirtyThree, patch.ThirtyThree)
	n.NinetyNine = overridePositive(n.NinetyNine, patch.NinetyNine)
	n.OneFortyFour = overridePositive(n.OneFortyFour, patch.OneFortyFour)
	return n
}

// isPositive reports whether v is a finite number greater than zero.
func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// positiveOrDefault returns v when it is positive and finite, otherwise
// fallback.
func positiveOrDefault(v, fallback float64) float64 {
	if isPositive(v) {
		return v
	}
	return fallback
}

// overridePositive applies an optional patch value over base using the
// positive-finite rule shared by all divisor and count merges.
func overridePositive(base float64, patch *float64) float64 {
	if patch == nil {
		return base
	}
	return positiveOrDefault(*patch, base)
}

// clamp bounds v to the closed interval between min and max. Swapped
// bounds are tolerated: the interval is always [min(a,b), max(a,b)].
func clamp(v, a, b float64) float64 {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampUnit bounds v into [0, 1], the range shared by alpha and position
// factor fields.
func clampUnit(v float64) float64 {
	return clamp(v, 0, 1)
}

// overrideUnit applies an optional patch value over base using the
// clamp-to-[0,1] rule shared by alpha and factor merges. Non-finite patch
// values keep the base.
func overrideUnit(base float64, patch *float64) float64 {
	if patch == nil || math.IsNaN(*patch) || math.IsInf(*patch, 0) {
		return base
	}
	return clampUnit(*patch)
}

// overrideCount applies an optional patch value over base using the
// integer-count rule: positive-finite values are rounded and floored to
// min, anything else keeps the base.
func overrideCount(base int, patch *float64, min int) int {
	if patch == nil || !isPositive(*patch) {
		return base
	}
	n := int(math.Round(*patch))
	if n < min {
		n = min
	}
	return n
}
