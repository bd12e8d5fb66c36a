package binfp

// RoundingMode selects one of the four IEEE-754 rounding policies
// applied by the rounder. The integer values match the command-line
// encoding.
type RoundingMode int

const (
	TowardZero RoundingMode = iota
	NearestTiesToEven
	TowardPositive
	TowardNegative
)

// roundsTowardSign reports whether mode rounds away from zero for a
// value carrying sign (0 positive, 1 negative) — i.e. whether mode is
// the directed mode that favors increasing this value's magnitude.
func roundsTowardSign(mode RoundingMode, sign uint8) bool {
	switch mode {
	case TowardPositive:
		return sign == 0
	case TowardNegative:
		return sign == 1
	default:
		return false
	}
}

// roundTiesToEvenTail applies the classic round-half-to-even tie break:
// increment when the remainder is nonzero (not an exact tie) or when the
// kept mantissa is currently odd. Reports whether it incremented.
func roundTiesToEvenTail(n Number, remainder int64) (Number, bool) {
	if remainder > 0 || n.Mant&1 == 1 {
		n.Mant++
		return n, true
	}
	return n, false
}

// increaseExp advances exp by the amount of width that highestSetBit
// reported beyond the target window [start, 2*start-2], reproducing the
// original source's two-branch exponent correction for quantization.
func increaseExp(exp int32, start, maxLen int) int32 {
	if maxLen > 2*start-2 {
		exp += int32(maxLen - (2*start - 2))
	}
	if maxLen < 2*start-3 && maxLen >= start {
		exp += int32(maxLen - start + 1)
	}
	return exp
}

// towardZeroRounding implements Stage A for TowardZero: pure truncation,
// keeping the top w1+1 (=W) bits and discarding the rest without
// inspecting them, then handing off to the subnormal re-quantization
// (secondRounding, Stage B).
func towardZeroRounding(n Number, w1 int, maxMant int64, mode RoundingMode) Number {
	if n.Mant >= int64(1)<<uint(w1<<1) {
		n.Mant >>= uint(w1)
	}
	for n.Mant > maxMant {
		n.Mant >>= 1
		n.Exp++
	}
	return secondRounding(n, mode, 0, false)
}

// towardNearestRounding implements Stage A for NearestTiesToEven.
func towardNearestRounding(n Number, start int, mode RoundingMode) Number {
	maxLen := highestSetBitAtOrAbove(n.Mant, start)
	firstRemainder := n.Mant & mask(maxLen-start+1)
	wasAdded := false
	if maxLen > 0 {
		if (n.Mant>>uint(maxLen-start))&1 == 0 {
			n.Mant >>= uint(maxLen - start + 1)
		} else {
			remainder := n.Mant & mask(maxLen-start)
			n.Mant >>= uint(maxLen - start + 1)
			n, wasAdded = roundTiesToEvenTail(n, remainder)
		}
		n.Exp = increaseExp(n.Exp, start, maxLen)
	}
	return secondRounding(n, mode, firstRemainder, wasAdded)
}

// findMaxLen implements Stage A's "round toward this directed infinity's
// own sign" branch: increment whenever any discarded bit is nonzero
// (a ceiling in magnitude), used by towardInfRounding.
func findMaxLen(n Number, start int, mode RoundingMode) Number {
	maxLen := highestSetBitAtOrAbove(n.Mant, start)
	firstRemainder := n.Mant & mask(maxLen-start+1)
	wasAdded := false
	if maxLen > 0 {
		dropped := n.Mant & mask(maxLen-start+1)
		var addend int64
		if dropped > 0 {
			addend = 1
			wasAdded = true
		}
		n.Mant = (n.Mant >> uint(maxLen-start+1)) + addend
		n.Exp = increaseExp(n.Exp, start, maxLen)
	}
	return secondRounding(n, mode, firstRemainder, wasAdded)
}

// towardInfRounding implements Stage A for TowardPositive/TowardNegative:
// magnitude-increasing for the operand whose sign matches the directed
// infinity, truncating (TowardZero behavior) for the opposite sign.
func towardInfRounding(n Number, towardSign uint8, start, w1 int, maxMant int64, mode RoundingMode) Number {
	if n.Sign == towardSign {
		return findMaxLen(n, start, mode)
	}
	return towardZeroRounding(n, w1, maxMant, mode)
}

// secondRounding implements Stage B: when Stage A leaves the exponent at
// or below the normal/subnormal boundary, re-quantize into subnormal
// form, folding in the first stage's discarded-bit indicator as sticky.
// This two-phase carry is essential: collapsing both stages into one
// pass loses correctness at the normal/subnormal boundary for
// nearest-ties-to-even.
func secondRounding(n Number, mode RoundingMode, firstRemainder int64, wasAdded bool) Number {
	d := n.Format.Describe()
	if n.Exp > d.MinNormalExp {
		return n
	}
	shift := int(d.MinNormalExp - n.Exp)
	if shift <= 0 || n.Exp < d.SubnormalRangeMinExp {
		return n
	}

	if wasAdded {
		n.Mant--
	}
	remainder := n.Mant & mask(shift)
	n.Mant >>= uint(shift)
	if roundsTowardSign(mode, n.Sign) && (remainder > 0 || firstRemainder > 0) {
		n.Mant++
	}
	if mode == NearestTiesToEven && remainder >= int64(1)<<uint(shift-1) {
		n, _ = roundTiesToEvenTail(n, (remainder&mask(shift-1))+firstRemainder)
	}
	n.Mant <<= uint(shift)

	wStep := int64(1) << uint(d.W)
	for n.Mant >= wStep {
		n.Exp++
		n.Mant >>= 1
	}

	if n.IsZero() {
		for n.Exp < d.MinNormalExp {
			n.Mant >>= 1
			n.Exp++
		}
		n.Exp--
		n.Normalized = false
	}
	return n
}

// roundToWidth drives Stage A (dispatch on mode), then re-normalizes any
// candidate still flagged Normalized whose mantissa fell below MinMant
// (e.g. from cancellation in subtraction) back up to the settled form.
func roundToWidth(n Number, mode RoundingMode) Number {
	d := n.Format.Describe()
	w1 := d.W - 1
	maxMant := d.MaxMant()

	switch mode {
	case TowardZero:
		n = towardZeroRounding(n, w1, maxMant, mode)
	case NearestTiesToEven:
		n = towardNearestRounding(n, d.W, mode)
	case TowardPositive:
		n = towardInfRounding(n, 0, d.W, w1, maxMant, mode)
	case TowardNegative:
		n = towardInfRounding(n, 1, d.W, w1, maxMant, mode)
	}

	if n.Normalized {
		n = addRightZeros(n)
	}
	return n
}

// finalize implements Stage C (overflow clamp / deep-underflow clamp)
// and the remainder of Stage D (carrying an over-wide mantissa back into
// range), after roundToWidth has settled the candidate.
func finalize(n Number, mode RoundingMode) Number {
	d := n.Format.Describe()

	if n.Exp >= d.ReservedHighExp {
		switch {
		case mode == TowardZero,
			mode == TowardPositive && n.Signbit(),
			mode == TowardNegative && !n.Signbit():
			return MaxFinite(n.Sign, n.Format)
		default:
			return Inf(n.Sign, n.Format)
		}
	}

	if n.Exp < d.SubnormalRangeMinExp {
		switch {
		case mode == TowardNegative && n.Signbit(),
			mode == TowardPositive && !n.Signbit():
			return MinSubnormal(n.Sign, n.Format)
		case mode == NearestTiesToEven && n.Exp == d.SubnormalRangeMinExp-1 && n.Mant > d.MinMant():
			return MinSubnormal(n.Sign, n.Format)
		default:
			return Zero(n.Sign, n.Format)
		}
	}

	wStep := int64(1) << uint(d.W)
	for !n.Normalized && n.Mant >= wStep {
		n.Mant >>= 1
		n.Exp++
	}
	return n
}

// round is the complete rounder: Stage A/B via roundToWidth, then
// Stage C/D via finalize. Every arithmetic kernel funnels its wide
// intermediate Number through this single entry point.
func round(n Number, mode RoundingMode) Number {
	return finalize(roundToWidth(n, mode), mode)
}
