package binfp

// Number is the internal record for one finite or special value, plus
// enough working room for computation.
type Number struct {
	Mant       int64  // signed significand; may carry extra guard/round/sticky bits
	Exp        int32  // unbiased exponent, or a reserved sentinel
	Sign       uint8  // 0 positive, 1 negative
	Normalized bool   // true when Mant has its implicit bit at W-1; false for stored subnormals and MaxFinite
	Format     Format
}

// Zero returns the canonical signed zero for fmt.
func Zero(sign uint8, fmt Format) Number {
	d := fmt.Describe()
	return Number{Mant: d.MinMant(), Exp: d.ReservedLowExp, Sign: sign, Normalized: true, Format: fmt}
}

// Inf returns the canonical signed infinity for fmt.
func Inf(sign uint8, fmt Format) Number {
	d := fmt.Describe()
	return Number{Mant: d.MinMant(), Exp: d.ReservedHighExp, Sign: sign, Normalized: true, Format: fmt}
}

// NaN returns this system's single canonical NaN encoding for fmt.
func NaN(fmt Format) Number {
	d := fmt.Describe()
	return Number{Mant: d.MinMant() + 1, Exp: d.ReservedHighExp, Sign: 0, Normalized: true, Format: fmt}
}

// MinSubnormal returns the smallest positive (or negative) subnormal for fmt.
func MinSubnormal(sign uint8, fmt Format) Number {
	d := fmt.Describe()
	return Number{Mant: 1, Exp: d.ReservedLowExp, Sign: sign, Normalized: false, Format: fmt}
}

// MaxFinite returns the largest finite magnitude representable in fmt.
func MaxFinite(sign uint8, fmt Format) Number {
	d := fmt.Describe()
	return Number{Mant: d.MaxMant(), Exp: d.MaxFiniteExp, Sign: sign, Normalized: false, Format: fmt}
}

// IsZero reports whether n is positive or negative zero.
func (n Number) IsZero() bool {
	d := n.Format.Describe()
	return n.Mant == d.MinMant() && n.Exp == d.ReservedLowExp
}

// IsInf reports whether n is ±∞.
func (n Number) IsInf() bool {
	d := n.Format.Describe()
	return n.Mant == d.MinMant() && n.Exp == d.ReservedHighExp
}

// IsNaN reports whether n is a NaN, canonical or not: any mantissa other
// than MinMant at the reserved high exponent.
func (n Number) IsNaN() bool {
	d := n.Format.Describe()
	return n.Exp == d.ReservedHighExp && n.Mant != d.MinMant()
}

// IsSubnormal reports whether n is a nonzero subnormal.
func (n Number) IsSubnormal() bool {
	d := n.Format.Describe()
	return n.Exp == d.ReservedLowExp && n.Mant != d.MinMant()
}

// IsNormal reports whether n is a finite, nonzero, non-subnormal value.
func (n Number) IsNormal() bool {
	return !n.IsZero() && !n.IsSubnormal() && !n.IsInf() && !n.IsNaN()
}

// Signbit reports whether n carries the negative sign bit.
func (n Number) Signbit() bool {
	return n.Sign != 0
}

// Neg returns n with its sign bit flipped.
func (n Number) Neg() Number {
	n.Sign ^= 1
	return n
}

// Abs returns n with the sign bit cleared.
func (n Number) Abs() Number {
	n.Sign = 0
	return n
}

// CopySign returns a Number with the magnitude of n and the sign of other.
func (n Number) CopySign(other Number) Number {
	n.Sign = other.Sign
	return n
}

// FloatClass is the IEEE-754 classification of a Number.
type FloatClass int

const (
	ClassNaN FloatClass = iota
	ClassNegativeInfinity
	ClassNegativeNormal
	ClassNegativeSubnormal
	ClassNegativeZero
	ClassPositiveZero
	ClassPositiveSubnormal
	ClassPositiveNormal
	ClassPositiveInfinity
)

// Class returns the IEEE-754 classification of n.
func (n Number) Class() FloatClass {
	switch {
	case n.IsNaN():
		return ClassNaN
	case n.IsInf():
		if n.Signbit() {
			return ClassNegativeInfinity
		}
		return ClassPositiveInfinity
	case n.IsZero():
		if n.Signbit() {
			return ClassNegativeZero
		}
		return ClassPositiveZero
	case n.IsSubnormal():
		if n.Signbit() {
			return ClassNegativeSubnormal
		}
		return ClassPositiveSubnormal
	default:
		if n.Signbit() {
			return ClassNegativeNormal
		}
		return ClassPositiveNormal
	}
}

// Equal reports whether a and b represent the same IEEE-754 value.
// NaN is never equal to anything, including itself; ±0 compare equal.
func Equal(a, b Number) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	if a.IsZero() && b.IsZero() {
		return true
	}
	return a.Sign == b.Sign && a.Exp == b.Exp && a.Mant == b.Mant
}

// magnitude returns a comparable key for the absolute value of a settled
// Number: larger exponent, then larger mantissa, means larger magnitude.
func magnitude(n Number) (int32, int64) {
	return n.Exp, n.Mant
}

// Less reports whether a < b. NaN comparisons are always false.
func Less(a, b Number) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	if a.IsZero() && b.IsZero() {
		return false
	}
	if a.Signbit() != b.Signbit() {
		return a.Signbit()
	}
	ea, ma := magnitude(a)
	eb, mb := magnitude(b)
	if a.Signbit() {
		if ea != eb {
			return ea > eb
		}
		return ma > mb
	}
	if ea != eb {
		return ea < eb
	}
	return ma < mb
}

// Greater reports whether a > b.
func Greater(a, b Number) bool { return Less(b, a) }

// Min returns the smaller of a and b, propagating a non-NaN operand over NaN.
func Min(a, b Number) Number {
	if a.IsNaN() {
		return b
	}
	if b.IsNaN() {
		return a
	}
	if Less(a, b) {
		return a
	}
	return b
}

// Max returns the larger of a and b, propagating a non-NaN operand over NaN.
func Max(a, b Number) Number {
	if a.IsNaN() {
		return b
	}
	if b.IsNaN() {
		return a
	}
	if Greater(a, b) {
		return a
	}
	return b
}
