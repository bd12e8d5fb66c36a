package binfp

// mask returns the low-shift bits set: (1<<shift)-1. shift<=0 yields 0.
func mask(shift int) int64 {
	if shift <= 0 {
		return 0
	}
	return int64(1)<<uint(shift) - 1
}

// addRightZeros shifts n.Mant left until it reaches the settled MinMant
// floor, decrementing Exp for every bit shifted in. Mirrors the original
// source's addRightZeros: used both to lift a subnormal operand into
// normalized form and to re-normalize a result after rounding shrinks it.
func addRightZeros(n Number) Number {
	d := n.Format.Describe()
	min := d.MinMant()
	for n.Mant < min && n.Mant > 0 {
		n.Mant <<= 1
		n.Exp--
	}
	n.Normalized = true
	return n
}

// normalizeSubnormal lifts a subnormal value so its implicit bit is
// materialized at position W-1, lowering Exp one step per shift and then
// raising it by one, since a stored subnormal is scaled like MinNormalExp,
// one above ReservedLowExp.
func normalizeSubnormal(n Number) Number {
	d := n.Format.Describe()
	if n.Mant < d.MinMant() {
		n = addRightZeros(n)
		n.Exp++
	}
	return n
}

// liftSubnormal normalizes n in place if it is currently a stored
// subnormal operand, otherwise returns n unchanged. Kernels call this on
// both operands before touching their mantissas, reducing the case
// analysis in the kernels to normals plus specials.
func liftSubnormal(n Number) Number {
	d := n.Format.Describe()
	if n.Exp == d.ReservedLowExp && !n.IsZero() && !n.Normalized {
		return normalizeSubnormal(n)
	}
	return n
}

// bitLength returns the position (1-indexed) of the highest set bit of x,
// i.e. the number of bits needed to represent x, or 0 for x<=0.
func bitLength(x int64) int {
	n := 0
	for x > 0 {
		x >>= 1
		n++
	}
	return n
}

// highestSetBitAtOrAbove mirrors the original source's getMaxLen: the
// highest bit index i (0-indexed, i>=start) such that mant has bit i set,
// or 0 if mant's highest set bit lies below start (no rounding needed).
func highestSetBitAtOrAbove(mant int64, start int) int {
	maxLen := 0
	for i := start; i <= 60; i++ {
		if mant >= int64(1)<<uint(i) {
			maxLen = i
		}
	}
	return maxLen
}
