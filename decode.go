package binfp

// Decode converts a raw bit pattern into the internal Number record.
// For Half, only the low 16 bits of bits are significant.
func Decode(bits uint32, fmt Format) Number {
	d := fmt.Describe()

	signShift := uint(d.ExponentBits + d.W - 1)
	expMask := uint32(1)<<uint(d.ExponentBits) - 1
	mantMask := uint32(1)<<uint(d.W-1) - 1

	sign := uint8((bits >> signShift) & 1)
	biasedExp := (bits >> uint(d.W-1)) & expMask
	stored := bits & mantMask

	minMant := d.MinMant()
	mant := int64(stored) + minMant
	exp := int32(biasedExp) - d.Bias

	normalized := true
	if exp == d.ReservedLowExp && mant != minMant {
		mant -= minMant
		normalized = false
	}

	return Number{Mant: mant, Exp: exp, Sign: sign, Normalized: normalized, Format: fmt}
}
