package binfp

import "fmt"

// FormatText renders a settled Number as hex-scientific text: nan,
// [-]inf, or [-]0x[01].hhh...p±E with HexDigits fraction digits.
// Subnormals are renormalized first so they print in the 0x1.…p−E form
// with E reaching down into the subnormal range.
func FormatText(n Number) string {
	if n.IsNaN() {
		return "nan"
	}
	if n.IsInf() {
		if n.Signbit() {
			return "-inf"
		}
		return "inf"
	}

	d := n.Format.Describe()
	sign := ""
	if n.Signbit() {
		sign = "-"
	}

	if n.IsZero() {
		return fmt.Sprintf("%s0x0.%0*xp+0", sign, d.HexDigits, 0)
	}

	if n.IsSubnormal() {
		n = liftSubnormal(n)
	}

	fracBits := d.HexDigits * 4
	frac := (n.Mant & (d.MinMant() - 1)) << uint(fracBits-(d.W-1))
	return fmt.Sprintf("%s0x1.%0*xp%+d", sign, d.HexDigits, frac, n.Exp)
}
