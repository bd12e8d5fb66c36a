package binfp

// Format selects which IEEE-754 binary encoding a Number belongs to.
type Format int

const (
	// Single is IEEE-754 binary32.
	Single Format = iota
	// Half is IEEE-754 binary16.
	Half
)

// String returns the single-letter spelling used on the command line.
func (f Format) String() string {
	switch f {
	case Single:
		return "f"
	case Half:
		return "h"
	default:
		return "?"
	}
}

// FormatDescriptor parametrizes both supported precisions via a single
// record. Every component (decoder, rounder, kernels, encoder) reads
// these fields instead of branching on Format directly.
type FormatDescriptor struct {
	StoredMantissaBits int   // stored mantissa width
	W                  int   // 1 + StoredMantissaBits, the settled significand width
	ExponentBits       int   // width of the biased exponent field
	Bias               int32 // exponent bias
	MinNormalExp       int32 // minimum normal unbiased exponent
	MaxFiniteExp       int32 // maximum finite unbiased exponent
	ReservedLowExp     int32 // sentinel exponent for zero/subnormal
	ReservedHighExp    int32 // sentinel exponent for inf/NaN
	SubnormalRangeMinExp int32 // smallest representable (subnormal) exponent
	HexDigits          int   // fractional hex digits printed (ceil((W-1)/4))
}

var singleDescriptor = FormatDescriptor{
	StoredMantissaBits:   23,
	W:                    24,
	ExponentBits:         8,
	Bias:                 127,
	MinNormalExp:         -126,
	MaxFiniteExp:         127,
	ReservedLowExp:       -127,
	ReservedHighExp:      128,
	SubnormalRangeMinExp: -149,
	HexDigits:            6,
}

var halfDescriptor = FormatDescriptor{
	StoredMantissaBits:   10,
	W:                    11,
	ExponentBits:         5,
	Bias:                 15,
	MinNormalExp:         -14,
	MaxFiniteExp:         15,
	ReservedLowExp:       -15,
	ReservedHighExp:      16,
	SubnormalRangeMinExp: -24,
	HexDigits:            3,
}

// Describe returns the FormatDescriptor for f.
func (f Format) Describe() FormatDescriptor {
	if f == Half {
		return halfDescriptor
	}
	return singleDescriptor
}

// MinMant is 1<<(W-1): the implicit leading bit materialized at the
// settled position.
func (d FormatDescriptor) MinMant() int64 {
	return int64(1) << uint(d.W-1)
}

// MaxMant is the largest value mant may take while still fitting in W bits.
func (d FormatDescriptor) MaxMant() int64 {
	return (int64(1) << uint(d.W)) - 1
}

// ParseFormat maps the command-line mode character to a Format.
func ParseFormat(mode byte) (Format, bool) {
	switch mode {
	case 'f':
		return Single, true
	case 'h':
		return Half, true
	default:
		return 0, false
	}
}
