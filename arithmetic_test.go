package binfp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScenarios exercises six concrete end-to-end decode/arithmetic scenarios.
func TestScenarios(t *testing.T) {
	tests := []struct {
		name   string
		fmt    Format
		mode   RoundingMode
		a      uint32
		op     byte
		b      uint32
		hasOp  bool
		expect string
	}{
		{"decode one", Single, TowardZero, 0x3f800000, 0, 0, false, "0x1.000000p+0"},
		{"one plus one", Single, NearestTiesToEven, 0x3f800000, '+', 0x3f800000, true, "0x1.000000p+1"},
		{"pos inf plus neg inf", Single, NearestTiesToEven, 0x7f800000, '+', 0xff800000, true, "nan"},
		{"min subnormal times half underflows to zero", Single, NearestTiesToEven, 0x00000001, '*', 0x3f000000, true, "0x0.000000p+0"},
		{"half one over two toward positive", Half, TowardPositive, 0x3c00, '/', 0x4000, true, "0x1.000p-1"},
		{"one minus one toward negative", Single, TowardNegative, 0x3f800000, '-', 0x3f800000, true, "-0x0.000000p+0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Decode(tt.a, tt.fmt)
			var result Number
			if !tt.hasOp {
				result = a
			} else {
				b := Decode(tt.b, tt.fmt)
				switch tt.op {
				case '+':
					result = Add(a, b, tt.mode)
				case '-':
					result = Sub(a, b, tt.mode)
				case '*':
					result = Mul(a, b, tt.mode)
				case '/':
					result = Div(a, b, tt.mode)
				}
			}
			assert.Equal(t, tt.expect, FormatText(result))
		})
	}
}

func TestAddIdentityWithZero(t *testing.T) {
	a := Decode(0x40490fdb, Single) // pi
	sum := Add(a, Zero(0, Single), NearestTiesToEven)
	assert.True(t, Equal(a, sum))

	sum = Add(Zero(0, Single), a, NearestTiesToEven)
	assert.True(t, Equal(a, sum))
}

func TestMulIdentityWithOne(t *testing.T) {
	a := Decode(0x40490fdb, Single)
	one := Decode(0x3f800000, Single)
	product := Mul(a, one, NearestTiesToEven)
	assert.True(t, Equal(a, product))
}

func TestSubIsAddOfNegation(t *testing.T) {
	a := Decode(0x40490fdb, Single)
	b := Decode(0x402df854, Single)
	for _, mode := range []RoundingMode{TowardZero, NearestTiesToEven, TowardPositive, TowardNegative} {
		got := Sub(a, b, mode)
		want := Add(a, b.Neg(), mode)
		assert.True(t, Equal(got, want), "mode %d", mode)
	}
}

func TestNaNIsAbsorbing(t *testing.T) {
	n := NaN(Single)
	one := Decode(0x3f800000, Single)
	assert.True(t, Add(n, one, NearestTiesToEven).IsNaN())
	assert.True(t, Sub(one, n, NearestTiesToEven).IsNaN())
	assert.True(t, Mul(n, one, NearestTiesToEven).IsNaN())
	assert.True(t, Div(one, n, NearestTiesToEven).IsNaN())
}

func TestZeroTimesInfinityIsNaN(t *testing.T) {
	z := Zero(0, Single)
	inf := Inf(0, Single)
	assert.True(t, Mul(z, inf, NearestTiesToEven).IsNaN())
	assert.True(t, Mul(inf, z, NearestTiesToEven).IsNaN())
}

func TestDivisionByZero(t *testing.T) {
	one := Decode(0x3f800000, Single)
	z := Zero(0, Single)
	got := Div(one, z, NearestTiesToEven)
	assert.True(t, got.IsInf())
	assert.False(t, got.Signbit())

	got = Div(z, z, NearestTiesToEven)
	assert.True(t, got.IsNaN())
}

func TestDirectedRoundingBounds(t *testing.T) {
	// 1/3 in single precision is not exactly representable; check the
	// directed modes bracket the true value in the expected order.
	one := Decode(0x3f800000, Single)
	three := Decode(0x40400000, Single)

	up := Div(one, three, TowardPositive)
	down := Div(one, three, TowardNegative)
	truncated := Div(one, three, TowardZero)

	assert.True(t, Greater(up, down))
	assert.True(t, Equal(truncated, down)) // positive operands: truncation rounds down
}

func TestAddCancellationGivesSignedZero(t *testing.T) {
	one := Decode(0x3f800000, Single)
	negOne := one.Neg()

	z := Add(one, negOne, NearestTiesToEven)
	assert.True(t, z.IsZero())
	assert.False(t, z.Signbit())

	z = Add(one, negOne, TowardNegative)
	assert.True(t, z.IsZero())
	assert.True(t, z.Signbit())
}
