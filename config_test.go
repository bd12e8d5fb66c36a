package binfp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, NearestTiesToEven, cfg.DefaultRounding)
	assert.Equal(t, Single, cfg.DefaultFormat)
}

func TestConfigureAndGetConfig(t *testing.T) {
	original := GetConfig()
	defer Configure(original)

	Configure(&Config{DefaultRounding: TowardZero, DefaultFormat: Half})
	got := GetConfig()
	assert.Equal(t, TowardZero, got.DefaultRounding)
	assert.Equal(t, Half, got.DefaultFormat)
}

func TestGetConfigReturnsCopy(t *testing.T) {
	original := GetConfig()
	defer Configure(original)

	Configure(&Config{DefaultRounding: TowardPositive, DefaultFormat: Single})
	got := GetConfig()
	got.DefaultRounding = TowardNegative

	again := GetConfig()
	assert.Equal(t, TowardPositive, again.DefaultRounding)
}

func TestRoundDefault(t *testing.T) {
	original := GetConfig()
	defer Configure(original)

	Configure(&Config{DefaultRounding: TowardZero, DefaultFormat: Single})
	d := Single.Describe()
	wide := Number{Mant: d.MinMant()<<uint(d.W) | 1, Exp: 5, Sign: 0, Normalized: true, Format: Single}
	got := RoundDefault(wide)
	assert.Equal(t, d.MinMant(), got.Mant)
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, Version, GetVersion())
}
