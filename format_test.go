package binfp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDescribe(t *testing.T) {
	tests := []struct {
		name string
		f    Format
		want FormatDescriptor
	}{
		{"single", Single, singleDescriptor},
		{"half", Half, halfDescriptor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Describe())
		})
	}
}

func TestFormatDescriptorMinMaxMant(t *testing.T) {
	d := Single.Describe()
	assert.Equal(t, int64(1<<23), d.MinMant())
	assert.Equal(t, int64(1<<24)-1, d.MaxMant())

	d = Half.Describe()
	assert.Equal(t, int64(1<<10), d.MinMant())
	assert.Equal(t, int64(1<<11)-1, d.MaxMant())
}

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat('f')
	assert.True(t, ok)
	assert.Equal(t, Single, f)

	f, ok = ParseFormat('h')
	assert.True(t, ok)
	assert.Equal(t, Half, f)

	_, ok = ParseFormat('x')
	assert.False(t, ok)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "f", Single.String())
	assert.Equal(t, "h", Half.String())
}
