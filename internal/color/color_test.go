package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewColor(t *testing.T) {
	red := NewColor("\033[31m")
	assert.Equal(t, "\033[31mERROR\033[0m", red("ERROR"))
	assert.Equal(t, "", red(""))
}

func TestPredefinedColors(t *testing.T) {
	tests := []struct {
		name      string
		colorFunc Color
		expected  string
	}{
		{"Bold", Bold, "\033[1mX\033[0m"},
		{"Gray", Gray, "\033[90mX\033[0m"},
		{"Red", Red, "\033[31mX\033[0m"},
		{"Orange", Orange, "\033[38;5;214mX\033[0m"},
		{"Yellow", Yellow, "\033[33mX\033[0m"},
		{"Green", Green, "\033[32mX\033[0m"},
		{"Cyan", Cyan, "\033[36mX\033[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.colorFunc("X"))
		})
	}
}

func TestPalette(t *testing.T) {
	on := NewPalette(true)
	off := NewPalette(false)

	assert.True(t, on.Enabled())
	assert.False(t, off.Enabled())
	assert.Equal(t, Red("0.40"), on.Use(Red)("0.40"))
	assert.Equal(t, "0.40", off.Use(Red)("0.40"))
}
