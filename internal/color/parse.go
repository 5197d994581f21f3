package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Parse reads a color given as "#rrggbb", "rrggbb", "0xWWRRGGBB" or a decimal number.
func Parse(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return fromHex(s)
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return uint32(v), nil
	case len(s) == 6 && isHex(s):
		return fromHex("#" + s)
	}

	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint32(v), nil
}

func fromHex(s string) (uint32, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Join(0, r, g, b), nil
}

func isHex(s string) bool {
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}

// Hue returns a fully saturated color for the given angle in degrees.
func Hue(deg float64) uint32 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	r, g, b := colorful.Hsv(deg, 1, 1).Clamped().RGB255()
	return Join(0, r, g, b)
}

// Wheel maps an animation step onto the color wheel, one full turn every 360 steps.
func Wheel(step int) uint32 {
	return Hue(float64(step))
}
