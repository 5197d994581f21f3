package color

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Layout is the physical order of the sub-pixels of a strip. The value is the strip type word understood by the
// ws2811 driver, where each byte holds the bit position that a component is read from.
type Layout uint32

const (
	RGB Layout = 0x00100800
	RBG Layout = 0x00100008
	GRB Layout = 0x00081000
	GBR Layout = 0x00080010
	BRG Layout = 0x00001008
	BGR Layout = 0x00000810

	// four component SK6812 strips
	RGBW Layout = 0x18100800
	RBGW Layout = 0x18100008
	GRBW Layout = 0x18081000
	GBRW Layout = 0x18080010
	BRGW Layout = 0x18001008
	BGRW Layout = 0x18000810
)

var layoutNames = map[Layout]string{
	RGB:  "RGB",
	RBG:  "RBG",
	GRB:  "GRB",
	GBR:  "GBR",
	BRG:  "BRG",
	BGR:  "BGR",
	RGBW: "RGBW",
	RBGW: "RBGW",
	GRBW: "GRBW",
	GBRW: "GBRW",
	BRGW: "BRGW",
	BGRW: "BGRW",
}

// Shifts holds, for each transmitted slot, the bit position of the input word it is read from. The field names follow
// the driver's wshift/rshift/gshift/bshift.
type Shifts struct {
	White uint8 `yaml:"white"`
	Red   uint8 `yaml:"red"`
	Green uint8 `yaml:"green"`
	Blue  uint8 `yaml:"blue"`
}

func (s Shifts) Valid() bool {
	return s.White <= 24 && s.Red <= 24 && s.Green <= 24 && s.Blue <= 24
}

func (l Layout) Shifts() Shifts {
	return Shifts{
		White: uint8(l >> 24),
		Red:   uint8(l >> 16),
		Green: uint8(l >> 8),
		Blue:  uint8(l),
	}
}

// Components is 4 for strips with a white sub-pixel, 3 otherwise.
func (l Layout) Components() int {
	if l&0xff000000 != 0 {
		return 4
	}
	return 3
}

func (l Layout) Valid() bool {
	_, ok := layoutNames[l]
	return ok
}

func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Layout(%#08x)", uint32(l))
}

// ParseLayout looks up a layout by name, ignoring case.
func ParseLayout(s string) (Layout, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return RGB, nil
	}
	for l, n := range layoutNames {
		if n == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown strip layout %q", s)
}

func (l Layout) MarshalYAML() (interface{}, error) {
	return l.String(), nil
}

func (l *Layout) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseLayout(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
