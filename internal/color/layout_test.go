package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLayoutShifts(t *testing.T) {
	assert.Equal(t, Shifts{Red: 16, Green: 8, Blue: 0}, RGB.Shifts())
	assert.Equal(t, Shifts{Red: 8, Green: 16, Blue: 0}, GRB.Shifts())
	assert.Equal(t, Shifts{White: 24, Red: 8, Green: 16, Blue: 0}, GRBW.Shifts())
	assert.Equal(t, 3, BGR.Components())
	assert.Equal(t, 4, BGRW.Components())
}

func TestParseLayout(t *testing.T) {
	for l, name := range layoutNames {
		parsed, err := ParseLayout(name)
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
		assert.Equal(t, name, l.String())
	}

	l, err := ParseLayout(" grb ")
	require.NoError(t, err)
	assert.Equal(t, GRB, l)

	l, err = ParseLayout("")
	require.NoError(t, err)
	assert.Equal(t, RGB, l)

	_, err = ParseLayout("RGBX")
	assert.Error(t, err)
	assert.False(t, Layout(0x1234).Valid())
}

func TestLayoutYAML(t *testing.T) {
	var c struct {
		Layout Layout `yaml:"layout"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("layout: gbr\n"), &c))
	assert.Equal(t, GBR, c.Layout)

	assert.Error(t, yaml.Unmarshal([]byte("layout: nope\n"), &c))

	out, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, "layout: GBR\n", string(out))
}

func TestParse(t *testing.T) {
	tt := []struct {
		input  string
		output uint32
	}{
		{"#ff0000", 0xff0000},
		{"00ff00", 0x00ff00},
		{"0x80000020", 0x80000020},
		{"255", 0xff},
	}
	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			c, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.output, c)
		})
	}

	_, err := Parse("not-a-color")
	assert.Error(t, err)
}

func TestHue(t *testing.T) {
	assert.Equal(t, uint32(0xff0000), Hue(0))
	assert.Equal(t, uint32(0x00ff00), Hue(120))
	assert.Equal(t, uint32(0x0000ff), Hue(240))
	assert.Equal(t, Hue(10), Wheel(370))
}
