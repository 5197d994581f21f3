package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	tt := []struct {
		name   string
		input  uint32
		codec  Codec
		output uint32
	}{
		{
			"rgb passthrough",
			0x00123456,
			Codec{Layout: RGB, Brightness: 255},
			0x00123456,
		},
		{
			"grb red",
			0x00ff0000,
			Codec{Layout: GRB, Brightness: 255},
			0x0000ff00,
		},
		{
			"grb green",
			0x0000ff00,
			Codec{Layout: GRB, Brightness: 255},
			0x00ff0000,
		},
		{
			"bgr",
			0x00112233,
			Codec{Layout: BGR, Brightness: 255},
			0x00332211,
		},
		{
			"brg",
			0x00112233,
			Codec{Layout: BRG, Brightness: 255},
			0x00331122,
		},
		{
			"white is dropped on three component strips",
			0xff000000,
			Codec{Layout: RGB, Brightness: 255},
			0x00000000,
		},
		{
			"white is kept on rgbw strips",
			0xff000000,
			Codec{Layout: GRBW, Brightness: 255},
			0xff000000,
		},
		{
			"zero brightness",
			0xffffffff,
			Codec{Layout: RGBW, Brightness: 0},
			0x00000000,
		},
		{
			"half brightness rounds down",
			0x00ff8001,
			Codec{Layout: RGB, Brightness: 128},
			0x00804000,
		},
		{
			"custom shifts",
			0x00aabbcc,
			Codec{Layout: RGB, Brightness: 255, Shifts: &Shifts{Red: 0, Green: 16, Blue: 8}},
			0x00ccaabb,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.output, Encode(tc.input, tc.codec))
		})
	}
}

func TestEncode_GammaBeforeBrightness(t *testing.T) {
	gamma := make([]byte, 256)
	for i := range gamma {
		gamma[i] = 255 - byte(i)
	}

	out := Encode(0x0000ff00, Codec{Layout: RGB, Brightness: 255, Gamma: gamma})
	assert.Equal(t, uint32(0x00ff00ff), out)

	out = Encode(0x00000000, Codec{Layout: RGB, Brightness: 51, Gamma: gamma})
	assert.Equal(t, uint32(0x00333333), out)
}

func TestEncode_ShortGammaIsIgnored(t *testing.T) {
	out := Encode(0x00102030, Codec{Layout: RGB, Brightness: 255, Gamma: []byte{1, 2, 3}})
	assert.Equal(t, uint32(0x00102030), out)
}

func TestDim(t *testing.T) {
	tt := []struct {
		name   string
		input  uint32
		light  uint32
		output uint32
	}{
		{"full brightness red", 0xff0000, 100, 0xff0000},
		{"full brightness green", 0x00ff00, 100, 0x00ff00},
		{"full brightness blue", 0x0000ff, 100, 0x0000ff},
		{"zero brightness red", 0xff0000, 0, 0x000000},
		{"zero brightness blue", 0x0000ff, 0, 0x000000},
		{"50 percent", 0x806040, 50, 0x403020},
		{"50 percent white", 0x80000000, 50, 0x40000000},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.output, Dim(tc.input, tc.light))
		})
	}
}

func TestGamma(t *testing.T) {
	identity := Gamma(1)
	assert.Len(t, identity, 256)
	for i, v := range identity {
		assert.Equal(t, byte(i), v)
	}

	corrected := Gamma(2.8)
	assert.Len(t, corrected, 256)
	assert.Equal(t, byte(0), corrected[0])
	assert.Equal(t, byte(255), corrected[255])
	assert.Less(t, corrected[128], byte(128))
	for i := 1; i < len(corrected); i++ {
		assert.GreaterOrEqual(t, corrected[i], corrected[i-1])
	}
}
