package neopixel

import (
	"github.com/callebjorkell/stripctl/internal/color"
)

// Channel is the pixel buffer of one output channel. Values are stored as raw 0xWWRRGGBB words; layout, gamma and
// brightness are applied by the device when the buffer is rendered. A Channel is owned by its device and must not be
// used after the device is closed.
type Channel struct {
	index  int
	config ChannelConfig
	pixels []uint32
}

func newChannel(index int, cfg ChannelConfig) *Channel {
	return &Channel{
		index:  index,
		config: cfg,
		pixels: make([]uint32, cfg.Count),
	}
}

func (c *Channel) Index() int {
	return c.index
}

func (c *Channel) Len() int {
	return len(c.pixels)
}

func (c *Channel) Config() ChannelConfig {
	return c.config
}

// Fill sets every pixel to the color.
func (c *Channel) Fill(value uint32) {
	for i := range c.pixels {
		c.pixels[i] = value
	}
}

func (c *Channel) Set(index int, value uint32) error {
	if index < 0 || index >= len(c.pixels) {
		return &OutOfRangeError{Index: index, Length: len(c.pixels)}
	}
	c.pixels[index] = value
	return nil
}

func (c *Channel) Get(index int) (uint32, error) {
	if index < 0 || index >= len(c.pixels) {
		return 0, &OutOfRangeError{Index: index, Length: len(c.pixels)}
	}
	return c.pixels[index], nil
}

// Pixels returns a copy of the buffer.
func (c *Channel) Pixels() []uint32 {
	out := make([]uint32, len(c.pixels))
	copy(out, c.pixels)
	return out
}

// SetBrightness changes the brightness used from the next render on.
func (c *Channel) SetBrightness(brightness uint8) {
	c.config.Brightness = brightness
}

// encode writes the buffer in wire form into the driver buffer.
func (c *Channel) encode(dst []uint32) {
	codec := c.config.codec()
	for i := 0; i < len(c.pixels) && i < len(dst); i++ {
		dst[i] = color.Encode(c.pixels[i], codec)
	}
}
