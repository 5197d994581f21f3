package neopixel

import (
	"github.com/callebjorkell/stripctl/internal/color"
)

const (
	// MaxChannels is the number of PWM channels of the hardware.
	MaxChannels = 2
	MaxDMA      = 14

	DefaultFrequency  = 800000
	DefaultDMA        = 10
	DefaultGPIO       = 12
	DefaultBrightness = 255
)

// ChannelConfig describes one output channel. A Count of 0 disables the channel.
type ChannelConfig struct {
	GPIO       int
	Invert     bool
	Count      int
	Layout     color.Layout
	Brightness uint8
	// Shifts overrides the shifts derived from Layout for strips with exotic wiring.
	Shifts *color.Shifts
	// Gamma is nil for a linear output, or a table of exactly 256 entries.
	Gamma []byte
}

func (c ChannelConfig) Active() bool {
	return c.Count > 0
}

func (c ChannelConfig) codec() color.Codec {
	return color.Codec{
		Layout:     c.Layout,
		Brightness: c.Brightness,
		Shifts:     c.Shifts,
		Gamma:      c.Gamma,
	}
}

// Config is the device wide configuration.
type Config struct {
	// Frequency of the LED signal in Hz, normally 800kHz or 400kHz.
	Frequency uint32
	// DMA channel to use, 0-14. Must not be used by anything else.
	DMA      int
	Channels []ChannelConfig
	// ClearOnExit blanks all active channels before the driver is released.
	ClearOnExit bool
	// Driver is the name of a registered driver. Empty selects the default for the build.
	Driver string
}

// DefaultConfig returns a single channel configuration on GPIO 12 with the given number of LEDs.
func DefaultConfig(count int) Config {
	return Config{
		Frequency: DefaultFrequency,
		DMA:       DefaultDMA,
		Channels: []ChannelConfig{
			{
				GPIO:       DefaultGPIO,
				Count:      count,
				Layout:     color.RGB,
				Brightness: DefaultBrightness,
			},
			{
				Layout:     color.RGB,
				Brightness: DefaultBrightness,
			},
		},
		ClearOnExit: true,
	}
}

// pins that can carry the signal, per channel. SPI (10) and PCM (21, 31) only exist for the first channel.
var channelPins = [MaxChannels][]int{
	{12, 18, 40, 52, 10, 21, 31},
	{13, 19, 41, 45, 53},
}

func pinAllowed(channel, gpio int) bool {
	for _, p := range channelPins[channel] {
		if p == gpio {
			return true
		}
	}
	return false
}

// normalized returns a copy with the zero layout replaced by RGB and an owned channel slice.
func (c Config) normalized() Config {
	channels := make([]ChannelConfig, len(c.Channels))
	copy(channels, c.Channels)
	for i := range channels {
		if channels[i].Layout == 0 {
			channels[i].Layout = color.RGB
		}
	}
	c.Channels = channels
	return c
}

func (c Config) validate() error {
	if c.DMA < 0 || c.DMA > MaxDMA {
		return configErrorf("dma", "channel %d is outside [0, %d]", c.DMA, MaxDMA)
	}
	if c.Frequency == 0 {
		return configErrorf("frequency", "must be larger than zero")
	}
	if len(c.Channels) > MaxChannels {
		return configErrorf("channels", "%d channels configured, hardware supports %d", len(c.Channels), MaxChannels)
	}

	active := 0
	for i, ch := range c.Channels {
		if ch.Count < 0 {
			return configErrorf("channels", "channel %d has a negative LED count", i)
		}
		if !ch.Active() {
			continue
		}
		active++

		if ch.GPIO == 0 {
			return configErrorf("gpio", "channel %d is active but has no GPIO", i)
		}
		if !pinAllowed(i, ch.GPIO) {
			return configErrorf("gpio", "GPIO%d cannot drive channel %d", ch.GPIO, i)
		}
		if err := checkPin(ch.GPIO); err != nil {
			return configErrorf("gpio", "GPIO%d: %v", ch.GPIO, err)
		}

		if !ch.Layout.Valid() && ch.Shifts == nil {
			return configErrorf("layout", "channel %d has unknown layout %v", i, ch.Layout)
		}
		if ch.Shifts != nil && !ch.Shifts.Valid() {
			return configErrorf("shifts", "channel %d has a shift above 24", i)
		}
		if ch.Gamma != nil && len(ch.Gamma) != 256 {
			return configErrorf("gamma", "channel %d has %d entries, need 256", i, len(ch.Gamma))
		}
	}
	if active == 0 {
		return configErrorf("channels", "no active channel")
	}

	return nil
}
