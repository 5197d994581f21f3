package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/callebjorkell/stripctl/internal/color"
	"github.com/callebjorkell/stripctl/internal/neopixel"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"
)

const defaultLedCount = 30 * 5 / 3 // 30 leds/m * 5m / 3 leds per chip

type Config struct {
	Driver      string    `yaml:"driver"`
	Frequency   frequency `yaml:"frequency"`
	DMA         *int      `yaml:"dma"`
	ClearOnExit *bool     `yaml:"clearOnExit"`
	Channels    []struct {
		GPIO       int           `yaml:"gpio"`
		Invert     bool          `yaml:"invert"`
		Count      int           `yaml:"count"`
		Layout     color.Layout  `yaml:"layout"`
		Brightness *uint8        `yaml:"brightness"`
		Gamma      float64       `yaml:"gamma"`
		Shifts     *color.Shifts `yaml:"shifts"`
	} `yaml:"channels"`
}

// frequency accepts either a plain number of Hz or a value with a unit, like "800kHz".
type frequency physic.Frequency

func (f *frequency) UnmarshalYAML(value *yaml.Node) error {
	if hz, err := strconv.ParseUint(value.Value, 10, 32); err == nil {
		*f = frequency(physic.Frequency(hz) * physic.Hertz)
		return nil
	}
	var p physic.Frequency
	if err := p.Set(value.Value); err != nil {
		return fmt.Errorf("invalid frequency %q: %w", value.Value, err)
	}
	*f = frequency(p)
	return nil
}

func (f frequency) Hertz() uint32 {
	return uint32(physic.Frequency(f) / physic.Hertz)
}

// DeviceConfig turns the file configuration into a device configuration, filling in defaults.
func (c Config) DeviceConfig() neopixel.Config {
	d := neopixel.DefaultConfig(defaultLedCount)
	d.Driver = c.Driver
	if c.Frequency != 0 {
		d.Frequency = c.Frequency.Hertz()
	}
	if c.DMA != nil {
		d.DMA = *c.DMA
	}
	if c.ClearOnExit != nil {
		d.ClearOnExit = *c.ClearOnExit
	}
	if len(c.Channels) == 0 {
		return d
	}

	d.Channels = make([]neopixel.ChannelConfig, len(c.Channels))
	for i, ch := range c.Channels {
		d.Channels[i] = neopixel.ChannelConfig{
			GPIO:       ch.GPIO,
			Invert:     ch.Invert,
			Count:      ch.Count,
			Layout:     ch.Layout,
			Brightness: neopixel.DefaultBrightness,
			Shifts:     ch.Shifts,
		}
		if ch.Brightness != nil {
			d.Channels[i].Brightness = *ch.Brightness
		}
		if ch.Gamma > 1 {
			d.Channels[i].Gamma = color.Gamma(ch.Gamma)
		}
	}
	return d
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if len(c.Channels) > neopixel.MaxChannels {
		return nil, fmt.Errorf("at most %d channels can be configured", neopixel.MaxChannels)
	}
	for i, ch := range c.Channels {
		if ch.Count < 0 {
			return nil, fmt.Errorf("count of channel %d cannot be negative", i)
		}
		if ch.Count > 0 && ch.GPIO == 0 {
			return nil, fmt.Errorf("gpio must be specified for channel %d", i)
		}
		if ch.Gamma < 0 {
			return nil, fmt.Errorf("gamma of channel %d cannot be negative", i)
		}
	}

	return c, nil
}

// readConfig reads the configuration file. A missing file gives the defaults.
func readConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}

	c, err := parseConfig(content)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid configuration in %s", path)
	}
	return c, nil
}
