package neopixel

import (
	"testing"

	"github.com/callebjorkell/stripctl/internal/color"
	"github.com/stretchr/testify/assert"
)

func TestPassthroughChannels(t *testing.T) {
	cfg := DefaultConfig(10)
	cfg.Channels[0].Layout = color.GRB
	cfg.Channels[0].Invert = true
	cfg.Channels[0].Brightness = 40
	cfg.Channels[1] = ChannelConfig{GPIO: 4, Count: 0, Invert: true, Layout: color.GRBW}

	channels := passthroughChannels(cfg)
	assert.Equal(t, passthroughChannel{GPIO: 12, Invert: true, Count: 10, StripType: color.RGB}, channels[0])
	assert.Equal(t, passthroughChannel{StripType: color.RGB}, channels[1])
}

func TestPassthroughChannels_RGBW(t *testing.T) {
	cfg := DefaultConfig(5)
	cfg.Channels = cfg.Channels[:1]
	cfg.Channels[0].Layout = color.GRBW

	channels := passthroughChannels(cfg)
	assert.Equal(t, passthroughChannel{GPIO: 12, Count: 5, StripType: color.RGBW}, channels[0])
	assert.Equal(t, passthroughChannel{StripType: color.RGB}, channels[1])
}

func TestOpen_InactiveChannelReachesDriverAsConfigured(t *testing.T) {
	cfg := DefaultConfig(10)
	cfg.Channels[1] = ChannelConfig{GPIO: 4, Count: 0}
	_, fake := openFake(t, cfg)

	// the device passes the configuration on untouched, zeroing is up to the libws2811 bindings
	assert.Equal(t, 4, fake.config.Channels[1].GPIO)
	assert.Zero(t, passthroughChannels(fake.config)[1].GPIO)
}
