package neopixel

import "github.com/callebjorkell/stripctl/internal/color"

// passthroughChannel is the per-channel setup handed to libws2811. Pixels arrive already encoded, so the library
// always runs with a plain RGB or RGBW strip type, full brightness and no gamma table.
type passthroughChannel struct {
	GPIO      int
	Invert    bool
	Count     int
	StripType color.Layout
}

// passthroughChannels builds the libws2811 channel setup for cfg. Inactive channels keep pin and count at zero, the
// library rejects any non-zero pin without a PWM function even when no LEDs hang off it.
func passthroughChannels(cfg Config) [MaxChannels]passthroughChannel {
	var out [MaxChannels]passthroughChannel
	for i := range out {
		out[i].StripType = color.RGB
		if i >= len(cfg.Channels) || !cfg.Channels[i].Active() {
			continue
		}

		ch := cfg.Channels[i]
		out[i].GPIO = ch.GPIO
		out[i].Invert = ch.Invert
		out[i].Count = ch.Count
		if ch.Layout.Components() == 4 {
			out[i].StripType = color.RGBW
		}
	}
	return out
}
