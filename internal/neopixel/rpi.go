//go:build pi

package neopixel

import (
	"strings"
	"time"

	ws "github.com/rpi-ws281x/rpi-ws281x-go"
	log "github.com/sirupsen/logrus"
)

func init() {
	RegisterDriver("rpi", func() Driver {
		return &rpiDriver{}
	})
}

// rpiDriver goes through the rpi-ws281x-go binding. The binding does not expose the render wait time of the C handle,
// so it is derived from the frame length instead.
type rpiDriver struct {
	dev  *ws.WS2811
	wait time.Duration
}

func (d *rpiDriver) Init(cfg Config) Status {
	opt := ws.DefaultOptions
	opt.Frequency = int(cfg.Frequency)
	opt.DmaNum = cfg.DMA
	channels := passthroughChannels(cfg)
	opt.Channels = make([]ws.ChannelOption, len(channels))
	for i, ch := range channels {
		opt.Channels[i] = ws.ChannelOption{
			GpioPin:    ch.GPIO,
			Invert:     ch.Invert,
			LedCount:   ch.Count,
			StripeType: int(ch.StripType),
			Brightness: 255,
		}
	}

	dev, err := ws.MakeWS2811(&opt)
	if err != nil {
		log.Warn("neopixel: ", err)
		return statusOf(err)
	}
	// The binding frees its C handle only in Fini, which cannot run on a handle whose init failed, so a failed Init
	// leaves that struct behind.
	if err := dev.Init(); err != nil {
		log.Warn("neopixel: ", err)
		return statusOf(err)
	}

	d.dev = dev
	d.wait = frameTime(cfg)
	return StatusSuccess
}

func (d *rpiDriver) Leds(channel int) []uint32 {
	return d.dev.Leds(channel)
}

func (d *rpiDriver) Render() Status {
	return statusOf(d.dev.Render())
}

func (d *rpiDriver) Wait() Status {
	return statusOf(d.dev.Wait())
}

func (d *rpiDriver) Fini() {
	d.dev.Fini()
}

func (d *rpiDriver) RenderWaitTime() time.Duration {
	return d.wait
}

// statusOf recovers the driver status from the description the binding puts in its errors.
func statusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	for s := range statusDescriptions {
		if s == StatusSuccess {
			continue
		}
		if strings.Contains(err.Error(), ws.StatusDesc(int(s))) {
			return s
		}
	}
	return StatusGeneric
}
