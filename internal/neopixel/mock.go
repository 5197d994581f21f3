package neopixel

import (
	"time"

	log "github.com/sirupsen/logrus"
)

func init() {
	RegisterDriver("mock", func() Driver {
		return &mockDriver{}
	})
}

// mockDriver keeps the frames in memory and logs them. It stands in for the hardware on machines without a strip.
type mockDriver struct {
	leds   [][]uint32
	wait   time.Duration
	frames int
}

func (d *mockDriver) Init(cfg Config) Status {
	d.leds = make([][]uint32, len(cfg.Channels))
	for i, ch := range cfg.Channels {
		if ch.Active() {
			d.leds[i] = make([]uint32, ch.Count)
		}
	}
	d.wait = frameTime(cfg)
	log.Debugf("neopixel: mock driver initialized, %d channels", len(cfg.Channels))
	return StatusSuccess
}

func (d *mockDriver) Leds(channel int) []uint32 {
	if channel < 0 || channel >= len(d.leds) {
		return nil
	}
	return d.leds[channel]
}

func (d *mockDriver) Render() Status {
	d.frames++
	log.WithField("frame", d.frames).Debug("neopixel: render")
	for i, leds := range d.leds {
		if leds != nil {
			log.WithFields(log.Fields{"frame": d.frames, "channel": i}).Tracef("%08x", leds)
		}
	}
	return StatusSuccess
}

func (d *mockDriver) Wait() Status {
	log.Trace("neopixel: wait")
	return StatusSuccess
}

func (d *mockDriver) Fini() {
	log.Debug("neopixel: mock driver released")
	d.leds = nil
}

func (d *mockDriver) RenderWaitTime() time.Duration {
	return d.wait
}
