//go:build pi && cgo

package neopixel

/*
#cgo LDFLAGS: -lws2811 -lm
#include <stdlib.h>
#include <stdint.h>
#include <ws2811/ws2811.h>
*/
import "C"
import (
	"time"
	"unsafe"

	log "github.com/sirupsen/logrus"
)

func init() {
	RegisterDriver("native", func() Driver {
		return &nativeDriver{}
	})
}

// nativeDriver binds libws2811 directly. The ws2811_t handle is allocated in C memory so the driver may keep pointers
// into it, and its layout comes from the library header.
type nativeDriver struct {
	dev   *C.ws2811_t
	count [MaxChannels]int
}

func (d *nativeDriver) Init(cfg Config) Status {
	dev := (*C.ws2811_t)(C.calloc(1, C.size_t(unsafe.Sizeof(C.ws2811_t{}))))
	if dev == nil {
		return StatusOutOfMemory
	}

	dev.freq = C.uint32_t(cfg.Frequency)
	dev.dmanum = C.int(cfg.DMA)
	for i, c := range passthroughChannels(cfg) {
		ch := &dev.channel[i]
		ch.gpionum = C.int(c.GPIO)
		ch.count = C.int(c.Count)
		ch.strip_type = C.int(c.StripType)
		ch.brightness = 255
		if c.Invert {
			ch.invert = 1
		}
		d.count[i] = c.Count
	}

	if status := Status(C.ws2811_init(dev)); !status.Ok() {
		C.free(unsafe.Pointer(dev))
		return status
	}
	d.dev = dev
	log.Debugf("neopixel: libws2811 initialized, render wait %dus", uint64(dev.render_wait_time))
	return StatusSuccess
}

func (d *nativeDriver) Leds(channel int) []uint32 {
	if d.dev == nil || channel < 0 || channel >= MaxChannels || d.count[channel] == 0 {
		return nil
	}
	leds := d.dev.channel[channel].leds
	if leds == nil {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(leds)), d.count[channel])
}

func (d *nativeDriver) Render() Status {
	return Status(C.ws2811_render(d.dev))
}

func (d *nativeDriver) Wait() Status {
	return Status(C.ws2811_wait(d.dev))
}

func (d *nativeDriver) Fini() {
	if d.dev == nil {
		return
	}
	C.ws2811_fini(d.dev)
	C.free(unsafe.Pointer(d.dev))
	d.dev = nil
}

// RenderWaitTime reads render_wait_time from the handle; the library updates it on every render.
func (d *nativeDriver) RenderWaitTime() time.Duration {
	if d.dev == nil {
		return 0
	}
	return time.Duration(d.dev.render_wait_time) * time.Microsecond
}
