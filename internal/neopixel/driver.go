package neopixel

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"periph.io/x/conn/v3/physic"
)

// Driver is the contract with the signal generator. Drivers transmit the words in their LED buffers as they are: the
// device has already applied layout, gamma and brightness, so drivers run with an RGB (or RGBW) strip type, full
// brightness and a linear gamma table.
type Driver interface {
	// Init allocates the hardware resources. On a non-zero status no hardware resource is left claimed.
	Init(cfg Config) Status
	// Leds is the driver owned buffer of a channel, nil for inactive channels. It is valid until Fini.
	Leds(channel int) []uint32
	// Render submits the current buffer contents for transmission.
	Render() Status
	// Wait blocks until the last transmission has completed.
	Wait() Status
	// Fini releases the hardware resources.
	Fini()
	// RenderWaitTime is the minimum time between two renders.
	RenderWaitTime() time.Duration
}

var registry = struct {
	sync.Mutex
	drivers map[string]func() Driver
}{
	drivers: make(map[string]func() Driver),
}

// RegisterDriver makes a driver available by name to Open.
func RegisterDriver(name string, factory func() Driver) {
	registry.Lock()
	defer registry.Unlock()

	if _, dup := registry.drivers[name]; dup {
		panic(fmt.Sprintf("neopixel: driver %q registered twice", name))
	}
	registry.drivers[name] = factory
}

// Drivers lists the names of the registered drivers.
func Drivers() []string {
	registry.Lock()
	defer registry.Unlock()

	names := make([]string, 0, len(registry.drivers))
	for name := range registry.drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupDriver(name string) (Driver, error) {
	if name == "" {
		name = defaultDriver
	}

	registry.Lock()
	defer registry.Unlock()

	factory, ok := registry.drivers[name]
	if !ok {
		return nil, configErrorf("driver", "no driver named %q", name)
	}
	return factory(), nil
}

// resetTime is the low period that latches a frame into the LEDs.
const resetTime = 300 * time.Microsecond

// frameTime estimates how long a frame takes on the wire: every bit of the longest active channel plus the latch.
func frameTime(cfg Config) time.Duration {
	bits := 0
	for _, ch := range cfg.Channels {
		if n := ch.Count * ch.Layout.Components() * 8; n > bits {
			bits = n
		}
	}
	if cfg.Frequency == 0 {
		return resetTime
	}
	period := (physic.Frequency(cfg.Frequency) * physic.Hertz).Period()
	return time.Duration(bits)*period + resetTime
}
