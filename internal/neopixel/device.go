package neopixel

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
)

// Device drives up to MaxChannels LED strips through a Driver.
//
// Channel buffers are meant to be owned by a single goroutine that also calls Render. Render, Wait and Close are
// serialized, so a Close triggered from a signal handler never runs in the middle of a render.
type Device struct {
	mu       sync.Mutex
	config   Config
	channels []*Channel
	driver   Driver
	clock    clock.Clock
	closed   bool

	// render scheduling
	renderWait time.Duration
	lastSubmit time.Time
	submitted  bool
}

type options struct {
	driver Driver
	clock  clock.Clock
}

type Option func(*options)

// WithDriver uses the given driver instead of looking one up by name.
func WithDriver(d Driver) Option {
	return func(o *options) {
		o.driver = d
	}
}

// WithClock replaces the wall clock used for render scheduling.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// Open validates the configuration, claims the DMA channel and initializes the driver. Configuration problems are
// reported as *ConfigError before the driver is touched, driver failures as *InitError.
func Open(cfg Config, opts ...Option) (*Device, error) {
	o := options{
		clock: clock.New(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	drv := o.driver
	if drv == nil {
		var err error
		drv, err = lookupDriver(cfg.Driver)
		if err != nil {
			return nil, err
		}
	}

	if err := claimDMA(cfg.DMA); err != nil {
		return nil, err
	}

	d := &Device{
		config: cfg,
		driver: drv,
		clock:  o.clock,
	}
	for i, ch := range cfg.Channels {
		d.channels = append(d.channels, newChannel(i, ch))
	}

	log.Debugf("Initializing driver with DMA %d at %d Hz", cfg.DMA, cfg.Frequency)
	if status := drv.Init(cfg); !status.Ok() {
		releaseDMA(cfg.DMA)
		return nil, &InitError{Status: status}
	}
	d.renderWait = drv.RenderWaitTime()

	log.Infof("Opened LED device on DMA %d, render wait %v", cfg.DMA, d.renderWait)
	return d, nil
}

// Channel returns the buffer of channel n.
func (d *Device) Channel(n int) (*Channel, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, ErrDeviceClosed
	}
	if n < 0 || n >= len(d.channels) {
		return nil, &OutOfRangeError{Index: n, Length: len(d.channels)}
	}
	return d.channels[n], nil
}

// RenderWait is the minimum time between two renders as last reported by the driver.
func (d *Device) RenderWait() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.renderWait
}

// Render waits until the previous frame has been latched and then submits all active channels to the driver. A
// failed render leaves the device usable; retrying is up to the caller.
func (d *Device) Render() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrDeviceClosed
	}
	return d.render()
}

func (d *Device) render() error {
	d.waitForLatch()

	for _, ch := range d.channels {
		if !ch.config.Active() {
			continue
		}
		ch.encode(d.driver.Leds(ch.index))
	}

	d.lastSubmit = d.clock.Now()
	d.submitted = true
	status := d.driver.Render()
	d.renderWait = d.driver.RenderWaitTime()
	if !status.Ok() {
		return &RenderError{Op: "render", Status: status}
	}

	log.Trace("Frame submitted")
	return nil
}

func (d *Device) waitForLatch() {
	if !d.submitted {
		return
	}
	remaining := d.renderWait - d.clock.Since(d.lastSubmit)
	if remaining <= 0 {
		return
	}
	log.Tracef("Waiting %v before next render", remaining)
	d.clock.Sleep(remaining)
}

// Wait blocks until the driver has finished transmitting the last frame. Changing the buffers without waiting is
// allowed, but may tear the frame that is still going out.
func (d *Device) Wait() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrDeviceClosed
	}
	if status := d.driver.Wait(); !status.Ok() {
		return &RenderError{Op: "wait", Status: status}
	}
	return nil
}

// Close blanks the strips when ClearOnExit is set and releases the driver. It is safe to call more than once.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	if d.config.ClearOnExit {
		for _, ch := range d.channels {
			ch.Fill(0)
		}
		if err := d.render(); err != nil {
			log.Warn("Unable to clear LEDs on close: ", err)
		} else if status := d.driver.Wait(); !status.Ok() {
			log.Warnf("Waiting for the cleared frame failed: %v", status)
		}
	}

	d.driver.Fini()
	releaseDMA(d.config.DMA)

	log.Info("LED device closed")
	return nil
}

var dmaClaims = struct {
	sync.Mutex
	held map[int]bool
}{
	held: make(map[int]bool),
}

func claimDMA(dma int) error {
	dmaClaims.Lock()
	defer dmaClaims.Unlock()

	if dmaClaims.held[dma] {
		return configErrorf("dma", "channel %d is already used by another device", dma)
	}
	dmaClaims.held[dma] = true
	return nil
}

func releaseDMA(dma int) {
	dmaClaims.Lock()
	defer dmaClaims.Unlock()

	delete(dmaClaims.held, dma)
}
