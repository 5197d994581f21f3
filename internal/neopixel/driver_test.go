package neopixel

import (
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/callebjorkell/stripctl/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDriver counts calls and keeps a copy of every rendered frame.
type fakeDriver struct {
	mu    sync.Mutex
	clock clock.Clock

	initStatus   Status
	renderStatus Status
	waitStatus   Status
	wait         time.Duration

	config    Config
	leds      [][]uint32
	ledsCalls map[int]int
	inits     int
	renders   int
	waits     int
	finis     int
	submitted []time.Time
	frames    [][][]uint32
}

func newFakeDriver(c clock.Clock) *fakeDriver {
	return &fakeDriver{
		clock:     c,
		ledsCalls: make(map[int]int),
	}
}

func (d *fakeDriver) Init(cfg Config) Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.inits++
	d.config = cfg
	if !d.initStatus.Ok() {
		return d.initStatus
	}
	d.leds = make([][]uint32, len(cfg.Channels))
	for i, ch := range cfg.Channels {
		if ch.Active() {
			d.leds[i] = make([]uint32, ch.Count)
		}
	}
	return StatusSuccess
}

func (d *fakeDriver) Leds(channel int) []uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.ledsCalls[channel]++
	return d.leds[channel]
}

func (d *fakeDriver) Render() Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.renders++
	d.submitted = append(d.submitted, d.clock.Now())
	frame := make([][]uint32, len(d.leds))
	for i, leds := range d.leds {
		frame[i] = append([]uint32(nil), leds...)
	}
	d.frames = append(d.frames, frame)
	return d.renderStatus
}

func (d *fakeDriver) Wait() Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.waits++
	return d.waitStatus
}

func (d *fakeDriver) Fini() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.finis++
}

func (d *fakeDriver) RenderWaitTime() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.wait
}

func (d *fakeDriver) lastFrame() [][]uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.frames) == 0 {
		return nil
	}
	return d.frames[len(d.frames)-1]
}

func (d *fakeDriver) renderCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.renders
}

func (d *fakeDriver) submissions() []time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]time.Time(nil), d.submitted...)
}

func TestRegistry(t *testing.T) {
	names := Drivers()
	assert.Contains(t, names, "mock")
	assert.Contains(t, names, "spi")

	assert.Panics(t, func() {
		RegisterDriver("mock", func() Driver { return &mockDriver{} })
	})

	_, err := lookupDriver("does-not-exist")
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestMockDriver(t *testing.T) {
	cfg := DefaultConfig(10)
	cfg.DMA = 3
	cfg.Driver = "mock"

	dev, err := Open(cfg)
	require.NoError(t, err)
	defer dev.Close()

	ch, err := dev.Channel(0)
	require.NoError(t, err)
	ch.Fill(0x00112233)
	require.NoError(t, dev.Render())
	require.NoError(t, dev.Wait())

	mock := dev.driver.(*mockDriver)
	assert.Equal(t, 1, mock.frames)
	assert.Equal(t, uint32(0x00112233), mock.Leds(0)[9])
	assert.Nil(t, mock.Leds(1))
	assert.Nil(t, mock.Leds(5))
}

func TestFrameTime(t *testing.T) {
	cfg := DefaultConfig(50)
	assert.Equal(t, 50*24*1250*time.Nanosecond+resetTime, frameTime(cfg))

	cfg.Frequency = 400000
	cfg.Channels[1] = ChannelConfig{GPIO: 13, Count: 100, Layout: color.GRBW}
	assert.Equal(t, 100*32*2500*time.Nanosecond+resetTime, frameTime(cfg))

	assert.Equal(t, resetTime, frameTime(Config{}))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "DMA error", StatusDma.String())
	assert.Equal(t, "unknown status -42", Status(-42).String())
	assert.True(t, StatusSuccess.Ok())
	assert.False(t, StatusGeneric.Ok())
}
