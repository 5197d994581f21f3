package neopixel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T, count int) (*LedController, *fakeDriver) {
	t.Helper()
	dev, fake := openFake(t, DefaultConfig(count))
	l, err := NewLedController(dev, 0)
	require.NoError(t, err)
	return l, fake
}

func TestNewLedController_BadChannel(t *testing.T) {
	dev, _ := openFake(t, DefaultConfig(4))
	_, err := NewLedController(dev, 3)
	var rangeErr *OutOfRangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestFlash(t *testing.T) {
	l, fake := newTestController(t, 4)

	require.NoError(t, l.Flash(0x00ff00))
	assert.Equal(t, 6, fake.renderCount())
	assert.Equal(t, []uint32{0, 0, 0, 0}, fake.lastFrame()[0])
	assert.Equal(t, []uint32{0x00ff00, 0x00ff00, 0x00ff00, 0x00ff00}, fake.frames[0][0])
}

func TestFill(t *testing.T) {
	l, fake := newTestController(t, 3)

	require.NoError(t, l.Fill(0x102030))
	assert.Equal(t, []uint32{0x102030, 0x102030, 0x102030}, fake.lastFrame()[0])
}

func TestBreathe_Stop(t *testing.T) {
	l, fake := newTestController(t, 4)

	l.Breathe(0x0000ff)
	<-time.After(50 * time.Millisecond)
	l.Stop()

	assert.Greater(t, fake.renderCount(), 1)
	assert.Equal(t, []uint32{0, 0, 0, 0}, fake.lastFrame()[0])

	count := fake.renderCount()
	<-time.After(30 * time.Millisecond)
	assert.Equal(t, count, fake.renderCount(), "breathing should have stopped")
}

func TestRainbow_Interrupted(t *testing.T) {
	l, fake := newTestController(t, 8)

	result := make(chan error)
	go func() {
		result <- l.Rainbow()
	}()

	<-time.After(100 * time.Millisecond)
	l.Stop()

	select {
	case err := <-result:
		assert.ErrorIs(t, err, errInterrupted)
	case <-time.After(time.Second):
		t.Fatal("rainbow did not stop")
	}
	assert.Equal(t, make([]uint32, 8), fake.lastFrame()[0])
}

func TestQueue(t *testing.T) {
	q := Queue{}
	assert.False(t, q.Interrupted())

	done := q.Take()
	assert.False(t, q.Interrupted())

	taken := make(chan struct{})
	go func() {
		second := q.Take()
		close(taken)
		second()
	}()

	assert.Eventually(t, q.Interrupted, time.Second, time.Millisecond)
	select {
	case <-taken:
		t.Fatal("queue was taken twice")
	case <-time.After(20 * time.Millisecond):
	}

	done()
	done()
	select {
	case <-taken:
	case <-time.After(time.Second):
		t.Fatal("queue was never handed over")
	}
	assert.False(t, q.Interrupted())
}
