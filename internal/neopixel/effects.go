package neopixel

import (
	"errors"
	"time"

	"github.com/callebjorkell/stripctl/internal/color"
	log "github.com/sirupsen/logrus"
)

var errInterrupted = errors.New("animation was interrupted")

// LedController runs animations on one channel of a device. Only one animation owns the channel at a time; starting
// a new one interrupts the running one.
type LedController struct {
	dev   *Device
	ch    *Channel
	queue Queue
}

func NewLedController(dev *Device, channel int) (*LedController, error) {
	ch, err := dev.Channel(channel)
	if err != nil {
		return nil, err
	}
	return &LedController{
		dev: dev,
		ch:  ch,
	}, nil
}

func (l *LedController) setColor(c uint32) error {
	l.ch.Fill(c)
	return l.dev.Render()
}

func (l *LedController) clear() {
	if err := l.setColor(0); err != nil {
		log.Debug("Unable to clear LEDs: ", err)
	}
}

// Stop interrupts the running animation and waits for it to end.
func (l *LedController) Stop() {
	done := l.queue.Take()
	done()
}

// Close stops any animation and closes the device.
func (l *LedController) Close() error {
	l.Stop()
	return l.dev.Close()
}

// Fill shows a single color until the next animation.
func (l *LedController) Fill(c uint32) error {
	done := l.queue.Take()
	defer done()

	return l.setColor(c)
}

func (l *LedController) Flash(c uint32) error {
	done := l.queue.Take()
	defer done()

	log.Infof("Flashing color %06x", c)
	steps := []struct {
		color uint32
		hold  time.Duration
	}{
		{c, 250 * time.Millisecond},
		{0, 40 * time.Millisecond},
		{c, 100 * time.Millisecond},
		{0, 40 * time.Millisecond},
		{c, 100 * time.Millisecond},
		{0, 0},
	}
	for _, s := range steps {
		if err := l.setColor(s.color); err != nil {
			return err
		}
		<-time.After(s.hold)
	}

	log.Debug("Flashing done...")
	return nil
}

// Rainbow spreads the color wheel over the strip and turns it for a while, fading in and out.
func (l *LedController) Rainbow() error {
	done := l.queue.Take()
	defer done()
	defer l.clear()

	log.Debugf("Displaying rainbow")
	tick := time.NewTicker(30 * time.Millisecond)
	defer tick.Stop()

	n := l.ch.Len()
	for step := 0; step <= 450; step++ {
		if l.queue.Interrupted() {
			return errInterrupted
		}

		light := uint32(100)
		if step < 50 {
			light = uint32(step * 2)
		}
		if step > 350 {
			light = uint32(450 - step)
		}
		for i := 0; i < n; i++ {
			c := color.Wheel(step*2 + i*360/n)
			_ = l.ch.Set(i, color.Dim(c, light))
		}
		if err := l.dev.Render(); err != nil {
			return err
		}

		<-tick.C
	}

	return nil
}

// Breathe fades the color in and out in the background until another animation or Stop takes over.
func (l *LedController) Breathe(c uint32) {
	done := l.queue.Take()

	go func() {
		defer done()
		defer l.clear()
		for {
			if err := l.singleBreath(c); err != nil {
				log.Debug("Stopping breathing: ", err)
				return
			}
		}
	}()
}

func (l *LedController) singleBreath(c uint32) error {
	light := uint32(0)
	increase := true
	log.Debugf("Breathing color: %06x", c)
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
	for {
		if l.queue.Interrupted() {
			return errInterrupted
		}

		if err := l.setColor(color.Dim(c, light)); err != nil {
			return err
		}

		if increase {
			light++
			if light > 100 {
				increase = false
			}
		} else {
			if light == 0 {
				break
			}
			light--
		}

		<-tick.C
	}
	return nil
}
