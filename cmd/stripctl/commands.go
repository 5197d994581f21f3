package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/callebjorkell/stripctl/internal/color"
	"github.com/callebjorkell/stripctl/internal/neopixel"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var dotColors = []uint32{
	0x00200000, // red
	0x00201000, // orange
	0x00202000, // yellow
	0x00002000, // green
	0x00002020, // lightblue
	0x00000020, // blue
	0x00100010, // purple
	0x00200010, // pink
}

type deviceCmd func(ctx context.Context, dev *neopixel.Device) error

// withDevice opens the device, runs the command and always closes the device again, also on SIGINT/SIGTERM.
func withDevice(run deviceCmd) error {
	dev, err := openDevice()
	if err != nil {
		return err
	}
	defer dev.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return run(ctx, dev)
}

func showInfo(_ context.Context, dev *neopixel.Device) error {
	info, err := dev.Info()
	if err != nil {
		return err
	}
	fmt.Print(info)
	return nil
}

func fillChannelCmd(channel int, value string) deviceCmd {
	return func(ctx context.Context, dev *neopixel.Device) error {
		c, err := color.Parse(value)
		if err != nil {
			return err
		}
		ch, err := dev.Channel(channel)
		if err != nil {
			return err
		}

		ch.Fill(c)
		if err := dev.Render(); err != nil {
			return errors.Wrap(err, "unable to render")
		}
		return hold(ctx, dev)
	}
}

func setLedCmd(index int, value string) deviceCmd {
	return func(ctx context.Context, dev *neopixel.Device) error {
		c, err := color.Parse(value)
		if err != nil {
			return err
		}
		ch, err := dev.Channel(0)
		if err != nil {
			return err
		}

		if err := ch.Set(index, c); err != nil {
			return err
		}
		if err := dev.Render(); err != nil {
			return errors.Wrap(err, "unable to render")
		}
		return hold(ctx, dev)
	}
}

// hold waits for the frame to go out and keeps the device open until interrupted.
func hold(ctx context.Context, dev *neopixel.Device) error {
	if err := dev.Wait(); err != nil {
		return err
	}
	log.Info("Press Ctrl-C to quit.")
	<-ctx.Done()
	return nil
}

func runDemo(ctx context.Context, dev *neopixel.Device) error {
	ch, err := dev.Channel(0)
	if err != nil {
		return err
	}

	off := ch.Len() - 5
	for _, c := range dotColors {
		ch.Fill(c)
		if off >= 0 {
			_ = ch.Set(off, 0)
		}
		if err := dev.Render(); err != nil {
			return errors.Wrap(err, "unable to render")
		}

		select {
		case <-time.After(500 * time.Millisecond):
		case <-ctx.Done():
			log.Info("Demo interrupted")
			return nil
		}
	}

	log.Info("Done...")
	return nil
}

func runRainbow(ctx context.Context, dev *neopixel.Device) error {
	l, err := neopixel.NewLedController(dev, 0)
	if err != nil {
		return err
	}

	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			l.Stop()
		case <-stopped:
		}
	}()

	for ctx.Err() == nil {
		if err := l.Rainbow(); err != nil && ctx.Err() == nil {
			return err
		}
	}
	return nil
}

func runBreathe(value string) deviceCmd {
	return func(ctx context.Context, dev *neopixel.Device) error {
		c, err := color.Parse(value)
		if err != nil {
			return err
		}
		l, err := neopixel.NewLedController(dev, 0)
		if err != nil {
			return err
		}

		l.Breathe(c)
		<-ctx.Done()
		l.Stop()
		return nil
	}
}
