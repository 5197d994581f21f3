package neopixel

import (
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
)

func init() {
	RegisterDriver("spi", func() Driver {
		return &spiDriver{}
	})
}

// spiDriver encodes the NRZ signal on the MOSI line of the default SPI port through periph. Only a single channel can
// be driven and every transfer is synchronous.
type spiDriver struct {
	port       spi.PortCloser
	dev        *nrzled.Dev
	channel    int
	components int
	leds       []uint32
	raw        []byte
	wait       time.Duration
}

func (d *spiDriver) Init(cfg Config) Status {
	active := -1
	for i, ch := range cfg.Channels {
		if !ch.Active() {
			continue
		}
		if active >= 0 {
			log.Warn("neopixel: the spi driver supports a single channel")
			return StatusSpiSetup
		}
		active = i
	}
	if active < 0 {
		return StatusGeneric
	}
	ch := cfg.Channels[active]
	if ch.Invert {
		log.Warn("neopixel: the spi driver cannot invert the signal, ignoring")
	}

	if err := initHost(); err != nil {
		log.Warn("neopixel: unable to initialize periph: ", err)
		return StatusHwNotSupport
	}
	port, err := spireg.Open("")
	if err != nil {
		log.Warn("neopixel: unable to open spi port: ", err)
		return StatusSpiSetup
	}

	d.components = ch.Layout.Components()
	dev, err := nrzled.NewSPI(port, &nrzled.Opts{
		NumPixels: ch.Count,
		Channels:  d.components,
		Freq:      physic.Frequency(cfg.Frequency) * physic.Hertz,
	})
	if err != nil {
		log.Warn("neopixel: unable to set up nrzled: ", err)
		port.Close()
		return StatusSpiSetup
	}

	d.port = port
	d.dev = dev
	d.channel = active
	d.leds = make([]uint32, ch.Count)
	d.raw = make([]byte, ch.Count*d.components)
	d.wait = frameTime(cfg)
	return StatusSuccess
}

func (d *spiDriver) Leds(channel int) []uint32 {
	if channel != d.channel {
		return nil
	}
	return d.leds
}

func (d *spiDriver) Render() Status {
	rasterNRZ(d.raw, d.leds, d.components)
	if _, err := d.dev.Write(d.raw); err != nil {
		log.Debug("neopixel: spi write failed: ", err)
		return StatusSpiTransfer
	}
	return StatusSuccess
}

// rasterNRZ turns encoded words into the byte stream nrzled expects. nrzled sends the second byte of every pixel
// first, so the first two wire slots are swapped to keep the encoded order on the wire. White follows as the fourth
// byte for 4 component strips.
func rasterNRZ(dst []byte, leds []uint32, components int) {
	for i, v := range leds {
		p := dst[i*components:]
		p[0] = byte(v >> 8)
		p[1] = byte(v >> 16)
		p[2] = byte(v)
		if components == 4 {
			p[3] = byte(v >> 24)
		}
	}
}

func (d *spiDriver) Wait() Status {
	return StatusSuccess
}

func (d *spiDriver) Fini() {
	if d.dev != nil {
		if err := d.dev.Halt(); err != nil {
			log.Debug("neopixel: halting nrzled: ", err)
		}
	}
	if d.port != nil {
		d.port.Close()
	}
	d.dev, d.port = nil, nil
}

func (d *spiDriver) RenderWaitTime() time.Duration {
	return d.wait
}
