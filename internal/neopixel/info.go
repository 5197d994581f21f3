package neopixel

import (
	"fmt"
	"strings"
	"time"
)

type ChannelInfo struct {
	Index int
	ChannelConfig
	Pixels []uint32
}

// Info is a snapshot of the device and its buffers.
type Info struct {
	RenderWait time.Duration
	Frequency  uint32
	DMA        int
	Channels   []ChannelInfo
}

func (d *Device) Info() (Info, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return Info{}, ErrDeviceClosed
	}

	info := Info{
		RenderWait: d.renderWait,
		Frequency:  d.config.Frequency,
		DMA:        d.config.DMA,
	}
	for _, ch := range d.channels {
		info.Channels = append(info.Channels, ChannelInfo{
			Index:         ch.index,
			ChannelConfig: ch.config,
			Pixels:        ch.Pixels(),
		})
	}
	return info, nil
}

func (i Info) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "%-30s%v\n", "Render wait time:", i.RenderWait)
	fmt.Fprintf(&sb, "%-30s%d\n", "Output frequency (Hz):", i.Frequency)
	fmt.Fprintf(&sb, "%-30s%d\n", "DMA channel:", i.DMA)

	for _, ch := range i.Channels {
		if ch.GPIO == 0 {
			continue
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "%-30s%d\n", "Channel:", ch.Index)
		fmt.Fprintf(&sb, "%-30s%d\n", "GPIO:", ch.GPIO)
		fmt.Fprintf(&sb, "%-30s%v\n", "Invert:", ch.Invert)
		fmt.Fprintf(&sb, "%-30s%d\n", "LED count:", ch.Count)
		fmt.Fprintf(&sb, "%-30s%v (%08x)\n", "Strip layout:", ch.Layout, uint32(ch.Layout))
		fmt.Fprintf(&sb, "%-30s%d\n", "Brightness:", ch.Brightness)
		s := ch.Layout.Shifts()
		if ch.Shifts != nil {
			s = *ch.Shifts
		}
		fmt.Fprintf(&sb, "%-30sw=%d r=%d g=%d b=%d\n", "Shifts:", s.White, s.Red, s.Green, s.Blue)
		for j, p := range ch.Pixels {
			fmt.Fprintf(&sb, "%08x,", p)
			if (j+1)%10 == 0 {
				sb.WriteString("\n")
			}
		}
		if len(ch.Pixels)%10 != 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
