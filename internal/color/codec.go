package color

// Codec is the per-channel colour configuration that Encode applies.
type Codec struct {
	Layout     Layout
	Brightness uint8
	// Shifts overrides the positions derived from Layout when set.
	Shifts *Shifts
	// Gamma is nil or a table of 256 entries.
	Gamma []byte
}

func (c Codec) shifts() Shifts {
	if c.Shifts != nil {
		return *c.Shifts
	}
	return c.Layout.Shifts()
}

// Split returns the white, red, green and blue components of a 0xWWRRGGBB word.
func Split(c uint32) (w, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Join packs components into a 0xWWRRGGBB word.
func Join(w, r, g, b uint8) uint32 {
	return uint32(w)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Encode turns a 0xWWRRGGBB value into the word a passthrough driver transmits as-is: the first transmitted byte at
// bits 16-23, then bits 8-15, bits 0-7 and finally the white byte at bits 24-31. Which input component lands in each
// slot follows the ws2811 strip type semantics, where the red, green, blue and white shifts are the positions the
// first, second, third and fourth transmitted byte are read from. Gamma correction is looked up first, then every
// component is scaled by Brightness/255 rounding down.
func Encode(c uint32, codec Codec) uint32 {
	w, r, g, b := Split(c)
	if len(codec.Gamma) == 256 {
		w, r, g, b = codec.Gamma[w], codec.Gamma[r], codec.Gamma[g], codec.Gamma[b]
	}
	c = Join(
		scale(w, codec.Brightness),
		scale(r, codec.Brightness),
		scale(g, codec.Brightness),
		scale(b, codec.Brightness),
	)

	s := codec.shifts()
	out := uint32(uint8(c>>(s.Red&31)))<<16 | uint32(uint8(c>>(s.Green&31)))<<8 | uint32(uint8(c>>(s.Blue&31)))
	if codec.Layout.Components() == 4 || s.White != 0 {
		out |= uint32(uint8(c>>(s.White&31))) << 24
	}
	return out
}

func scale(v, brightness uint8) uint8 {
	return uint8(uint32(v) * uint32(brightness) / 255)
}

// Dim returns the same color with a lower or equal brightness, on a scale from 0-100, where 100 is the same as the
// input.
func Dim(color, light uint32) uint32 {
	if light >= 100 {
		return color
	}
	if light == 0 {
		return 0
	}

	w, r, g, b := Split(color)
	return Join(
		uint8(uint32(w)*light/100),
		uint8(uint32(r)*light/100),
		uint8(uint32(g)*light/100),
		uint8(uint32(b)*light/100),
	)
}
