package blit

import "encoding/binary"

// pixelCodec reads and writes one pixel of a given depth. The 16 blit
// kernels are the 4×4 compositions of these codecs.
//
// Codecs are small values bound once per blit; bind returns a copy ready to
// use with the surface's palette and the blit options.
type pixelCodec[T any] interface {
	bind(s *Surface, o *options) (T, error)

	// native returns the raw value a color key is compared against.
	native(p []byte) uint32

	// decode returns the color of the pixel at p[0].
	decode(p []byte) Color

	// encode stores c at p[0].
	encode(p []byte, c Color)
}

// indexedCodec handles 8-bit pixels. Reading needs the source palette;
// writing quantizes into the destination palette.
type indexedCodec struct {
	pal      *Palette
	reserved []IndexRange
	memo     map[Color]uint8
}

func (indexedCodec) bind(s *Surface, o *options) (indexedCodec, error) {
	if s.palette == nil {
		return indexedCodec{}, ErrMissingPalette
	}
	return indexedCodec{
		pal:      s.palette,
		reserved: o.reserved,
		memo:     make(map[Color]uint8),
	}, nil
}

func (indexedCodec) native(p []byte) uint32 { return uint32(p[0]) }

func (c indexedCodec) decode(p []byte) Color { return c.pal[p[0]] }

func (c indexedCodec) encode(p []byte, col Color) {
	idx, ok := c.memo[col]
	if !ok {
		idx = c.pal.NearestExcluding(col, c.reserved)
		c.memo[col] = idx
	}
	p[0] = idx
}

// rgb565Codec handles 16-bit little-endian RGB565 pixels.
type rgb565Codec struct{}

func (rgb565Codec) bind(*Surface, *options) (rgb565Codec, error) { return rgb565Codec{}, nil }

func (rgb565Codec) native(p []byte) uint32 { return uint32(binary.LittleEndian.Uint16(p)) }

func (rgb565Codec) decode(p []byte) Color { return Unpack565(binary.LittleEndian.Uint16(p)) }

func (rgb565Codec) encode(p []byte, c Color) { binary.LittleEndian.PutUint16(p, Pack565(c)) }

// bgrCodec handles 24-bit b, g, r pixels.
type bgrCodec struct{}

func (bgrCodec) bind(*Surface, *options) (bgrCodec, error) { return bgrCodec{}, nil }

func (bgrCodec) native(p []byte) uint32 {
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
}

func (bgrCodec) decode(p []byte) Color { return Color{R: p[2], G: p[1], B: p[0]} }

func (bgrCodec) encode(p []byte, c Color) { p[0], p[1], p[2] = c.B, c.G, c.R }

// bgrxCodec handles 32-bit b, g, r, pad pixels. The pad byte is ignored on
// read and written as 0xFF.
type bgrxCodec struct{}

func (bgrxCodec) bind(*Surface, *options) (bgrxCodec, error) { return bgrxCodec{}, nil }

func (bgrxCodec) native(p []byte) uint32 {
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
}

func (bgrxCodec) decode(p []byte) Color { return Color{R: p[2], G: p[1], B: p[0]} }

func (bgrxCodec) encode(p []byte, c Color) { p[0], p[1], p[2], p[3] = c.B, c.G, c.R, 0xFF }

// rawCodec is the unbound view used by Surface accessors.
type rawCodec struct {
	native func(p []byte) uint32
	decode func(p []byte, pal *Palette) Color
}

var codecs = [depthCount]rawCodec{
	Depth8: {
		native: indexedCodec{}.native,
		decode: func(p []byte, pal *Palette) Color { return pal[p[0]] },
	},
	Depth16: {native: rgb565Codec{}.native, decode: func(p []byte, _ *Palette) Color { return rgb565Codec{}.decode(p) }},
	Depth24: {native: bgrCodec{}.native, decode: func(p []byte, _ *Palette) Color { return bgrCodec{}.decode(p) }},
	Depth32: {native: bgrxCodec{}.native, decode: func(p []byte, _ *Palette) Color { return bgrxCodec{}.decode(p) }},
}

// Pack565 packs c into RGB565 by dropping the low bits of each channel.
func Pack565(c Color) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// Unpack565 expands an RGB565 value to 8 bits per channel. The high bits of
// each field are replicated into the low bits, so 0x1F maps to 0xFF rather
// than 0xF8.
func Unpack565(v uint16) Color {
	r := uint8(v>>11) & 0x1F
	g := uint8(v>>5) & 0x3F
	b := uint8(v) & 0x1F
	return Color{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
	}
}

// PackRGB returns c as 0xRRGGBB, the native value of a 24- or 32-bit pixel
// and the form their color keys take.
func PackRGB(c Color) uint32 {
	return uint32(c.B) | uint32(c.G)<<8 | uint32(c.R)<<16
}
