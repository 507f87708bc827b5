package blit

import "encoding/binary"

// Surface is a rectangular pixel buffer of one of the supported depths.
//
// Row y occupies bytes [y*pitch, y*pitch + width*bytesPerPixel) of the
// buffer. Pitch may include padding. An 8-bit surface may carry a Palette
// that gives its indices a color; the palette is borrowed, not copied.
//
// A Surface performs no locking. Callers that share one between goroutines
// must synchronize access themselves.
type Surface struct {
	data    []byte
	width   int
	height  int
	pitch   int
	depth   Depth
	palette *Palette
}

// NewSurface allocates a zeroed surface with a tightly packed pitch.
func NewSurface(width, height int, depth Depth) (*Surface, error) {
	if !depth.IsValid() {
		return nil, ErrUnsupportedDepth
	}
	return NewSurfaceWithPitch(width, height, depth, depth.RowBytes(width))
}

// NewSurfaceWithPitch allocates a zeroed surface with a custom pitch.
// Pitch must be at least depth.RowBytes(width).
func NewSurfaceWithPitch(width, height int, depth Depth, pitch int) (*Surface, error) {
	if err := validate(width, height, depth, pitch); err != nil {
		return nil, err
	}
	return &Surface{
		data:   make([]byte, pitch*height),
		width:  width,
		height: height,
		pitch:  pitch,
		depth:  depth,
	}, nil
}

// FromRaw wraps existing pixel memory without copying, such as a locked
// frame buffer handed over by a windowing layer. The caller must keep data
// valid and writable for as long as the Surface is used.
func FromRaw(data []byte, width, height int, depth Depth, pitch int) (*Surface, error) {
	if err := validate(width, height, depth, pitch); err != nil {
		return nil, err
	}
	if len(data) < pitch*height {
		return nil, ErrDataTooSmall
	}
	return &Surface{
		data:   data[:pitch*height],
		width:  width,
		height: height,
		pitch:  pitch,
		depth:  depth,
	}, nil
}

func validate(width, height int, depth Depth, pitch int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if !depth.IsValid() {
		return ErrUnsupportedDepth
	}
	if pitch < depth.RowBytes(width) {
		return ErrInvalidPitch
	}
	return nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Pitch returns the number of bytes per row, including padding.
func (s *Surface) Pitch() int {
	return s.pitch
}

// Depth returns the pixel depth.
func (s *Surface) Depth() Depth {
	return s.depth
}

// Bounds returns the surface dimensions as (width, height).
func (s *Surface) Bounds() (int, int) {
	return s.width, s.height
}

// Data returns the raw pixel buffer.
func (s *Surface) Data() []byte {
	return s.data
}

// Palette returns the palette of an 8-bit surface, or nil.
func (s *Surface) Palette() *Palette {
	return s.palette
}

// SetPalette attaches a palette. The palette must not be modified while a
// blit that reads it is running.
func (s *Surface) SetPalette(p *Palette) {
	s.palette = p
}

// RowBytes returns the pixel bytes of row y, excluding padding.
// Returns nil if y is out of bounds.
func (s *Surface) RowBytes(y int) []byte {
	if y < 0 || y >= s.height {
		return nil
	}
	start := y * s.pitch
	return s.data[start : start+s.depth.RowBytes(s.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in the buffer.
// Returns -1 if coordinates are out of bounds.
func (s *Surface) PixelOffset(x, y int) int {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return -1
	}
	return y*s.pitch + x*s.depth.BytesPerPixel()
}

// Pixel returns the native value at (x, y): the index for 8-bit, the packed
// RGB565 word for 16-bit, and 0xRRGGBB for 24- and 32-bit surfaces.
func (s *Surface) Pixel(x, y int) (uint32, error) {
	off := s.PixelOffset(x, y)
	if off < 0 {
		return 0, ErrOutOfBounds
	}
	return codecs[s.depth].native(s.data[off:]), nil
}

// SetPixel stores a native value at (x, y). The pad byte of a 32-bit pixel
// is set to 0xFF.
func (s *Surface) SetPixel(x, y int, v uint32) error {
	off := s.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	putNative(s.depth, s.data[off:], v)
	return nil
}

// RGB returns the color at (x, y). For 8-bit surfaces the palette is used;
// without a palette the result is ErrMissingPalette.
func (s *Surface) RGB(x, y int) (Color, error) {
	off := s.PixelOffset(x, y)
	if off < 0 {
		return Color{}, ErrOutOfBounds
	}
	if s.depth == Depth8 {
		if s.palette == nil {
			return Color{}, ErrMissingPalette
		}
		return s.palette[s.data[off]], nil
	}
	return codecs[s.depth].decode(s.data[off:], nil), nil
}

// Fill sets every pixel to the native value v. Padding bytes are untouched.
func (s *Surface) Fill(v uint32) {
	bpp := s.depth.BytesPerPixel()
	for y := range s.height {
		row := s.RowBytes(y)
		for x := 0; x < len(row); x += bpp {
			putNative(s.depth, row[x:], v)
		}
	}
}

// Clone returns a deep copy of the pixel buffer. The palette pointer is
// shared.
func (s *Surface) Clone() *Surface {
	data := make([]byte, len(s.data))
	copy(data, s.data)
	return &Surface{
		data:    data,
		width:   s.width,
		height:  s.height,
		pitch:   s.pitch,
		depth:   s.depth,
		palette: s.palette,
	}
}

// SubSurface returns a view of the rectangle r sharing the same memory.
// Returns nil if r is empty or not fully inside the surface.
func (s *Surface) SubSurface(r Rect) *Surface {
	if r.X < 0 || r.Y < 0 || r.Width <= 0 || r.Height <= 0 {
		return nil
	}
	if r.X+r.Width > s.width || r.Y+r.Height > s.height {
		return nil
	}
	bpp := s.depth.BytesPerPixel()
	start := r.Y*s.pitch + r.X*bpp
	end := (r.Y+r.Height-1)*s.pitch + (r.X+r.Width)*bpp
	return &Surface{
		// Capacity is clipped so an overlong pitch cannot reach past the view.
		data:    s.data[start:end:end],
		width:   r.Width,
		height:  r.Height,
		pitch:   s.pitch,
		depth:   s.depth,
		palette: s.palette,
	}
}

func putNative(d Depth, p []byte, v uint32) {
	switch d {
	case Depth8:
		p[0] = byte(v)
	case Depth16:
		binary.LittleEndian.PutUint16(p, uint16(v))
	case Depth24:
		p[0], p[1], p[2] = byte(v), byte(v>>8), byte(v>>16)
	case Depth32:
		p[0], p[1], p[2], p[3] = byte(v), byte(v>>8), byte(v>>16), 0xFF
	}
}
