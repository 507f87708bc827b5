package blit

import "fmt"

// Depth is the pixel depth of a Surface. Only the four depths below are
// supported; every kernel is selected from a pair of them.
type Depth uint8

const (
	// Depth8 is 8-bit palette-indexed (1 byte per pixel).
	Depth8 Depth = iota

	// Depth16 is 16-bit RGB565, stored little-endian (2 bytes per pixel).
	Depth16

	// Depth24 is 24-bit RGB stored as bytes b, g, r (3 bytes per pixel).
	Depth24

	// Depth32 is 32-bit RGB stored as bytes b, g, r, pad (4 bytes per pixel).
	Depth32

	// depthCount is the number of depths (for internal use).
	depthCount
)

// DepthInfo contains metadata about a pixel depth.
type DepthInfo struct {
	// Bits is the nominal bit depth (8, 16, 24 or 32).
	Bits int

	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Indexed reports whether pixels are palette indices.
	Indexed bool
}

var depthInfoTable = [depthCount]DepthInfo{
	Depth8:  {Bits: 8, BytesPerPixel: 1, Indexed: true},
	Depth16: {Bits: 16, BytesPerPixel: 2},
	Depth24: {Bits: 24, BytesPerPixel: 3},
	Depth32: {Bits: 32, BytesPerPixel: 4},
}

// DepthFromBits maps a bit count to a Depth.
// Returns ErrUnsupportedDepth for anything other than 8, 16, 24 or 32.
func DepthFromBits(bits int) (Depth, error) {
	switch bits {
	case 8:
		return Depth8, nil
	case 16:
		return Depth16, nil
	case 24:
		return Depth24, nil
	case 32:
		return Depth32, nil
	default:
		return 0, fmt.Errorf("%w: %d bits", ErrUnsupportedDepth, bits)
	}
}

// Info returns the DepthInfo for this depth.
func (d Depth) Info() DepthInfo {
	if d >= depthCount {
		return DepthInfo{}
	}
	return depthInfoTable[d]
}

// Bits returns the nominal bit depth.
func (d Depth) Bits() int {
	return d.Info().Bits
}

// BytesPerPixel returns the number of bytes per pixel.
func (d Depth) BytesPerPixel() int {
	return d.Info().BytesPerPixel
}

// IsValid returns true if d is one of the supported depths.
func (d Depth) IsValid() bool {
	return d < depthCount
}

// RowBytes returns the number of pixel bytes in a row of the given width.
func (d Depth) RowBytes(width int) int {
	return width * d.BytesPerPixel()
}

// String returns a string representation of the depth.
func (d Depth) String() string {
	switch d {
	case Depth8:
		return "8bpp"
	case Depth16:
		return "16bpp"
	case Depth24:
		return "24bpp"
	case Depth32:
		return "32bpp"
	default:
		return "Unknown"
	}
}
