package blit

import "errors"

// Common errors for surface and blit operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("blit: invalid dimensions")

	// ErrUnsupportedDepth is returned for any depth other than 8, 16, 24 or 32.
	ErrUnsupportedDepth = errors.New("blit: unsupported pixel depth")

	// ErrInvalidPitch is returned when pitch is less than the row byte count.
	ErrInvalidPitch = errors.New("blit: pitch too small for width")

	// ErrDataTooSmall is returned when a buffer is shorter than pitch × height.
	ErrDataTooSmall = errors.New("blit: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside the surface.
	ErrOutOfBounds = errors.New("blit: coordinates out of bounds")

	// ErrMissingPalette is returned when an 8-bit surface has no palette but
	// the blit needs to translate between indices and colors.
	ErrMissingPalette = errors.New("blit: 8-bit surface has no palette")

	// ErrNilSurface is returned when a source or destination is nil.
	ErrNilSurface = errors.New("blit: nil surface")

	// ErrScaleRange is returned by BlitScaled when a source or destination
	// extent is larger than the 16.16 sampling ratios can address.
	ErrScaleRange = errors.New("blit: scaled extent out of range")
)
