package asset

import (
	"errors"
	"fmt"
)

// Errors for asset decoding. A *ParseError wraps one of these when the
// failure has a file position.
var (
	// ErrBadMagic is returned when a palette does not start with JASC-PAL.
	ErrBadMagic = errors.New("asset: invalid palette magic")

	// ErrBadVersion is returned when the palette version line is not 0100.
	ErrBadVersion = errors.New("asset: invalid palette version")

	// ErrBadCount is returned when the palette does not declare 256 colors.
	ErrBadCount = errors.New("asset: palette must declare 256 colors")

	// ErrBadEntry is returned for a palette line that is not "R G B" with
	// three decimal values in 0..255 separated by single spaces.
	ErrBadEntry = errors.New("asset: invalid palette entry")

	// ErrTruncated is returned when a file ends before all declared data.
	ErrTruncated = errors.New("asset: truncated data")

	// ErrBadHeader is returned when a bitmap header holds an impossible size.
	ErrBadHeader = errors.New("asset: invalid bitmap header")

	// ErrUnsupportedBMP is returned for BMP files that are not 8-bit indexed.
	ErrUnsupportedBMP = errors.New("asset: only 8-bit indexed BMP files are supported")

	// ErrChannels is returned when an image does not have three channels.
	ErrChannels = errors.New("asset: image must have 3 channels")
)

// ParseError records a failure at a line of a text asset.
type ParseError struct {
	File string // name given to the reader, usually a path
	Line int    // 1-based line number
	Err  error  // one of the sentinel errors above
	Text string // offending line, if any
}

func (e *ParseError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("%s:%d: %v: %q", e.File, e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
