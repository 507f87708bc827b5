package asset

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/blit"
)

// TagSize is the size of the NUL-padded text tag that opens an indexed
// bitmap file.
const TagSize = 16

// maxPixels bounds the pixel count accepted from a file header.
const maxPixels = 1 << 28

// Indexed is an 8-bit bitmap in the legacy raw format: a 16-byte tag, a
// little-endian int32 width and height, then width*height palette indices
// in row-major order with no padding.
type Indexed struct {
	Tag    string
	Width  int
	Height int
	Pix    []uint8
}

// NewIndexed returns a zeroed bitmap tagged with its size, "WxH".
func NewIndexed(width, height int) (*Indexed, error) {
	if width <= 0 || height <= 0 || width*height > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d", blit.ErrInvalidDimensions, width, height)
	}
	return &Indexed{
		Tag:    strconv.Itoa(width) + "x" + strconv.Itoa(height),
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}, nil
}

// Surface returns an 8-bit surface that shares the bitmap's pixels.
// pal may be nil.
func (ix *Indexed) Surface(pal *blit.Palette) (*blit.Surface, error) {
	s, err := blit.FromRaw(ix.Pix, ix.Width, ix.Height, blit.Depth8, ix.Width)
	if err != nil {
		return nil, err
	}
	s.SetPalette(pal)
	return s, nil
}

// LoadIndexed reads an indexed bitmap from the given file path.
func LoadIndexed(path string) (*Indexed, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("asset: open bitmap: %w", err)
	}
	defer func() { _ = f.Close() }()

	ix, err := ReadIndexed(f)
	if err != nil {
		return nil, fmt.Errorf("asset: %s: %w", path, err)
	}
	blit.Logger().Info("asset: bitmap loaded",
		slog.String("file", path),
		slog.String("tag", ix.Tag),
		slog.Int("width", ix.Width),
		slog.Int("height", ix.Height))
	return ix, nil
}

// ReadIndexed decodes an indexed bitmap. The tag is read as Windows-1252
// text up to its first NUL byte.
func ReadIndexed(r io.Reader) (*Indexed, error) {
	var hdr [TagSize + 8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrTruncated, err)
	}

	raw := hdr[:TagSize]
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	tag, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: tag: %w", ErrBadHeader, err)
	}

	w := int(int32(binary.LittleEndian.Uint32(hdr[TagSize:])))
	h := int(int32(binary.LittleEndian.Uint32(hdr[TagSize+4:])))
	if w <= 0 || h <= 0 || w*h > maxPixels {
		return nil, fmt.Errorf("%w: size %dx%d", ErrBadHeader, w, h)
	}

	pix := make([]uint8, w*h)
	if _, err := io.ReadFull(r, pix); err != nil {
		return nil, fmt.Errorf("%w: pixels: %w", ErrTruncated, err)
	}
	return &Indexed{Tag: string(tag), Width: w, Height: h, Pix: pix}, nil
}

// WriteIndexed encodes ix. The tag is stored as Windows-1252, cut to 15
// bytes and NUL-padded to TagSize.
func WriteIndexed(w io.Writer, ix *Indexed) error {
	if ix.Width <= 0 || ix.Height <= 0 || len(ix.Pix) < ix.Width*ix.Height {
		return fmt.Errorf("%w: %dx%d with %d pixels", blit.ErrInvalidDimensions, ix.Width, ix.Height, len(ix.Pix))
	}
	tag, err := charmap.Windows1252.NewEncoder().String(ix.Tag)
	if err != nil {
		return fmt.Errorf("asset: encode tag %q: %w", ix.Tag, err)
	}

	var hdr [TagSize + 8]byte
	copy(hdr[:TagSize-1], tag)
	binary.LittleEndian.PutUint32(hdr[TagSize:], uint32(int32(ix.Width)))
	binary.LittleEndian.PutUint32(hdr[TagSize+4:], uint32(int32(ix.Height)))

	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("asset: write header: %w", err)
	}
	if _, err := w.Write(ix.Pix[:ix.Width*ix.Height]); err != nil {
		return fmt.Errorf("asset: write pixels: %w", err)
	}
	return nil
}

// SaveIndexed writes ix to the given file path, replacing any existing file.
func SaveIndexed(path string, ix *Indexed) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("asset: create bitmap: %w", err)
	}
	if err := WriteIndexed(f, ix); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
