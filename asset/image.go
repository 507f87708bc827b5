package asset

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	// Formats accepted by LoadImage. BMP is registered by bmp.go.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/blit"
)

// LoadImage decodes an image file of any registered format: PNG, JPEG, GIF,
// BMP, TIFF or WebP.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("asset: open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("asset: decode %s: %w", path, err)
	}
	blit.Logger().Debug("asset: image decoded", "file", path, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}

// Channels reports how many channels the image's pixel model stores:
// 1 for gray, 3 for opaque color and 4 for color with alpha. Models that
// always carry an alpha channel count it even when every pixel is opaque,
// except RGBA and RGBA64, which are what decoders produce for opaque data.
// A paletted image has 4 channels only if some palette entry is translucent.
func Channels(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.RGBA, *image.RGBA64, *image.YCbCr:
		return 3
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	default:
		return 4
	}
}

// Quantize maps every pixel of img to the palette entry at the smallest
// squared RGB distance, taking the lowest index on ties. The result is
// tagged "WxH".
func Quantize(img image.Image, pal *blit.Palette) (*Indexed, error) {
	if pal == nil {
		return nil, blit.ErrMissingPalette
	}
	b := img.Bounds()
	ix, err := NewIndexed(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	memo := make(map[blit.Color]uint8)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := rgbAt(img, x, y)
			idx, ok := memo[c]
			if !ok {
				idx = pal.NearestDistance(c)
				memo[c] = idx
			}
			ix.Pix[i] = idx
			i++
		}
	}
	return ix, nil
}

func rgbAt(img image.Image, x, y int) blit.Color {
	switch m := img.(type) {
	case *image.RGBA:
		p := m.Pix[m.PixOffset(x, y):]
		return blit.Color{R: p[0], G: p[1], B: p[2]}
	case *image.NRGBA:
		p := m.Pix[m.PixOffset(x, y):]
		return blit.Color{R: p[0], G: p[1], B: p[2]}
	default:
		return colorOf(img.At(x, y))
	}
}

// FromImage copies img into a new 24-bit surface.
func FromImage(img image.Image) (*blit.Surface, error) {
	b := img.Bounds()
	s, err := blit.NewSurface(b.Dx(), b.Dy(), blit.Depth24)
	if err != nil {
		return nil, err
	}
	for y := 0; y < s.Height(); y++ {
		row := s.RowBytes(y)
		for x := 0; x < s.Width(); x++ {
			c := rgbAt(img, b.Min.X+x, b.Min.Y+y)
			row[x*3], row[x*3+1], row[x*3+2] = c.B, c.G, c.R
		}
	}
	return s, nil
}

// ToImage converts a surface to a standard library image. An 8-bit surface
// with a palette becomes *image.Paletted; every other depth becomes an
// opaque *image.NRGBA.
func ToImage(s *blit.Surface) (image.Image, error) {
	w, h := s.Bounds()
	r := image.Rect(0, 0, w, h)

	if s.Depth() == blit.Depth8 {
		pal := s.Palette()
		if pal == nil {
			return nil, blit.ErrMissingPalette
		}
		cp := make(color.Palette, blit.PaletteSize)
		for i, c := range pal {
			cp[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
		}
		pm := image.NewPaletted(r, cp)
		for y := 0; y < h; y++ {
			copy(pm.Pix[y*pm.Stride:y*pm.Stride+w], s.RowBytes(y))
		}
		return pm, nil
	}

	img := image.NewNRGBA(r)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, err := s.RGB(x, y)
			if err != nil {
				return nil, err
			}
			off := img.PixOffset(x, y)
			img.Pix[off], img.Pix[off+1], img.Pix[off+2], img.Pix[off+3] = c.R, c.G, c.B, 0xff
		}
	}
	return img, nil
}

// EncodePNG writes s as a PNG image.
func EncodePNG(w io.Writer, s *blit.Surface) error {
	img, err := ToImage(s)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("asset: encode png: %w", err)
	}
	return nil
}

// SavePNG writes s to the given path as a PNG image.
func SavePNG(path string, s *blit.Surface) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("asset: create png: %w", err)
	}
	if err := EncodePNG(f, s); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Expand converts an indexed bitmap to a surface of the given depth through
// pal. Indices 0 and 255 always render black and white, whatever pal holds
// there. pal is not modified.
func Expand(ix *Indexed, pal *blit.Palette, depth blit.Depth) (*blit.Surface, error) {
	if pal == nil {
		return nil, blit.ErrMissingPalette
	}
	pinned := *pal
	pinned[0] = blit.Color{}
	pinned[blit.PaletteSize-1] = blit.Color{R: 0xff, G: 0xff, B: 0xff}

	src, err := ix.Surface(&pinned)
	if err != nil {
		return nil, err
	}
	dst, err := blit.NewSurface(ix.Width, ix.Height, depth)
	if err != nil {
		return nil, err
	}
	if depth == blit.Depth8 {
		dst.SetPalette(&pinned)
	}
	if err := blit.Blit(dst, 0, 0, src, src.Rect()); err != nil {
		return nil, fmt.Errorf("asset: expand to %s: %w", depth, err)
	}
	return dst, nil
}
