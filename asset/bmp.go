package asset

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"

	"github.com/gogpu/blit"
)

// LoadBMP reads an 8-bit indexed BMP file from the given path.
func LoadBMP(path string) (*Indexed, *blit.Palette, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, nil, fmt.Errorf("asset: open bmp: %w", err)
	}
	defer func() { _ = f.Close() }()

	ix, pal, err := DecodeBMP(f)
	if err != nil {
		return nil, nil, fmt.Errorf("asset: %s: %w", path, err)
	}
	return ix, pal, nil
}

// DecodeBMP decodes an 8-bit indexed BMP into its indices and color table.
// Rows come out top-down whatever the file's row order. Palette entries the
// file does not define are black.
func DecodeBMP(r io.Reader) (*Indexed, *blit.Palette, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, nil, fmt.Errorf("asset: decode bmp: %w", err)
	}
	pm, ok := img.(*image.Paletted)
	if !ok {
		return nil, nil, fmt.Errorf("%w: got %T", ErrUnsupportedBMP, img)
	}
	return fromPaletted(pm)
}

func fromPaletted(pm *image.Paletted) (*Indexed, *blit.Palette, error) {
	b := pm.Bounds()
	ix, err := NewIndexed(b.Dx(), b.Dy())
	if err != nil {
		return nil, nil, err
	}
	for y := 0; y < ix.Height; y++ {
		off := pm.PixOffset(b.Min.X, b.Min.Y+y)
		copy(ix.Pix[y*ix.Width:(y+1)*ix.Width], pm.Pix[off:off+ix.Width])
	}

	var pal blit.Palette
	for i, c := range pm.Palette {
		if i >= blit.PaletteSize {
			break
		}
		pal[i] = colorOf(c)
	}
	return ix, &pal, nil
}

// colorOf drops alpha and reduces to 8 bits per channel.
func colorOf(c color.Color) blit.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return blit.Color{R: n.R, G: n.G, B: n.B}
}
