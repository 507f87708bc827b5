package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/asset"
)

func testPalette() *blit.Palette {
	var p blit.Palette
	p[1] = blit.Color{R: 255}
	p[2] = blit.Color{G: 255}
	p[3] = blit.Color{B: 255}
	return &p
}

// fixture writes a 2x2 bitmap [1 2; 3 0] with its palette.
func fixture(t *testing.T) (dir, bitmap, palette string) {
	t.Helper()
	dir = t.TempDir()

	ix, err := asset.NewIndexed(2, 2)
	require.NoError(t, err)
	copy(ix.Pix, []uint8{1, 2, 3, 0})
	bitmap = filepath.Join(dir, "sprite.dat")
	require.NoError(t, asset.SaveIndexed(bitmap, ix))

	var buf bytes.Buffer
	require.NoError(t, asset.WritePalette(&buf, testPalette()))
	palette = filepath.Join(dir, "game.pal")
	require.NoError(t, os.WriteFile(palette, buf.Bytes(), 0o600))
	return dir, bitmap, palette
}

func execute(args ...string) error {
	cmd, _ := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return cmd.Execute()
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func rgb(c color.Color) [3]uint32 {
	r, g, b, _ := c.RGBA()
	return [3]uint32{r >> 8, g >> 8, b >> 8}
}

func TestRenderDepths(t *testing.T) {
	dir, bitmap, palette := fixture(t)
	for _, depth := range []string{"8", "16", "24", "32"} {
		t.Run(depth, func(t *testing.T) {
			out := filepath.Join(dir, "out"+depth+".png")
			require.NoError(t, execute("--bitmap", bitmap, "--palette", palette, "--depth", depth, "--out", out))

			img := readPNG(t, out)
			assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
			assert.Equal(t, [3]uint32{255, 0, 0}, rgb(img.At(0, 0)))
			assert.Equal(t, [3]uint32{0, 255, 0}, rgb(img.At(1, 0)))
			assert.Equal(t, [3]uint32{0, 0, 255}, rgb(img.At(0, 1)))
		})
	}
}

func TestRenderScaledWithKey(t *testing.T) {
	dir, bitmap, palette := fixture(t)

	bgPath := filepath.Join(dir, "bg.png")
	bg := image.NewRGBA(image.Rect(0, 0, 1, 1))
	bg.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, bg))
	require.NoError(t, os.WriteFile(bgPath, buf.Bytes(), 0o600))

	out := filepath.Join(dir, "scaled.png")
	require.NoError(t, execute("--bitmap", bitmap, "--palette", palette, "--scale", "4x4",
		"--key", "0", "--background", bgPath, "--out", out))

	img := readPNG(t, out)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
	assert.Equal(t, [3]uint32{255, 0, 0}, rgb(img.At(1, 1)))
	assert.Equal(t, [3]uint32{0, 255, 0}, rgb(img.At(3, 0)))
	assert.Equal(t, [3]uint32{0, 0, 255}, rgb(img.At(0, 3)))
	// Index 0 is keyed out, so the background shows through.
	assert.Equal(t, [3]uint32{10, 20, 30}, rgb(img.At(3, 3)))
}

func TestRenderBMP(t *testing.T) {
	dir := t.TempDir()
	cp := make(color.Palette, 256)
	for i := range cp {
		cp[i] = color.RGBA{A: 255}
	}
	cp[5] = color.RGBA{R: 40, G: 50, B: 60, A: 255}
	src := image.NewPaletted(image.Rect(0, 0, 1, 1), cp)
	src.Pix[0] = 5

	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, src))
	bitmap := filepath.Join(dir, "sprite.BMP")
	require.NoError(t, os.WriteFile(bitmap, buf.Bytes(), 0o600))

	out := filepath.Join(dir, "out.png")
	require.NoError(t, execute("--bitmap", bitmap, "--depth", "24", "--out", out))
	assert.Equal(t, [3]uint32{40, 50, 60}, rgb(readPNG(t, out).At(0, 0)))
}

func TestRenderErrors(t *testing.T) {
	dir, bitmap, palette := fixture(t)
	out := filepath.Join(dir, "out.png")

	tests := []struct {
		name string
		args []string
		want error
		text string
	}{
		{"no bitmap", nil, nil, "bitmap"},
		{"bad depth", []string{"--bitmap", bitmap, "--palette", palette, "--depth", "15", "--out", out}, blit.ErrUnsupportedDepth, ""},
		{"no palette", []string{"--bitmap", bitmap, "--out", out}, blit.ErrMissingPalette, ""},
		{"bad key", []string{"--bitmap", bitmap, "--palette", palette, "--key", "300", "--out", out}, nil, "not a palette index"},
		{"bad scale", []string{"--bitmap", bitmap, "--palette", palette, "--scale", "0x3", "--out", out}, nil, "WxH"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(tt.args...)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			if tt.text != "" {
				assert.Contains(t, err.Error(), tt.text)
			}
		})
	}
}
