package main

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/asset"
	"github.com/gogpu/blit/internal/cli"
)

func convert(input, output, palette string, opts *options) error {
	img, err := asset.LoadImage(input)
	if err != nil {
		return cli.Errorf("failed to load image: %w", err)
	}
	if n := asset.Channels(img); n != 3 {
		return cli.Errorf("%w, got %d", asset.ErrChannels, n)
	}

	pal, err := asset.LoadPalette(palette)
	if err != nil {
		return cli.Wrap(err)
	}

	if opts.resize != "" {
		w, h, err := cli.ParseSize(opts.resize)
		if err != nil {
			return err
		}
		img = resize(img, w, h)
	}

	ix, err := asset.Quantize(img, pal)
	if err != nil {
		return cli.Wrap(err)
	}
	if err := asset.SaveIndexed(output, ix); err != nil {
		return cli.Wrap(err)
	}
	blit.Logger().Info("palconv: written", "file", output, "tag", ix.Tag)

	if opts.preview != "" {
		s, err := asset.Expand(ix, pal, blit.Depth32)
		if err != nil {
			return cli.Wrap(err)
		}
		if err := asset.SavePNG(opts.preview, s); err != nil {
			return cli.Wrap(err)
		}
	}
	return nil
}

// resize scales img with nearest-neighbor sampling, which keeps colors
// that are already in the palette exact.
func resize(img image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
