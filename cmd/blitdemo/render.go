package main

import (
	"path/filepath"
	"strings"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/asset"
	"github.com/gogpu/blit/internal/cli"
)

func render(opts *options) error {
	depth, err := blit.DepthFromBits(opts.depth)
	if err != nil {
		return cli.Wrap(err)
	}
	if opts.key > 255 {
		return cli.Errorf("key %d is not a palette index", opts.key)
	}

	ix, pal, err := loadBitmap(opts.bitmap, opts.palette)
	if err != nil {
		return err
	}
	src, err := ix.Surface(pal)
	if err != nil {
		return cli.Wrap(err)
	}

	w, h := ix.Width, ix.Height
	if opts.scale != "" {
		if w, h, err = cli.ParseSize(opts.scale); err != nil {
			return err
		}
	}
	screen, err := blit.NewSurface(w, h, depth)
	if err != nil {
		return cli.Wrap(err)
	}
	if depth == blit.Depth8 {
		screen.SetPalette(pal)
	}

	if opts.background != "" {
		img, err := asset.LoadImage(opts.background)
		if err != nil {
			return cli.Wrap(err)
		}
		bg, err := asset.FromImage(img)
		if err != nil {
			return cli.Wrap(err)
		}
		if err := blit.BlitScaled(screen, screen.Rect(), bg, bg.Rect()); err != nil {
			return cli.Wrap(err)
		}
	}

	var bo []blit.Option
	if opts.key >= 0 {
		bo = append(bo, blit.WithColorKey(uint32(opts.key)))
	}
	if err := blit.BlitScaled(screen, screen.Rect(), src, src.Rect(), bo...); err != nil {
		return cli.Wrap(err)
	}
	blit.Logger().Info("blitdemo: rendered", "depth", depth.String(), "width", w, "height", h)

	return cli.Wrap(asset.SavePNG(opts.out, screen))
}

// loadBitmap reads a .bmp file with its own color table, or a raw indexed
// bitmap. An explicit palette file overrides the BMP color table.
func loadBitmap(bitmap, palette string) (*asset.Indexed, *blit.Palette, error) {
	var (
		ix  *asset.Indexed
		pal *blit.Palette
		err error
	)
	if strings.EqualFold(filepath.Ext(bitmap), ".bmp") {
		ix, pal, err = asset.LoadBMP(bitmap)
	} else {
		ix, err = asset.LoadIndexed(bitmap)
	}
	if err != nil {
		return nil, nil, cli.Wrap(err)
	}

	if palette != "" {
		if pal, err = asset.LoadPalette(palette); err != nil {
			return nil, nil, cli.Wrap(err)
		}
	}
	if pal == nil {
		return nil, nil, cli.Errorf("%s: %w: use --palette", bitmap, blit.ErrMissingPalette)
	}
	return ix, pal, nil
}
