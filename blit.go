package blit

import (
	"fmt"
	"log/slog"
)

// Rect returns the full bounds of the surface as a Rect.
func (s *Surface) Rect() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// Blit copies the srcRect area of src to dst with its top-left corner at
// (dstX, dstY), converting pixels between the two depths.
//
// The area is clipped against both surfaces first; if nothing is left the
// call is a no-op and returns nil. Source and destination must not be
// overlapping regions of the same memory.
//
// An 8-bit destination receiving colors from another depth needs a palette
// to quantize into, and an 8-bit source feeding another depth needs one to
// look colors up in. Either case without a palette fails with
// ErrMissingPalette and leaves dst untouched.
func Blit(dst *Surface, dstX, dstY int, src *Surface, srcRect Rect, opts ...Option) error {
	if dst == nil || src == nil {
		return ErrNilSurface
	}
	k, err := kernelFor(src.depth, dst.depth)
	if err != nil {
		return err
	}

	r, ok := Clip(dstX, dstY, srcRect.X, srcRect.Y, srcRect.Width, srcRect.Height,
		src.width, src.height, dst.width, dst.height)
	if !ok {
		Logger().Debug("blit: clipped to nothing",
			slog.Int("dstX", dstX), slog.Int("dstY", dstY),
			slog.Int("w", srcRect.Width), slog.Int("h", srcRect.Height))
		return nil
	}

	o := buildOptions(opts)
	j := &job{
		dst: dst, src: src,
		dstX: r.DstX, dstY: r.DstY,
		srcX: r.SrcX, srcY: r.SrcY,
		width: r.Width, height: r.Height,
		opts: &o,
	}
	return k(j)
}

// BlitScaled copies the srcRect area of src into the dstRect area of dst,
// resampling with nearest-neighbor when the sizes differ. Equal sizes take
// the same path as Blit.
//
// srcRect is first cut down to the part inside src. Parts of dstRect outside
// dst are skipped without changing which source pixel the visible part
// samples. Color keys and depth conversion behave as in Blit.
//
// Resampled extents are limited to 32767 pixels per side;
// larger ones fail with ErrScaleRange.
func BlitScaled(dst *Surface, dstRect Rect, src *Surface, srcRect Rect, opts ...Option) error {
	if dst == nil || src == nil {
		return ErrNilSurface
	}
	if srcRect.Width == dstRect.Width && srcRect.Height == dstRect.Height {
		return Blit(dst, dstRect.X, dstRect.Y, src, srcRect, opts...)
	}
	k, err := kernelFor(src.depth, dst.depth)
	if err != nil {
		return err
	}

	j, ok, err := planScaled(dst, dstRect, src, srcRect)
	if err != nil {
		return err
	}
	if !ok {
		Logger().Debug("blit: scaled blit clipped to nothing",
			slog.Int("dstW", dstRect.Width), slog.Int("dstH", dstRect.Height),
			slog.Int("srcW", srcRect.Width), slog.Int("srcH", srcRect.Height))
		return nil
	}
	o := buildOptions(opts)
	j.opts = &o
	return k(j)
}

func kernelFor(src, dst Depth) (kernel, error) {
	if !src.IsValid() || !dst.IsValid() {
		return nil, fmt.Errorf("%w: %v to %v", ErrUnsupportedDepth, src, dst)
	}
	return kernels[src][dst], nil
}
