package blit

import (
	"fmt"

	"github.com/gogpu/blit/internal/fixed"
)

// ratio returns src/dst in 16.16, or 0 when dst is 1 so that a single
// destination pixel always samples the first source pixel.
func ratio(src, dst int) fixed.Fixed {
	if dst <= 1 {
		return 0
	}
	return fixed.FromInt(src).Div(fixed.FromInt(dst))
}

// planScaled builds the column and row sampling tables for a scaled blit.
//
// Row dy samples source row trunc(dy × yRatio). Column dx samples an
// accumulator that starts at 0 and grows by xRatio per column. Both are
// clamped to the source rectangle.
//
// Extents above fixed.MaxInt fail with ErrScaleRange. Within that bound
// every offset and product below stays inside 16.16.
func planScaled(dst *Surface, dstRect Rect, src *Surface, srcRect Rect) (*job, bool, error) {
	sr := srcRect.Intersect(src.Rect())
	if sr.Empty() || dstRect.Empty() {
		return nil, false, nil
	}
	if sr.Width > fixed.MaxInt || sr.Height > fixed.MaxInt ||
		dstRect.Width > fixed.MaxInt || dstRect.Height > fixed.MaxInt {
		return nil, false, fmt.Errorf("%w: %dx%d to %dx%d", ErrScaleRange,
			sr.Width, sr.Height, dstRect.Width, dstRect.Height)
	}
	vis := dstRect.Intersect(dst.Rect())
	if vis.Empty() {
		return nil, false, nil
	}

	xRatio := ratio(sr.Width, dstRect.Width)
	yRatio := ratio(sr.Height, dstRect.Height)

	// Columns hidden on the left still advance the accumulator.
	skipX := vis.X - dstRect.X
	acc := fixed.FromInt(skipX).Mul(xRatio)
	cols := make([]int, vis.Width)
	for dx := range cols {
		cols[dx] = sr.X + clampIndex(acc.Int(), sr.Width)
		acc = acc.Add(xRatio)
	}

	skipY := vis.Y - dstRect.Y
	rows := make([]int, vis.Height)
	for i := range rows {
		dy := skipY + i
		rows[i] = sr.Y + clampIndex(fixed.FromInt(dy).Mul(yRatio).Int(), sr.Height)
	}

	return &job{
		dst: dst, src: src,
		dstX: vis.X, dstY: vis.Y,
		width: vis.Width, height: vis.Height,
		cols: cols, rows: rows,
	}, true, nil
}

// clampIndex limits i to [0, n).
func clampIndex(i, n int) int {
	return max(0, min(i, n-1))
}
