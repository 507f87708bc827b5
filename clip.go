package blit

// Rect is a rectangle in pixel coordinates. It may extend past a surface,
// or start at negative coordinates, before clipping.
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the largest rectangle contained in both r and s.
// The result is the zero Rect if they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x0, y0 := max(r.X, s.X), max(r.Y, s.Y)
	x1 := min(r.X+r.Width, s.X+s.Width)
	y1 := min(r.Y+r.Height, s.Y+s.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Region is a clipped copy: a source origin, a destination origin and an
// extent shared by both, guaranteed to lie inside both surfaces.
type Region struct {
	SrcX, SrcY    int
	DstX, DstY    int
	Width, Height int
}

// Clip fits a copy of w×h pixels from (srcX, srcY) to (dstX, dstY) inside a
// source of srcW×srcH and a destination of dstW×dstH pixels. Source and
// destination origins always move together, so the clipped region copies
// the same pixels to the same places as the unclipped one would have.
//
// The second result is false when nothing is left to copy.
func Clip(dstX, dstY, srcX, srcY, w, h, srcW, srcH, dstW, dstH int) (Region, bool) {
	// Destination left/top. Expressed on the destination, this also moves
	// the source left/top edge.
	if dstX < 0 {
		srcX -= dstX
		w += dstX
		dstX = 0
	}
	if dstY < 0 {
		srcY -= dstY
		h += dstY
		dstY = 0
	}

	// Source left/top.
	if srcX < 0 {
		dstX -= srcX
		w += srcX
		srcX = 0
	}
	if srcY < 0 {
		dstY -= srcY
		h += srcY
		srcY = 0
	}

	// Right/bottom against the destination, then the source. Extents may
	// already be negative here; min keeps them that way.
	w = min(w, dstW-dstX)
	h = min(h, dstH-dstY)
	w = min(w, srcW-srcX)
	h = min(h, srcH-srcY)

	if w <= 0 || h <= 0 {
		return Region{}, false
	}
	return Region{SrcX: srcX, SrcY: srcY, DstX: dstX, DstY: dstY, Width: w, Height: h}, true
}
