package blit

// PaletteSize is the number of entries in every palette.
const PaletteSize = 256

// Color is an 8-bit per channel RGB triple.
type Color struct {
	R, G, B uint8
}

// Palette is a 256-entry color table. Index 0 and 255 are conventionally
// black and white, but nothing here enforces that.
type Palette [PaletteSize]Color

// IndexRange is an inclusive range of palette indices.
type IndexRange struct {
	First, Last uint8
}

// Contains reports whether i lies in the range.
func (r IndexRange) Contains(i uint8) bool {
	return i >= r.First && i <= r.Last
}

// SystemReserved returns the index ranges a DirectDraw-era primary surface
// keeps for the operating system: 0-9 and 246-255. Pass them to
// WithReserved to stop quantization from landing on those slots.
func SystemReserved() []IndexRange {
	return []IndexRange{{First: 0, Last: 9}, {First: 246, Last: 255}}
}

// Nearest returns the index of the entry closest to c.
//
// An exact match wins first, and the lowest matching index is returned
// when the palette holds duplicates. Otherwise the entry with the smallest
// squared RGB distance is chosen, again preferring the lowest index on ties.
func (p *Palette) Nearest(c Color) uint8 {
	return p.NearestExcluding(c, nil)
}

// NearestExcluding is Nearest with the given index ranges removed from
// consideration. If every entry is reserved, index 0 is returned.
func (p *Palette) NearestExcluding(c Color, reserved []IndexRange) uint8 {
	for i := range p {
		if p[i] == c && !isReserved(uint8(i), reserved) {
			return uint8(i)
		}
	}

	best := 0
	bestDist := -1
	for i := range p {
		if isReserved(uint8(i), reserved) {
			continue
		}
		d := distance(p[i], c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

// NearestDistance returns the index with the smallest squared RGB distance
// in a single pass, keeping the first minimum. This is the matching rule of
// the PNG converter, which has no exact-match pass.
func (p *Palette) NearestDistance(c Color) uint8 {
	best := 0
	bestDist := distance(p[0], c)
	for i := 1; i < len(p); i++ {
		if d := distance(p[i], c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

// Index returns the lowest index holding exactly c.
func (p *Palette) Index(c Color) (uint8, bool) {
	for i := range p {
		if p[i] == c {
			return uint8(i), true
		}
	}
	return 0, false
}

func distance(a, b Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

func isReserved(i uint8, reserved []IndexRange) bool {
	for _, r := range reserved {
		if r.Contains(i) {
			return true
		}
	}
	return false
}
