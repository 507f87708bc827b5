package blit

// Option configures a single Blit or BlitScaled call.
//
// Example:
//
//	// Copy a sprite, skipping palette index 3
//	err := blit.Blit(screen, 10, 20, sprite, sprite.Rect(), blit.WithColorKey(3))
type Option func(*options)

// options holds the per-call configuration. Nothing in it outlives the call.
type options struct {
	hasKey   bool
	key      uint32
	reserved []IndexRange
}

// WithColorKey marks source pixels equal to key as transparent: the
// destination pixel is left untouched.
//
// The key is in the source's native representation: a palette index for
// 8-bit sources, an RGB565 word for 16-bit sources (see Pack565), and
// 0xRRGGBB for 24- and 32-bit sources (see PackRGB). The pad byte of 32-bit
// pixels takes no part in the comparison.
func WithColorKey(key uint32) Option {
	return func(o *options) {
		o.hasKey = true
		o.key = key
	}
}

// WithReserved excludes palette index ranges from quantization when the
// destination is 8-bit. Indices copied verbatim between surfaces sharing a
// palette are not affected.
func WithReserved(ranges ...IndexRange) Option {
	return func(o *options) {
		o.reserved = append(o.reserved, ranges...)
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
