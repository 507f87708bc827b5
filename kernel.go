package blit

// job is one clipped blit, ready for a kernel. For a 1:1 copy, source
// coordinates are srcX+x and srcY+y. For a scaled copy, cols and rows hold
// the absolute source coordinate sampled by each destination column and row.
type job struct {
	dst, src   *Surface
	dstX, dstY int
	width      int
	height     int
	srcX, srcY int
	cols, rows []int
	opts       *options
}

func (j *job) scaled() bool {
	return j.cols != nil
}

func (j *job) srcRow(y int) []byte {
	sy := j.srcY + y
	if j.rows != nil {
		sy = j.rows[y]
	}
	return j.src.data[sy*j.src.pitch:]
}

func (j *job) srcCol(x int) int {
	if j.cols != nil {
		return j.cols[x]
	}
	return j.srcX + x
}

func (j *job) dstRow(y int) []byte {
	return j.dst.data[(j.dstY+y)*j.dst.pitch:]
}

// kernel copies a job between one pair of depths.
type kernel func(j *job) error

// kernels is indexed by [source depth][destination depth].
var kernels = [depthCount][depthCount]kernel{
	Depth8: {
		Depth8:  copyIndexed,
		Depth16: convert[indexedCodec, rgb565Codec],
		Depth24: convert[indexedCodec, bgrCodec],
		Depth32: convert[indexedCodec, bgrxCodec],
	},
	Depth16: {
		Depth8:  convert[rgb565Codec, indexedCodec],
		Depth16: copyNative[rgb565Codec],
		Depth24: convert[rgb565Codec, bgrCodec],
		Depth32: convert[rgb565Codec, bgrxCodec],
	},
	Depth24: {
		Depth8:  convert[bgrCodec, indexedCodec],
		Depth16: convert[bgrCodec, rgb565Codec],
		Depth24: copyNative[bgrCodec],
		Depth32: convert[bgrCodec, bgrxCodec],
	},
	Depth32: {
		Depth8:  convert[bgrxCodec, indexedCodec],
		Depth16: convert[bgrxCodec, rgb565Codec],
		Depth24: convert[bgrxCodec, bgrCodec],
		Depth32: copyNative[bgrxCodec],
	},
}

// convert decodes each source pixel to RGB and encodes it at the
// destination depth.
func convert[S pixelCodec[S], D pixelCodec[D]](j *job) error {
	var dec S
	dec, err := dec.bind(j.src, j.opts)
	if err != nil {
		return err
	}
	var enc D
	enc, err = enc.bind(j.dst, j.opts)
	if err != nil {
		return err
	}

	sbpp := j.src.depth.BytesPerPixel()
	dbpp := j.dst.depth.BytesPerPixel()
	hasKey, key := j.opts.hasKey, j.opts.key

	for y := range j.height {
		srow := j.srcRow(y)
		drow := j.dstRow(y)[j.dstX*dbpp:]
		for x := range j.width {
			sp := srow[j.srcCol(x)*sbpp:]
			if hasKey && dec.native(sp) == key {
				continue
			}
			enc.encode(drow[x*dbpp:], dec.decode(sp))
		}
	}
	return nil
}

// copyNative copies pixels between surfaces of the same depth without
// touching their values.
func copyNative[C pixelCodec[C]](j *job) error {
	var c C
	bpp := j.src.depth.BytesPerPixel()

	if !j.opts.hasKey && !j.scaled() {
		bulkCopy(j, bpp)
		return nil
	}

	hasKey, key := j.opts.hasKey, j.opts.key
	for y := range j.height {
		srow := j.srcRow(y)
		drow := j.dstRow(y)[j.dstX*bpp:]
		for x := range j.width {
			sp := srow[j.srcCol(x)*bpp:]
			if hasKey && c.native(sp) == key {
				continue
			}
			copy(drow[x*bpp:x*bpp+bpp], sp[:bpp])
		}
	}
	return nil
}

// bulkCopy is the keyless 1:1 same-depth path. When both surfaces are
// tightly packed and the job spans them completely, the whole buffer moves
// in one copy; otherwise each row is copied in one piece.
func bulkCopy(j *job, bpp int) {
	n := j.width * bpp
	if j.src.pitch == n && j.dst.pitch == n &&
		j.srcX == 0 && j.dstX == 0 && j.src.width == j.width && j.dst.width == j.width {
		copy(j.dst.data[j.dstY*n:(j.dstY+j.height)*n], j.src.data[j.srcY*n:(j.srcY+j.height)*n])
		return
	}
	for y := range j.height {
		srow := j.srcRow(y)[j.srcX*bpp:]
		copy(j.dstRow(y)[j.dstX*bpp:j.dstX*bpp+n], srow[:n])
	}
}

// copyIndexed handles 8-bit to 8-bit. Indices are copied verbatim when the
// surfaces share a palette, or when either has none; otherwise each source
// color is quantized into the destination palette.
func copyIndexed(j *job) error {
	sp, dp := j.src.palette, j.dst.palette
	if sp == nil || dp == nil || sp == dp || *sp == *dp {
		return copyNative[indexedCodec](j)
	}
	return convert[indexedCodec, indexedCodec](j)
}
