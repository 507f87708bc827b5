// Package asset reads and writes the file formats around the blitter:
// JASC-PAL palettes, the legacy indexed bitmap format, 8-bit BMP files, and
// standard library images.
package asset

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/blit"
)

const (
	palMagic   = "JASC-PAL"
	palVersion = "0100"
	palCount   = "256"

	// maxLine matches the line buffer of the tools that write these files.
	maxLine = 512
)

// LoadPalette reads a JASC-PAL palette from the given file path.
func LoadPalette(path string) (*blit.Palette, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("asset: open palette: %w", err)
	}
	defer func() { _ = f.Close() }()

	p, err := ReadPalette(f, path)
	if err != nil {
		return nil, err
	}
	blit.Logger().Info("asset: palette loaded", slog.String("file", path))
	return p, nil
}

// ReadPalette parses a JASC-PAL palette. The format is three header lines,
// "JASC-PAL", "0100" and "256", followed by 256 lines of "R G B". Lines
// after the 256th entry are ignored. Line endings may be LF or CRLF.
//
// name is only used in error messages. Every failure is a *ParseError.
func ReadPalette(r io.Reader, name string) (*blit.Palette, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, maxLine), maxLine)

	line := 0
	next := func() (string, error) {
		line++
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", &ParseError{File: name, Line: line, Err: fmt.Errorf("%w: %w", ErrTruncated, err)}
			}
			return "", &ParseError{File: name, Line: line, Err: ErrTruncated}
		}
		return strings.TrimRight(sc.Text(), "\r"), nil
	}

	header := []struct {
		want string
		err  error
	}{
		{palMagic, ErrBadMagic},
		{palVersion, ErrBadVersion},
		{palCount, ErrBadCount},
	}
	for _, h := range header {
		s, err := next()
		if err != nil {
			return nil, err
		}
		if s != h.want {
			return nil, &ParseError{File: name, Line: line, Err: h.err, Text: s}
		}
	}

	var p blit.Palette
	for i := range p {
		s, err := next()
		if err != nil {
			return nil, err
		}
		c, ok := parseEntry(s)
		if !ok {
			return nil, &ParseError{File: name, Line: line, Err: ErrBadEntry, Text: s}
		}
		p[i] = c
	}
	return &p, nil
}

func parseEntry(s string) (blit.Color, bool) {
	fields := strings.Split(s, " ")
	if len(fields) != 3 {
		return blit.Color{}, false
	}
	var ch [3]uint8
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return blit.Color{}, false
		}
		ch[i] = uint8(v)
	}
	return blit.Color{R: ch[0], G: ch[1], B: ch[2]}, true
}

// WritePalette writes p in JASC-PAL format with CRLF line endings.
func WritePalette(w io.Writer, p *blit.Palette) error {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "%s\r\n%s\r\n%s\r\n", palMagic, palVersion, palCount)
	for _, c := range p {
		_, _ = fmt.Fprintf(bw, "%d %d %d\r\n", c.R, c.G, c.B)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("asset: write palette: %w", err)
	}
	return nil
}
