package cli

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/blit"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		w, h int
		ok   bool
	}{
		{"320x200", 320, 200, true},
		{"1X1", 1, 1, true},
		{"0x10", 0, 0, false},
		{"10x-1", 0, 0, false},
		{"10", 0, 0, false},
		{"ax2", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := ParseSize(tt.in)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrBadSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)
		})
	}
}

func TestReport(t *testing.T) {
	err := Errorf("load: %w", io.ErrUnexpectedEOF)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	var buf bytes.Buffer
	Report(&buf, "tool", err, Flags{})
	assert.Equal(t, "tool: load: unexpected EOF\n", buf.String())

	buf.Reset()
	Report(&buf, "tool", err, Flags{Debug: true})
	assert.Contains(t, buf.String(), "tool: load: unexpected EOF\n")
	assert.Contains(t, buf.String(), "cli_test.go")

	buf.Reset()
	Report(&buf, "tool", errors.New("plain"), Flags{Debug: true})
	assert.Equal(t, "tool: plain\n", buf.String())
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil))

	base := errors.New("base")
	w := Wrap(base)
	assert.ErrorIs(t, w, base)
	assert.Same(t, w, Wrap(w))
}

func TestSetup(t *testing.T) {
	defer blit.SetLogger(nil)

	var buf bytes.Buffer
	Setup(&buf, Flags{Verbose: true})
	blit.Logger().Debug("hello")
	assert.Contains(t, buf.String(), "hello")

	buf.Reset()
	Setup(&buf, Flags{})
	blit.Logger().Debug("quiet")
	assert.Empty(t, buf.String())
}
