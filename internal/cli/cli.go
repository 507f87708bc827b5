// Package cli holds the pieces shared by the command-line tools: flag
// parsing helpers, logger setup and error reporting.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-errors/errors"

	"github.com/gogpu/blit"
)

// ErrBadSize is returned by ParseSize for anything other than "WxH" with
// two positive integers.
var ErrBadSize = errors.New("size must be WxH with positive integers")

// Flags are the options every tool accepts.
type Flags struct {
	Debug   bool
	Verbose bool
}

// Wrap attaches a stack trace to err, keeping an existing one.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, 1)
}

// Errorf formats a new error with a stack trace. %w verbs keep their
// error in the chain.
func Errorf(format string, args ...any) error {
	return errors.Wrap(fmt.Errorf(format, args...), 1)
}

// Setup routes blit logs to w. Without Verbose logging stays disabled.
func Setup(w io.Writer, f Flags) {
	if !f.Verbose {
		blit.SetLogger(nil)
		return
	}
	blit.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

// Report writes err to w as "prog: message". With Debug the stack trace
// recorded by Wrap or Errorf follows.
func Report(w io.Writer, prog string, err error, f Flags) {
	_, _ = fmt.Fprintf(w, "%s: %v\n", prog, err)
	var se *errors.Error
	if f.Debug && errors.As(err, &se) {
		_, _ = io.WriteString(w, string(se.Stack()))
	}
}

// ParseSize parses "WxH".
func ParseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, Errorf("%w: %q", ErrBadSize, s)
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, Errorf("%w: %q", ErrBadSize, s)
	}
	return w, h, nil
}
