// Command blitdemo draws an indexed bitmap onto a screen surface of any depth
// and saves the result as a PNG image.
//
// Usage:
//
//	blitdemo --bitmap sprite.dat --palette game.pal --depth 16 --scale 640x400 --key 0
//
// A BMP bitmap carries its own palette, so --palette is optional for it.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/blit/internal/cli"
)

func main() {
	cmd, opts := newRootCmd()
	if err := cmd.Execute(); err != nil {
		cli.Report(os.Stderr, cmd.Name(), err, opts.Flags)
		os.Exit(1)
	}
}

type options struct {
	cli.Flags
	palette    string
	bitmap     string
	background string
	depth      int
	scale      string
	key        int
	out        string
}

func newRootCmd() (*cobra.Command, *options) {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "blitdemo",
		Short:         "render an indexed bitmap through the blitter",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli.Setup(cmd.ErrOrStderr(), opts.Flags)
			return render(opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.palette, "palette", "", "JASC-PAL palette `file`")
	f.StringVar(&opts.bitmap, "bitmap", "", "indexed bitmap `file` (.dat or .bmp)")
	f.StringVar(&opts.background, "background", "", "image `file` stretched behind the bitmap")
	f.IntVar(&opts.depth, "depth", 32, "screen depth in bits: 8, 16, 24 or 32")
	f.StringVar(&opts.scale, "scale", "", "draw the bitmap at `WxH` instead of its own size")
	f.IntVar(&opts.key, "key", -1, "palette index drawn as transparent, -1 for none")
	f.StringVarP(&opts.out, "out", "o", "blitdemo.png", "output PNG `file`")
	f.BoolVar(&opts.Debug, "debug", false, "print stack traces with errors")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "log progress to stderr")
	_ = cmd.MarkFlagRequired("bitmap")
	return cmd, opts
}
