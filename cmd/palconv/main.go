// Command palconv converts an RGB image to the indexed bitmap format using a
// JASC-PAL palette. Each pixel becomes the index of the nearest palette color.
//
// Usage:
//
//	palconv [flags] <input> <output> <palette>
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
	resize  string
	preview string
}

func newRootCmd() (*cobra.Command, *options) {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "palconv <input> <output> <palette>",
		Short: "convert an image to palette indices",
		Long: `palconv reads an RGB image (PNG, JPEG, GIF, BMP, TIFF or WebP), maps each
pixel to the nearest color of a 256-entry JASC-PAL palette and writes the
result as a raw indexed bitmap.`,
		Args:          cobra.MinimumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli.Setup(cmd.ErrOrStderr(), opts.Flags)
			return convert(args[0], args[1], args[2], opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.resize, "resize", "", "scale the input to `WxH` before quantizing")
	f.StringVar(&opts.preview, "preview", "", "also write a PNG preview of the result to `file`")
	f.BoolVar(&opts.Debug, "debug", false, "print stack traces with errors")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "log progress to stderr")
	return cmd, opts
}
