package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/go-imsto/sliceresize/codec"
	"github.com/go-imsto/sliceresize/config"
	"github.com/go-imsto/sliceresize/walker"
)

var cmdResize = &Command{
	UsageLine: "resize [-engine imaging] [-naming hyphen] [-quality 90] [-workers 1] [dir] [width] [height] [suffix]",
	Short:     "resize images matching a suffix, next to the originals",
	Long: `
resize walks dir (default .) and writes a width x height (default 1200x800)
JPEG copy of every file whose name ends with suffix (default slice.jpg,
case-insensitive) into the same directory, named {base}-{width}x{height}.jpg.
Images are scaled to cover the box and cropped around the center.
Defaults come from SLICERESIZE_* environment variables.
`,
}

var (
	rEngine  = cmdResize.Flag.String("engine", config.Current.Engine, "codec engine, see 'sliceresize engines'")
	rNaming  = cmdResize.Flag.String("naming", config.Current.Naming, "output naming: hyphen ({base}-WxH.jpg) or underscore ({base}_WxH.jpg)")
	rQuality = cmdResize.Flag.Int("quality", config.Current.Quality, "JPEG quality (1-100)")
	rWorkers = cmdResize.Flag.Int("workers", config.Current.Workers, "conversions in parallel, 1 is sequential")
)

func init() {
	cmdResize.Run = runResize
}

// parseDimension falls back to dft when s is empty, not a number or not positive
func parseDimension(s string, dft uint) uint {
	if v, err := strconv.ParseUint(s, 10, 32); err == nil && v > 0 {
		return uint(v)
	}
	return dft
}

func resizeArgs(args []string) (root string, size walker.Size, suffix string) {
	root = "."
	size = walker.Size{Width: config.Current.Width, Height: config.Current.Height}
	suffix = config.Current.Suffix
	if len(args) > 0 && args[0] != "" {
		root = args[0]
	}
	if len(args) > 1 {
		size.Width = parseDimension(args[1], size.Width)
	}
	if len(args) > 2 {
		size.Height = parseDimension(args[2], size.Height)
	}
	if len(args) > 3 && args[3] != "" {
		suffix = args[3]
	}
	return
}

func runResize(args []string) bool {
	if len(args) > 4 {
		fmt.Fprintf(stderr, "too many arguments: %q\n", args[4:])
		return false
	}
	root, size, suffix := resizeArgs(args)

	naming, err := walker.ParseNaming(*rNaming)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return false
	}
	enc, err := codec.Engine(*rEngine)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return false
	}
	w, err := walker.New(enc,
		walker.WithSize(size.Width, size.Height),
		walker.WithSuffix(suffix),
		walker.WithNaming(naming),
		walker.WithQuality(*rQuality),
		walker.WithWorkers(*rWorkers),
		walker.WithReporter(newConsole(stdout, stderr)),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return false
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	w.Report(w.Run(ctx, root))
	return true
}
