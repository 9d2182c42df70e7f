package cmd

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-imsto/sliceresize/walker"
)

// console prints progress lines and the final summary
type console struct {
	mu       sync.Mutex
	out, err io.Writer
}

func newConsole(out, err io.Writer) *console {
	return &console{out: out, err: err}
}

func (c *console) Start(root string, opts walker.Options) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "Resizing images ending with %q in %s\n", opts.Suffix, root)
	fmt.Fprintf(c.out, "size: %s, naming: %s, quality: %d\n\n", opts.Size, opts.Naming, opts.Quality)
}

func (c *console) Converted(rel, relOut string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "✓ %s → %s\n", rel, relOut)
}

func (c *console) Failed(rel string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.err, "✗ %s: %s\n", rel, err)
}

func (c *console) AccessFailed(fpath string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.err, "✗ cannot walk %s: %s\n", fpath, err)
}

func (c *console) Done(root string, s walker.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "\n=== Summary ===\n")
	fmt.Fprintf(c.out, "found: %d\n", s.Found)
	fmt.Fprintf(c.out, "processed: %d\n", s.Processed)
	fmt.Fprintf(c.out, "errors: %d\n", s.Errors)
	fmt.Fprintf(c.out, "resized images are next to their originals\n")
}
