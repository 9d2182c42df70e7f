// Package walker finds images by name suffix under a directory tree and
// writes a resized JPEG copy next to each of them.
package walker

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/go-imsto/sliceresize/codec"
)

// Walker converts matching images of a tree. A Walker runs one tree at a time.
type Walker struct {
	enc  codec.Encoder
	opts Options
	rep  Reporter
	c    counters

	readDir func(name string) ([]os.DirEntry, error)
}

// New ...
func New(enc codec.Encoder, opts ...Option) (*Walker, error) {
	if enc == nil {
		return nil, ErrNilEncoder
	}
	w := &Walker{enc: enc, opts: DefaultOptions(), rep: logReporter{}, readDir: os.ReadDir}
	for _, opt := range opts {
		opt(w)
	}
	if err := w.opts.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Options returns the effective options
func (w *Walker) Options() Options {
	return w.opts
}

// frame is a directory being enumerated, next is the first entry not yet visited.
// real is the resolved path, used to detect symlink loops.
type frame struct {
	abs     string
	rel     string
	real    string
	entries []os.DirEntry
	next    int
	listed  bool
}

// Run walks root depth-first and converts every regular file matching the suffix.
// Failures are counted and reported, they never stop the walk. Cancelling ctx
// stops it before the next entry; conversions already started are waited for.
func (w *Walker) Run(ctx context.Context, root string) Summary {
	w.c.reset()
	w.rep.Start(root, w.opts)

	var g *errgroup.Group
	if w.opts.Workers > 1 {
		g = new(errgroup.Group)
		g.SetLimit(w.opts.Workers)
	}

	if kind, err := Classify(root); err != nil || kind != KindDirectory {
		if err == nil {
			err = &os.PathError{Op: "walk", Path: root, Err: ErrNotDir}
		}
		w.c.errors.Inc()
		w.rep.AccessFailed(root, err)
		return w.done(root)
	}

	// the stack only holds ancestors of the frame being enumerated
	stack := []*frame{{abs: root}}

	for len(stack) > 0 && ctx.Err() == nil {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f.listed {
			if !w.enter(f, stack) {
				continue
			}
		}

	entries:
		for f.next < len(f.entries) && ctx.Err() == nil {
			name := f.entries[f.next].Name()
			f.next++
			abs := filepath.Join(f.abs, name)
			rel := filepath.Join(f.rel, name)

			kind, err := Classify(abs)
			if err != nil {
				w.c.errors.Inc()
				w.rep.AccessFailed(rel, err)
				continue
			}

			switch kind {
			case KindDirectory:
				// resume this directory after the child is done
				stack = append(stack, f, &frame{abs: abs, rel: rel})
				break entries
			case KindRegular:
				if !Match(name, w.opts.Suffix) {
					continue
				}
				w.c.found.Inc()
				if g != nil {
					g.Go(func() error {
						w.convert(abs, rel)
						return nil
					})
				} else {
					w.convert(abs, rel)
				}
			case KindOther:
			}
		}
	}

	if g != nil {
		_ = g.Wait()
	}
	if err := ctx.Err(); err != nil {
		logger().Infow("walk canceled", "root", root, "err", err)
	}
	return w.done(root)
}

// enter lists a directory, a directory that is its own ancestor through symlinks is skipped
func (w *Walker) enter(f *frame, ancestors []*frame) bool {
	f.listed = true
	if rp, err := filepath.EvalSymlinks(f.abs); err == nil {
		f.real = rp
		for _, a := range ancestors {
			if a.real == rp {
				logger().Infow("skip symlink loop", "dir", f.abs, "real", rp)
				return false
			}
		}
	}

	entries, err := w.readDir(f.abs)
	if err != nil {
		w.c.errors.Inc()
		w.rep.AccessFailed(displayDir(f), err)
		return false
	}
	f.entries = entries
	return true
}

func displayDir(f *frame) string {
	if f.rel == "" {
		return f.abs
	}
	return f.rel
}

func (w *Walker) convert(abs, rel string) {
	dst := OutputPath(abs, w.opts.Size, w.opts.Naming)
	relOut := filepath.Join(filepath.Dir(rel), filepath.Base(dst))
	opt := codec.Option{
		Width:   w.opts.Size.Width,
		Height:  w.opts.Size.Height,
		Fit:     codec.FitCover,
		Quality: w.opts.Quality,
	}
	if err := w.enc.Encode(abs, dst, opt); err != nil {
		w.c.errors.Inc()
		w.c.failed.Inc()
		w.rep.Failed(rel, err)
		return
	}
	w.c.processed.Inc()
	w.rep.Converted(rel, relOut)
}

func (w *Walker) done(root string) Summary {
	s := w.c.summary()
	w.rep.Done(root, s)
	return s
}
