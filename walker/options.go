package walker

import (
	"errors"
	"fmt"

	"github.com/go-imsto/sliceresize/codec"
)

// defaults
const (
	DefaultWidth  = 1200
	DefaultHeight = 800
	DefaultSuffix = "slice.jpg"
)

// errors
var (
	ErrNilEncoder  = errors.New("nil encoder")
	ErrInvalidSize = errors.New("invalid target size")
	ErrEmptySuffix = errors.New("empty match suffix")
	ErrNotDir      = errors.New("not a directory")
)

// Options of a Walker
type Options struct {
	Size    Size
	Suffix  string
	Naming  Naming
	Quality int
	Workers int // conversions in flight, 1 is sequential
}

// DefaultOptions ...
func DefaultOptions() Options {
	return Options{
		Size:    Size{Width: DefaultWidth, Height: DefaultHeight},
		Suffix:  DefaultSuffix,
		Naming:  NamingHyphen,
		Quality: codec.DefaultQuality,
		Workers: 1,
	}
}

func (o Options) validate() error {
	if !o.Size.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidSize, o.Size)
	}
	if o.Suffix == "" {
		return ErrEmptySuffix
	}
	if o.Quality < 1 || o.Quality > 100 {
		return fmt.Errorf("invalid quality %d", o.Quality)
	}
	return nil
}

// Option ...
type Option func(*Walker)

// WithSize ...
func WithSize(width, height uint) Option {
	return func(w *Walker) {
		w.opts.Size = Size{Width: width, Height: height}
	}
}

// WithSuffix ...
func WithSuffix(suffix string) Option {
	return func(w *Walker) {
		w.opts.Suffix = suffix
	}
}

// WithNaming ...
func WithNaming(n Naming) Option {
	return func(w *Walker) {
		w.opts.Naming = n
	}
}

// WithQuality ...
func WithQuality(q int) Option {
	return func(w *Walker) {
		w.opts.Quality = q
	}
}

// WithWorkers sets how many conversions may run at once, values below 1 mean 1
func WithWorkers(n int) Option {
	return func(w *Walker) {
		if n < 1 {
			n = 1
		}
		w.opts.Workers = n
	}
}

// WithReporter ...
func WithReporter(r Reporter) Option {
	return func(w *Walker) {
		if r != nil {
			w.rep = r
		}
	}
}
