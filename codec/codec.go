// Package codec resizes a single image file into a JPEG file.
//
// An Encoder is chosen by engine name from the registry, see RegisterEngine.
package codec

import (
	"errors"
	"fmt"
)

// Fit is the resize policy of a target box
type Fit uint8

const (
	// FitCover scales the source to fully cover the box and crops the overflow around the center
	FitCover Fit = iota
	// FitContain scales the source to fit inside the box, keeping the aspect ratio
	FitContain
)

func (f Fit) String() string {
	switch f {
	case FitCover:
		return "cover"
	case FitContain:
		return "contain"
	}
	return "unknown"
}

// consts
const (
	DefaultQuality = 90
	FormatJPEG     = "jpg"
)

// errors
var (
	ErrInvalidOption = errors.New("invalid codec option")
	ErrUnknownEngine = errors.New("unknown codec engine")
)

// Option of one encoding
type Option struct {
	Width   uint
	Height  uint
	Fit     Fit
	Quality int // 1-100
}

func (o Option) String() string {
	return fmt.Sprintf("%dx%d q%d %s", o.Width, o.Height, o.Quality, o.Fit)
}

// Validate ...
func (o Option) Validate() error {
	if o.Width == 0 || o.Height == 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidOption, o.Width, o.Height)
	}
	if o.Quality < 1 || o.Quality > 100 {
		return fmt.Errorf("%w: quality %d", ErrInvalidOption, o.Quality)
	}
	if o.Fit > FitContain {
		return fmt.Errorf("%w: fit %d", ErrInvalidOption, o.Fit)
	}
	return nil
}

// Encoder reads the image at src, resizes it and writes a JPEG to dst.
// On failure dst is not left behind.
type Encoder interface {
	Encode(src, dst string, opt Option) error
}

// EncodeFunc adapts a function to Encoder
type EncodeFunc func(src, dst string, opt Option) error

// Encode ...
func (f EncodeFunc) Encode(src, dst string, opt Option) error {
	return f(src, dst, opt)
}

// CodecError ...
type CodecError struct {
	Op  string
	Src string
	Err error
}

func (e *CodecError) Error() string {
	return e.Op + " " + e.Src + ": " + e.Err.Error()
}

// Unwrap ...
func (e *CodecError) Unwrap() error {
	return e.Err
}

func wrapErr(op, src string, err error) error {
	if err == nil {
		return nil
	}
	return &CodecError{Op: op, Src: src, Err: err}
}
