package walker

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-imsto/sliceresize/codec"
	"github.com/go-imsto/sliceresize/utils"
)

// Size is the target box of the resized copies
type Size struct {
	Width  uint
	Height uint
}

// Valid reports both dimensions are positive
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Naming is the convention of output file names
type Naming uint8

const (
	// NamingHyphen names outputs {base}-{w}x{h}.jpg
	NamingHyphen Naming = iota
	// NamingUnderscore names outputs {base}_{w}x{h}.jpg
	NamingUnderscore
)

// Sep returns the separator between base name and dimensions
func (n Naming) Sep() string {
	if n == NamingUnderscore {
		return "_"
	}
	return "-"
}

func (n Naming) String() string {
	switch n {
	case NamingHyphen:
		return "hyphen"
	case NamingUnderscore:
		return "underscore"
	}
	return "unknown"
}

// ParseNaming ...
func ParseNaming(s string) (Naming, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hyphen", "-":
		return NamingHyphen, nil
	case "underscore", "_":
		return NamingUnderscore, nil
	}
	return NamingHyphen, fmt.Errorf("invalid naming %q, want hyphen or underscore", s)
}

// Match reports whether name ends with suffix, ignoring case
func Match(name, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(suffix))
}

// OutputName returns the file name of the resized copy of file
func OutputName(file string, size Size, naming Naming) string {
	return utils.BaseName(file) + naming.Sep() + size.String() + "." + codec.FormatJPEG
}

// OutputPath returns the resized copy path, always in the directory of src
func OutputPath(src string, size Size, naming Naming) string {
	return filepath.Join(filepath.Dir(src), OutputName(src, size, naming))
}
