package walker

import (
	"os"
)

// Kind of a directory entry
type Kind uint8

// kinds
const (
	KindOther Kind = iota
	KindDirectory
	KindRegular
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindRegular:
		return "file"
	}
	return "other"
}

// Classify stats fpath, following symlinks
func Classify(fpath string) (Kind, error) {
	fi, err := os.Stat(fpath)
	if err != nil {
		return KindOther, err
	}
	switch mode := fi.Mode(); {
	case mode.IsDir():
		return KindDirectory, nil
	case mode.IsRegular():
		return KindRegular, nil
	}
	return KindOther, nil
}
