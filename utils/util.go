package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// RemoveQuietly removes a partially written file, a missing file is fine
func RemoveQuietly(fpath string) {
	if err := os.Remove(fpath); err != nil && !os.IsNotExist(err) {
		logger().Warnw("remove fail", "path", fpath, "err", err)
	}
}

// BaseName returns the file name without its last extension
func BaseName(fpath string) string {
	name := filepath.Base(fpath)
	ext := filepath.Ext(name)
	if ext == name { // dotfile without extension
		return name
	}
	return strings.TrimSuffix(name, ext)
}
