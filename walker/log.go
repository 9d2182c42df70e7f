package walker

import (
	zlog "github.com/go-imsto/sliceresize/log"
)

func logger() zlog.Logger {
	return zlog.Get()
}
