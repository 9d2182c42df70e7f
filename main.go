package main

import (
	"github.com/go-imsto/sliceresize/cmd"
)

func main() {
	cmd.Main()
}
