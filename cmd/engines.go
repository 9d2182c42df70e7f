package cmd

import (
	"fmt"

	"github.com/go-imsto/sliceresize/codec"
)

var cmdEngines = &Command{
	UsageLine: "engines",
	Short:     "list codec engines",
	Long: `
list the codec engines usable with resize -engine, the default is marked with *
`,
}

func init() {
	cmdEngines.Run = runEngines
}

func runEngines(args []string) bool {
	for _, name := range codec.Engines() {
		mark := " "
		if name == *rEngine {
			mark = "*"
		}
		fmt.Fprintf(stdout, "%s %s\n", mark, name)
	}
	return true
}
