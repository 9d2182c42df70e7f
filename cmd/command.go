// Package cmd The command line tool for running sliceresize.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/go-imsto/sliceresize/config"
	zlog "github.com/go-imsto/sliceresize/log"
)

// Command Cribbed from the genius organization of the "go" command.
type Command struct {
	Run                    func(args []string) bool
	UsageLine, Short, Long string
	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet
}

func (cmd *Command) Name() string {
	name := cmd.UsageLine
	i := strings.Index(name, " ")
	if i >= 0 {
		name = name[:i]
	}
	return name
}

func (cmd *Command) Usage() {
	fmt.Fprintf(stderr, "Usage: sliceresize %s\n", cmd.UsageLine)
	fmt.Fprintf(stderr, "Default Usage:\n")
	cmd.Flag.SetOutput(stderr)
	cmd.Flag.PrintDefaults()
	fmt.Fprintf(stderr, "Description:\n")
	fmt.Fprintf(stderr, "  %s\n", strings.TrimSpace(cmd.Long))
}

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var commands = []*Command{
	cmdResize,
	cmdEngines,
}

func logger() zlog.Logger {
	return zlog.Get()
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name() == name && cmd.Run != nil {
			return cmd
		}
	}
	return nil
}

// Main runs the command named by the first argument, the resize command when none matches
func Main() {
	if code := runMain(os.Args[1:]); code != 0 {
		os.Exit(code)
	}
}

func runMain(args []string) int {
	var logger *zap.Logger
	if config.InDevelop() {
		logger, _ = zap.NewDevelopment()
		logger.Debug("logger start")
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync() // flushes buffer, if any
	zlog.Set(logger.Sugar())

	return dispatch(args)
}

func dispatch(args []string) int {
	if len(args) > 0 && args[0] == "help" {
		if len(args) > 1 {
			if cmd := findCommand(args[1]); cmd != nil {
				tmpl(stdout, helpTemplate, cmd)
				if cmd == cmdResize {
					fmt.Fprintln(stdout, "Environment:")
					if err := config.Usage(stdout); err != nil {
						logger().Warnw("config usage fail", "err", err)
					}
				}
				return 0
			}
		}
		usage(stdout)
		return 0
	}

	cmd := cmdResize
	if len(args) > 0 {
		if c := findCommand(args[0]); c != nil {
			cmd = c
			args = args[1:]
		}
	}

	cmd.Flag.Usage = func() { cmd.Usage() }
	if err := cmd.Flag.Parse(args); err != nil {
		return 2
	}
	if !cmd.Run(cmd.Flag.Args()) {
		fmt.Fprintf(stderr, "\n")
		cmd.Usage()
		return 2
	}
	return 0
}

const usageTemplate = `usage: sliceresize [command] [arguments]

The commands are:
{{range .}}
    {{.Name | printf "%-11s"}} {{.Short}}{{end}}

Without a command, arguments are passed to resize.
Use "sliceresize help [command]" for more information.
`

var helpTemplate = `usage: sliceresize {{.UsageLine}}
{{.Long}}
`

func usage(w io.Writer) {
	fmt.Fprintln(w, "version ", config.Version)
	tmpl(w, usageTemplate, commands)
}

func tmpl(w io.Writer, text string, data interface{}) {
	t := template.New("top")
	template.Must(t.Parse(text))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
}
