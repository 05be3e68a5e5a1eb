// Command nexd serves a directory over the Nex protocol, one client at a time.
//
// Usage:
//
//	nexd [-d|--docroot PATH] [-p|--port NUMBER]
//	nexd --stdio [-d|--docroot PATH]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"

	"github.com/gilliginsisland/nexd/app"
	"github.com/gilliginsisland/nexd/internal/stdio"
)

var opts Opts

var parser = flags.NewParser(&opts, flags.Default)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			return 0
		}
		return 1
	}
	if len(rest) > 0 {
		fatal(fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " ")))
		return 1
	}

	slog.SetDefault(opts.Logger())

	c, err := opts.Config(os.Environ())
	if err != nil {
		fatal(err)
		return 1
	}
	slog.Debug(fmt.Sprintf("Running with config: %#v", c))

	if opts.Stdio {
		err = app.RunStdio(context.Background(), c, stdio.NewConn(os.Stdin, os.Stdout))
	} else {
		err = app.Run(context.Background(), c, os.Stdout)
	}
	if err != nil {
		fatal(err)
		return 1
	}
	return 0
}

func fatal(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "FATAL: %s\n", err)
}
