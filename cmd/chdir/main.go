package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/vertextoedge/freespace/internal/fileops"
	"github.com/vertextoedge/freespace/internal/logger"
)

func main() {
	flags := pflag.NewFlagSet("chdir", pflag.ContinueOnError)
	logLevel := flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: chdir [directory]")
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := logger.Init(*logLevel, "text"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	target, err := fileops.Chdir(flags.Arg(0), flags.NArg() == 0)
	if err != nil {
		logger.Log.Debugw("chdir failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}

	fmt.Printf("Current directory is %s\n", target)
}
