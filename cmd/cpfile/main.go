package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/vertextoedge/freespace/internal/fileops"
	"github.com/vertextoedge/freespace/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("cpfile", pflag.ContinueOnError)
	logLevel := flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: cpfile file1 file2")
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return int(fileops.StepUsage)
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return int(fileops.StepUsage)
	}

	if err := logger.Init(*logLevel, "text"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	src, dst := flags.Arg(0), flags.Arg(1)
	if err := fileops.Copy(afero.NewOsFs(), src, dst); err != nil {
		logger.Log.Debugw("copy failed", "src", src, "dst", dst, "error", err)
		fmt.Fprintln(os.Stderr, err)
		return fileops.ExitCode(err)
	}

	logger.Log.Debugw("copy complete", "src", src, "dst", dst)
	return 0
}
