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
	flags := pflag.NewFlagSet("cipher", pflag.ContinueOnError)
	logLevel := flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: cipher <input> <output> <shift>")
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}
	if flags.NArg() != 3 {
		flags.Usage()
		return 1
	}

	if err := logger.Init(*logLevel, "text"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	shift, err := fileops.ParseShift(flags.Arg(2))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: Shift must be a positive integer")
		return 1
	}

	if err := fileops.Cipher(afero.NewOsFs(), flags.Arg(0), flags.Arg(1), shift); err != nil {
		logger.Log.Debugw("cipher failed", "error", err, "exit_step", fileops.ExitCode(err))
		fmt.Fprintf(os.Stderr, "Error processing files: %v\n", err)
		return 1
	}

	fmt.Println("File processed successfully")
	return 0
}
