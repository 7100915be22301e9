package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/vertextoedge/freespace/internal/fileops"
	"github.com/vertextoedge/freespace/internal/logger"
)

func main() {
	flags := pflag.NewFlagSet("pwd", pflag.ExitOnError)
	logLevel := flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Parse(os.Args[1:])

	if err := logger.Init(*logLevel, "text"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	dir, err := fileops.WorkingDir()
	if err != nil {
		logger.Log.Errorw("cannot determine working directory", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}

	fmt.Println(dir)
}
