package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/vertextoedge/freespace/internal/fileops"
	"github.com/vertextoedge/freespace/internal/logger"
)

// Options other than -s are ignored rather than rejected, so the command
// line is split by hand instead of through a flag set.
func main() {
	suppress, files := fileops.ParseCatArgs(os.Args[1:])

	level := "warn"
	if v := os.Getenv("FREESPACE_LOGGING_LEVEL"); v != "" {
		level = v
	}
	if err := logger.Init(level, "text"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if len(files) == 0 {
		if err := fileops.Concat(os.Stdout, os.Stdin, suppress); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing file: <stdin>: %v\n", err)
		}
		return
	}

	failed := fileops.CatFiles(afero.NewOsFs(), os.Stdout, os.Stderr, files, suppress)
	logger.Log.Debugw("cat finished", "files", len(files), "failed", failed)
}
