package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/vertextoedge/freespace/internal/adapter/filesystem"
	"github.com/vertextoedge/freespace/internal/adapter/sqlite"
	"github.com/vertextoedge/freespace/internal/config"
	"github.com/vertextoedge/freespace/internal/domain"
	"github.com/vertextoedge/freespace/internal/logger"
	"github.com/vertextoedge/freespace/internal/port"
	"github.com/vertextoedge/freespace/internal/service/session"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Parse command line flags
	flags := pflag.NewFlagSet("freespace", pflag.ContinueOnError)
	config.RegisterFlags(flags)
	showVersion := flags.Bool("version", false, "print the version and exit")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	if *showVersion {
		fmt.Println("freespace", version)
		return 0
	}

	// Load configuration
	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return domain.ExitCode(err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	zapLogger := logger.GetZapLogger()
	zapLogger.Info("starting freespace",
		zap.String("version", version),
		zap.String("probe_path", cfg.Session.ProbePath),
		zap.String("artifact", cfg.Session.ArtifactPath),
	)

	fs := afero.NewOsFs()

	var journal port.ArtifactJournal
	if cfg.Journal.Enabled() {
		store, err := sqlite.Open(cfg.Journal.Path)
		if err != nil {
			zapLogger.Error("failed to open journal", zap.Error(err), zap.String("path", cfg.Journal.Path))
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			return 1
		}
		defer store.Close()
		journal = store
	}

	sess := session.New(&session.Config{
		ArtifactPath: cfg.Session.ArtifactPath,
		WriteSize:    cfg.Session.WriteSize,
		StrictInput:  cfg.Session.StrictInput,
	}, filesystem.NewProber(cfg.Session.ProbePath), fs, journal, os.Stdout, zapLogger)

	if journal != nil {
		removed, err := sess.Recover()
		if err != nil {
			zapLogger.Warn("failed to remove leftover artifacts", zap.Error(err))
		} else if removed > 0 {
			zapLogger.Info("removed leftover artifacts", zap.Int("count", removed))
		}
	}

	if err := sess.Run(os.Stdin); err != nil {
		zapLogger.Error("session failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return domain.ExitCode(err)
	}

	return 0
}
