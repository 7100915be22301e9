package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/vertextoedge/freespace/internal/adapter/filesystem"
	"github.com/vertextoedge/freespace/internal/domain"
	"github.com/vertextoedge/freespace/internal/domain/vo"
	"github.com/vertextoedge/freespace/internal/port"
	"github.com/vertextoedge/freespace/internal/service/reporter"
)

const (
	// Prompt is printed before every read from the operator
	Prompt = "Enter file length in bytes (0 to quit):"

	// ClosingMessage is printed once when the session terminates normally
	ClosingMessage = "\nEnd of FreeSpace demonstration"

	// DefaultWriteSize is the number of zero bytes written into the middle of the artifact
	DefaultWriteSize = 256
)

var separator = strings.Repeat("-", 40)

// Config contains probe session configuration
type Config struct {
	// ArtifactPath is the transient file created each iteration
	ArtifactPath string

	// WriteSize is the number of zero bytes written at the midpoint
	WriteSize int

	// StrictInput re-prompts on unparseable input instead of treating it as 0
	StrictInput bool
}

// DefaultConfig returns default session configuration
func DefaultConfig() *Config {
	return &Config{
		ArtifactPath: filesystem.DefaultArtifactPath,
		WriteSize:    DefaultWriteSize,
	}
}

// Session runs the interactive capacity demonstration
type Session struct {
	config   *Config
	reader   port.CapacityReader
	reporter *reporter.Reporter
	fs       port.FileSystem
	journal  port.ArtifactJournal
	out      io.Writer
	logger   *zap.Logger
}

// New creates a new Session. journal may be nil, in which case artifacts
// are not recorded and Recover returns domain.ErrJournalDisabled.
func New(cfg *Config, reader port.CapacityReader, fs port.FileSystem, journal port.ArtifactJournal, out io.Writer, logger *zap.Logger) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.ArtifactPath == "" {
		cfg.ArtifactPath = filesystem.DefaultArtifactPath
	}
	if cfg.WriteSize <= 0 {
		cfg.WriteSize = DefaultWriteSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		config:   cfg,
		reader:   reader,
		reporter: reporter.New(reader, out, logger),
		fs:       fs,
		journal:  journal,
		out:      out,
		logger:   logger,
	}
}

// Run reads lengths from in until the operator enters 0, input ends, or an
// iteration fails. The first failure ends the session.
func (s *Session) Run(in io.Reader) error {
	br := bufio.NewReader(in)

	for {
		length, err := s.readLength(br)
		if err != nil {
			return err
		}

		if length == 0 {
			fmt.Fprintln(s.out, ClosingMessage)
			s.logger.Debug("session terminated")
			return nil
		}

		if err := s.Iterate(length); err != nil {
			s.logger.Error("iteration failed", zap.Uint64("length", length), zap.Error(err))
			return err
		}
	}
}

// readLength prompts until it obtains a length. End of input reads as 0.
func (s *Session) readLength(br *bufio.Reader) (uint64, error) {
	for {
		fmt.Fprintln(s.out, Prompt)

		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, domain.NewOpError(domain.OpInput, "", err)
		}
		eof := err != nil
		if eof && line == "" {
			return 0, nil
		}

		input := strings.TrimSpace(line)
		length, perr := strconv.ParseUint(input, 10, 64)
		if perr == nil {
			return length, nil
		}

		if !s.config.StrictInput || eof {
			s.logger.Debug("unparseable input treated as 0", zap.String("input", input))
			return 0, nil
		}
		fmt.Fprintf(s.out, "Invalid file length %q, enter a non-negative integer.\n", input)
	}
}

// Iterate runs one create/resize/write/delete cycle for an artifact of the
// given length, reporting capacity after each step. The artifact is removed
// on every return path.
func (s *Session) Iterate(length uint64) (err error) {
	artifact := filesystem.NewManager(s.fs, s.config.ArtifactPath)
	path := artifact.Path()

	s.logger.Info("iteration started",
		zap.String("artifact", path),
		zap.Uint64("length", length),
		zap.Stringer("size", vo.NewByteCount(length)))

	fmt.Fprintf(s.out, "Requested file size: %20s bytes\n", vo.GroupThousands(length))

	before, err := s.report(reporter.StageBeforeCreate)
	if err != nil {
		return err
	}
	if !before.Fits(length) {
		s.logger.Warn("requested length exceeds free space, resize relies on sparse allocation",
			zap.Uint64("length", length),
			zap.Uint64("free", before.Free()))
	}

	if err := s.record(path, length); err != nil {
		return err
	}

	created, done := false, false
	defer func() {
		if done {
			return
		}
		var cerr error
		if created {
			cerr = artifact.Discard()
		}
		// the journal entry stays when the file could not be removed
		if cerr == nil {
			cerr = s.clear(path)
		}
		err = multierr.Append(err, cerr)
		s.logger.Warn("artifact discarded after failure", zap.String("artifact", path), zap.Error(cerr))
	}()

	if err := artifact.Create(); err != nil {
		return err
	}
	created = true
	if _, err := s.report(reporter.StageAfterCreate); err != nil {
		return err
	}

	if err := artifact.Resize(length); err != nil {
		return err
	}
	if _, err := s.report(reporter.StageAfterResize); err != nil {
		return err
	}

	if err := artifact.WriteZerosAt(length/2, s.config.WriteSize); err != nil {
		return err
	}
	if _, err := s.report(reporter.StageAfterWrite); err != nil {
		return err
	}

	if err := artifact.Close(); err != nil {
		return err
	}
	if err := artifact.Delete(); err != nil {
		return err
	}
	if err := s.clear(path); err != nil {
		return err
	}
	done = true
	if _, err := s.report(reporter.StageAfterDelete); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "%s\n\n", separator)
	s.logger.Info("iteration completed", zap.String("artifact", path))
	return nil
}

func (s *Session) report(stage string) (domain.SpaceSnapshot, error) {
	snap, err := s.reporter.Report(stage)
	if err != nil {
		return snap, domain.NewOpError(domain.OpProbe, s.reader.Path(), err)
	}
	return snap, nil
}

func (s *Session) record(path string, length uint64) error {
	if s.journal == nil {
		return nil
	}
	if err := s.journal.Record(path, length); err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	return nil
}

func (s *Session) clear(path string) error {
	if s.journal == nil {
		return nil
	}
	if err := s.journal.Clear(path); err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	return nil
}

// Recover removes artifacts that the journal lists as pending, i.e. files left
// behind by a run that was killed mid-iteration, and returns how many it deleted.
func (s *Session) Recover() (int, error) {
	if s.journal == nil {
		return 0, domain.ErrJournalDisabled
	}

	pending, err := s.journal.Pending()
	if err != nil {
		return 0, fmt.Errorf("journal: %w", err)
	}

	removed := 0
	var errs error
	for _, rec := range pending {
		rmErr := s.fs.Remove(rec.Path)
		switch {
		case rmErr == nil:
			removed++
			s.logger.Info("removed leftover artifact",
				zap.String("artifact", rec.Path),
				zap.Stringer("length", vo.NewByteCount(rec.Length)),
				zap.Time("created_at", rec.CreatedAt))
		case errors.Is(rmErr, os.ErrNotExist):
			s.logger.Debug("journaled artifact already gone", zap.String("artifact", rec.Path))
		default:
			errs = multierr.Append(errs, domain.NewOpError(domain.OpDelete, rec.Path, rmErr))
			continue
		}

		if err := s.journal.Clear(rec.Path); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("journal: %w", err))
		}
	}

	return removed, errs
}
