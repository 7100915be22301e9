package filesystem

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/multierr"

	"github.com/vertextoedge/freespace/internal/domain"
	"github.com/vertextoedge/freespace/internal/port"
)

// DefaultArtifactPath is the transient file created by each probe iteration
const DefaultArtifactPath = "temp_test_file"

// Manager handles the lifecycle of the single transient artifact
type Manager struct {
	fs   port.FileSystem
	path string
	file port.File
}

// NewManager creates a new artifact manager
func NewManager(fs port.FileSystem, path string) *Manager {
	if path == "" {
		path = DefaultArtifactPath
	}
	return &Manager{
		fs:   fs,
		path: path,
	}
}

// Path returns the artifact path
func (m *Manager) Path() string {
	return m.path
}

// IsOpen reports whether the artifact is currently held open
func (m *Manager) IsOpen() bool {
	return m.file != nil
}

// Create creates the artifact, truncating any existing file of the same name
func (m *Manager) Create() error {
	if m.file != nil {
		return domain.NewOpError(domain.OpCreate, m.path, errors.New("artifact already open"))
	}

	f, err := m.fs.OpenFile(m.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return domain.NewOpError(domain.OpCreate, m.path, err)
	}
	m.file = f
	return nil
}

// Resize sets the artifact length without writing the gap
func (m *Manager) Resize(length uint64) error {
	if m.file == nil {
		return domain.NewOpError(domain.OpResize, m.path, os.ErrClosed)
	}
	if length > math.MaxInt64 {
		return domain.NewOpError(domain.OpResize, m.path,
			fmt.Errorf("%w: %d exceeds maximum file size", domain.ErrInvalidLength, length))
	}
	if err := m.file.Truncate(int64(length)); err != nil {
		return domain.NewOpError(domain.OpResize, m.path, err)
	}
	return nil
}

// WriteZerosAt writes n zero bytes starting at offset
func (m *Manager) WriteZerosAt(offset uint64, n int) error {
	if m.file == nil {
		return domain.NewOpError(domain.OpWrite, m.path, os.ErrClosed)
	}
	if offset > math.MaxInt64 {
		return domain.NewOpError(domain.OpSeek, m.path,
			fmt.Errorf("%w: offset %d out of range", domain.ErrInvalidLength, offset))
	}
	if _, err := m.file.Seek(int64(offset), io.SeekStart); err != nil {
		return domain.NewOpError(domain.OpSeek, m.path, err)
	}

	buf := make([]byte, n)
	written, err := m.file.Write(buf)
	if err != nil {
		return domain.NewOpError(domain.OpWrite, m.path, err)
	}
	if written != n {
		return domain.NewOpError(domain.OpWrite, m.path, io.ErrShortWrite)
	}
	return nil
}

// Close closes the artifact handle
func (m *Manager) Close() error {
	if m.file == nil {
		return nil
	}
	f := m.file
	m.file = nil
	if err := f.Close(); err != nil {
		return domain.NewOpError(domain.OpClose, m.path, err)
	}
	return nil
}

// Delete removes the artifact
func (m *Manager) Delete() error {
	if err := m.fs.Remove(m.path); err != nil {
		return domain.NewOpError(domain.OpDelete, m.path, err)
	}
	return nil
}

// Discard closes and removes the artifact if it is still around.
// It is safe to call after a successful Close and Delete.
func (m *Manager) Discard() error {
	err := m.Close()
	if rmErr := m.fs.Remove(m.path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
		err = multierr.Append(err, domain.NewOpError(domain.OpDelete, m.path, rmErr))
	}
	return err
}

// Exists checks if the artifact is on disk
func (m *Manager) Exists() bool {
	_, err := m.fs.Stat(m.path)
	return err == nil
}

// Size returns the logical length of the artifact
func (m *Manager) Size() (int64, error) {
	info, err := m.fs.Stat(m.path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
