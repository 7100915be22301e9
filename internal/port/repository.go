package port

import "github.com/vertextoedge/freespace/internal/domain"

// ArtifactJournal records transient files so that a later run can remove
// artifacts left behind by a process that was killed mid-iteration.
type ArtifactJournal interface {
	// Record marks path as created with the requested length
	Record(path string, length uint64) error

	// Clear removes the journal entry for path
	Clear(path string) error

	// Pending lists artifacts recorded but never cleared
	Pending() ([]domain.ArtifactRecord, error)

	// Close releases the underlying storage
	Close() error
}
