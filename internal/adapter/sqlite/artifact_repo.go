package sqlite

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vertextoedge/freespace/internal/domain"
)

// Record marks an artifact as created. Recording the same path again
// replaces the previous entry.
func (s *Store) Record(path string, length uint64) error {
	query := `
		INSERT INTO artifacts (path, length, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			length = excluded.length,
			created_at = excluded.created_at
	`

	if _, err := s.db.Exec(query, path, strconv.FormatUint(length, 10), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to record artifact %s: %w", path, err)
	}
	return nil
}

// Clear removes the entry for path; clearing an unknown path is not an error
func (s *Store) Clear(path string) error {
	if _, err := s.db.Exec(`DELETE FROM artifacts WHERE path = ?`, path); err != nil {
		return fmt.Errorf("failed to clear artifact %s: %w", path, err)
	}
	return nil
}

// Pending returns every artifact recorded but not yet cleared, oldest first
func (s *Store) Pending() ([]domain.ArtifactRecord, error) {
	rows, err := s.db.Query(`SELECT path, length, created_at FROM artifacts ORDER BY created_at, path`)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	defer rows.Close()

	var records []domain.ArtifactRecord
	for rows.Next() {
		var rec domain.ArtifactRecord
		var length string
		if err := rows.Scan(&rec.Path, &length, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Length, err = strconv.ParseUint(length, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt length for artifact %s: %w", rec.Path, err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
