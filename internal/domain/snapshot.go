package domain

import "time"

// RawCapacity is the normalized result of a successful capacity query.
type RawCapacity struct {
	Total uint64 // Volume capacity in bytes
	Free  uint64 // Bytes available to the calling user
}

// SpaceSnapshot is an immutable view of a volume's capacity at one instant.
type SpaceSnapshot struct {
	total uint64
	free  uint64
}

// NewSpaceSnapshot builds a snapshot from a capacity query result.
func NewSpaceSnapshot(raw RawCapacity) SpaceSnapshot {
	return SpaceSnapshot{total: raw.Total, free: raw.Free}
}

// Total returns the capacity of the volume in bytes.
func (s SpaceSnapshot) Total() uint64 {
	return s.total
}

// Free returns the bytes available to the caller.
func (s SpaceSnapshot) Free() uint64 {
	return s.free
}

// Used returns total minus free, saturating at zero.
func (s SpaceSnapshot) Used() uint64 {
	if s.free > s.total {
		return 0
	}
	return s.total - s.free
}

// Anomalous reports whether the OS claimed more free bytes than the volume holds.
func (s SpaceSnapshot) Anomalous() bool {
	return s.free > s.total
}

// UsedPercent returns the used share of the volume in percent, 0 for an empty volume.
func (s SpaceSnapshot) UsedPercent() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.Used()) / float64(s.total) * 100
}

// Fits reports whether n more bytes could be allocated without exhausting free space.
func (s SpaceSnapshot) Fits(n uint64) bool {
	return n <= s.free
}

// ArtifactRecord is a journal entry for a transient file that may still be on disk.
type ArtifactRecord struct {
	Path      string
	Length    uint64
	CreatedAt time.Time
}
