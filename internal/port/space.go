package port

import "github.com/vertextoedge/freespace/internal/domain"

// CapacityReader defines the interface for querying volume capacity
type CapacityReader interface {
	// Probe issues one capacity query against the bound path.
	// A RawCapacity is only returned when the OS call succeeded.
	Probe() (domain.RawCapacity, error)

	// Path returns the location whose volume is probed
	Path() string
}
