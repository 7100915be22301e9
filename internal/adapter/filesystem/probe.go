package filesystem

import (
	"math"
	"math/bits"

	"github.com/vertextoedge/freespace/internal/domain"
	"github.com/vertextoedge/freespace/internal/port"
)

// DefaultProbePath is the location probed when none is configured
const DefaultProbePath = "."

// Prober queries the capacity of the volume backing a path.
// The platform query lives in probe_<os>.go and is selected at build time.
type Prober struct {
	path string
}

// Ensure Prober implements port.CapacityReader
var _ port.CapacityReader = (*Prober)(nil)

// NewProber creates a Prober bound to path
func NewProber(path string) *Prober {
	if path == "" {
		path = DefaultProbePath
	}
	return &Prober{path: path}
}

// Path returns the probed location
func (p *Prober) Path() string {
	return p.path
}

// Probe returns total and caller-available bytes for the volume
func (p *Prober) Probe() (domain.RawCapacity, error) {
	return probe(p.path)
}

// blockCount covers the integer types platforms use for statfs fields.
type blockCount interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// nonNegative converts a block count to uint64, clamping negative values
// (some BSDs report a negative bavail once the root reserve is in use).
func nonNegative[T blockCount](v T) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}

// blocksToBytes multiplies a block count by the block size, saturating on overflow.
func blocksToBytes(blocks, size uint64) uint64 {
	hi, lo := bits.Mul64(blocks, size)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
