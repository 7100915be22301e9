//go:build linux

package filesystem

import (
	"golang.org/x/sys/unix"

	"github.com/vertextoedge/freespace/internal/domain"
)

// probe uses statfs with the fragment size, which is the unit f_blocks is counted in.
func probe(path string) (domain.RawCapacity, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return domain.RawCapacity{}, domain.NewCapacityError(path, err)
	}

	size := nonNegative(stat.Frsize)
	if size == 0 {
		size = nonNegative(stat.Bsize)
	}

	return domain.RawCapacity{
		Total: blocksToBytes(stat.Blocks, size),
		Free:  blocksToBytes(stat.Bavail, size),
	}, nil
}
