//go:build darwin || freebsd || dragonfly

package filesystem

import (
	"golang.org/x/sys/unix"

	"github.com/vertextoedge/freespace/internal/domain"
)

func probe(path string) (domain.RawCapacity, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return domain.RawCapacity{}, domain.NewCapacityError(path, err)
	}

	// f_bsize is the fundamental block size on these systems
	size := nonNegative(stat.Bsize)

	return domain.RawCapacity{
		Total: blocksToBytes(nonNegative(stat.Blocks), size),
		Free:  blocksToBytes(nonNegative(stat.Bavail), size),
	}, nil
}
