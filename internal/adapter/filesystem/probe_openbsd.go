//go:build openbsd

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

	size := nonNegative(stat.F_bsize)

	return domain.RawCapacity{
		Total: blocksToBytes(nonNegative(stat.F_blocks), size),
		Free:  blocksToBytes(nonNegative(stat.F_bavail), size),
	}, nil
}
