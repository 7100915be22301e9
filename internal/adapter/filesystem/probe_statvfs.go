//go:build netbsd || solaris

package filesystem

import (
	"golang.org/x/sys/unix"

	"github.com/vertextoedge/freespace/internal/domain"
)

func probe(path string) (domain.RawCapacity, error) {
	var stat unix.Statvfs_t
	if err := unix.Statvfs(path, &stat); err != nil {
		return domain.RawCapacity{}, domain.NewCapacityError(path, err)
	}

	size := nonNegative(stat.Frsize)
	if size == 0 {
		size = nonNegative(stat.Bsize)
	}

	return domain.RawCapacity{
		Total: blocksToBytes(nonNegative(stat.Blocks), size),
		Free:  blocksToBytes(nonNegative(stat.Bavail), size),
	}, nil
}
