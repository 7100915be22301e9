//go:build windows

package filesystem

import (
	"golang.org/x/sys/windows"

	"github.com/vertextoedge/freespace/internal/domain"
)

// probe uses GetDiskFreeSpaceExW, which reports bytes directly.
func probe(path string) (domain.RawCapacity, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return domain.RawCapacity{}, domain.NewCapacityError(path, err)
	}

	var freeBytesAvailable, totalNumberOfBytes, totalNumberOfFreeBytes uint64
	if err := windows.GetDiskFreeSpaceEx(pathPtr, &freeBytesAvailable, &totalNumberOfBytes, &totalNumberOfFreeBytes); err != nil {
		return domain.RawCapacity{}, domain.NewCapacityError(path, err)
	}

	return domain.RawCapacity{
		Total: totalNumberOfBytes,
		Free:  freeBytesAvailable,
	}, nil
}
