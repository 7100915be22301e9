//go:build !linux && !darwin && !freebsd && !dragonfly && !openbsd && !netbsd && !solaris && !windows

package filesystem

import "github.com/vertextoedge/freespace/internal/domain"

func probe(path string) (domain.RawCapacity, error) {
	return domain.RawCapacity{}, domain.NewCapacityError(path, domain.ErrUnsupportedPlatform)
}
