package vo

import (
	"math/big"

	"github.com/dustin/go-humanize"
)

const (
	KB uint64 = 1024
	MB uint64 = 1024 * KB
	GB uint64 = 1024 * MB
	TB uint64 = 1024 * GB
)

// ByteCount represents an unsigned byte quantity reported by a capacity query.
// It provides the locale-independent renderings used in space reports.
type ByteCount struct {
	bytes uint64
}

// NewByteCount creates a new ByteCount value object.
func NewByteCount(bytes uint64) ByteCount {
	return ByteCount{bytes: bytes}
}

// Bytes returns the count in bytes.
func (b ByteCount) Bytes() uint64 {
	return b.bytes
}

// GB returns the count in binary gigabytes.
func (b ByteCount) GB() float64 {
	return ToGigabytes(b.bytes)
}

// IsZero returns true if the count is zero.
func (b ByteCount) IsZero() bool {
	return b.bytes == 0
}

// Grouped returns the decimal digits with a comma every three digits.
func (b ByteCount) Grouped() string {
	return GroupThousands(b.bytes)
}

// String returns a human-readable IEC representation, e.g. "1.0 GiB".
func (b ByteCount) String() string {
	return humanize.IBytes(b.bytes)
}

// GroupThousands renders n with a comma inserted every three digits counting
// from the least significant one. Output never depends on the process locale.
func GroupThousands(n uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(n))
}

// ToGigabytes converts n bytes to binary gigabytes (n / 1024^3).
func ToGigabytes(n uint64) float64 {
	return float64(n) / float64(GB)
}
