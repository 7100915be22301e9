package reporter

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/vertextoedge/freespace/internal/domain"
	"github.com/vertextoedge/freespace/internal/domain/vo"
	"github.com/vertextoedge/freespace/internal/port"
)

const (
	headerWidth = 20
	labelWidth  = 15
	valueWidth  = 20
)

// Stage labels used by the probe session
const (
	StageBeforeCreate = "Before file creation"
	StageAfterCreate  = "After file creation"
	StageAfterResize  = "After setting file length"
	StageAfterWrite   = "After writing to middle"
	StageAfterDelete  = "After file deletion"
)

// Render writes one capacity report for snapshot s under the given stage label
func Render(w io.Writer, stage string, s domain.SpaceSnapshot) error {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(center(stage, headerWidth))
	b.WriteString(" status:\n")

	byteLine(&b, "Total space:", s.Total())
	byteLine(&b, "Used space:", s.Used())
	byteLine(&b, "Free space:", s.Free())
	gbLine(&b, "Total:", s.Total())
	gbLine(&b, "Free:", s.Free())

	_, err := io.WriteString(w, b.String())
	return err
}

func byteLine(b *strings.Builder, label string, n uint64) {
	fmt.Fprintf(b, "%-*s %*s bytes\n", labelWidth, label, valueWidth, vo.GroupThousands(n))
}

func gbLine(b *strings.Builder, label string, n uint64) {
	fmt.Fprintf(b, "%-*s %*.2f GB\n", labelWidth, label, valueWidth, vo.ToGigabytes(n))
}

// center pads s to width, putting the smaller half of the padding on the left.
// Strings at least width runes long are returned unchanged.
func center(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Reporter probes a volume and prints its capacity
type Reporter struct {
	reader port.CapacityReader
	out    io.Writer
	logger *zap.Logger
}

// New creates a new Reporter
func New(reader port.CapacityReader, out io.Writer, logger *zap.Logger) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reporter{
		reader: reader,
		out:    out,
		logger: logger,
	}
}

// Report takes a fresh capacity sample, renders it and returns it. Nothing is
// printed when the probe fails.
func (r *Reporter) Report(stage string) (domain.SpaceSnapshot, error) {
	raw, err := r.reader.Probe()
	if err != nil {
		return domain.SpaceSnapshot{}, err
	}

	snap := domain.NewSpaceSnapshot(raw)
	if snap.Anomalous() {
		r.logger.Warn("free space exceeds volume capacity",
			zap.String("path", r.reader.Path()),
			zap.String("stage", stage),
			zap.Uint64("total", snap.Total()),
			zap.Uint64("free", snap.Free()))
	}

	r.logger.Debug("capacity sampled",
		zap.String("stage", stage),
		zap.Stringer("total", vo.NewByteCount(snap.Total())),
		zap.Stringer("free", vo.NewByteCount(snap.Free())),
		zap.Float64("used_pct", snap.UsedPercent()))

	return snap, Render(r.out, stage, snap)
}
