package fileops

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

// CopyChunkSize is the buffer used by Copy
const CopyChunkSize = 256

// Copy copies src to dst in CopyChunkSize pieces, creating or truncating dst.
// Failures are reported as *StepError so callers can derive the exit status.
func Copy(fs afero.Fs, src, dst string) (err error) {
	in, err := fs.Open(src)
	if err != nil {
		return &StepError{Step: StepOpen, Path: src, Err: err}
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return &StepError{Step: StepCreate, Path: dst, Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			err = multierr.Append(err, &StepError{Step: StepWrite, Path: dst, Err: cerr})
		}
	}()

	buf := make([]byte, CopyChunkSize)
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return &StepError{Step: StepWrite, Path: dst, Err: werr}
			}
		}
		if errors.Is(rerr, io.EOF) {
			return nil
		}
		if rerr != nil {
			return &StepError{Step: StepRead, Path: src, Err: rerr}
		}
	}
}
