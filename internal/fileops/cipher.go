package fileops

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

// CipherChunkSize is the buffer used by Cipher
const CipherChunkSize = 4096

// ParseShift parses a non-negative shift amount
func ParseShift(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: shift must be a positive integer", ErrUsage)
	}
	return uint32(n), nil
}

// ShiftBytes replaces every byte b in buf with (b + shift) mod 256
func ShiftBytes(buf []byte, shift uint32) {
	k := byte(shift % 256)
	for i := range buf {
		buf[i] += k
	}
}

// Cipher writes input shifted by shift to output, creating or truncating output
func Cipher(fs afero.Fs, input, output string, shift uint32) (err error) {
	in, err := fs.Open(input)
	if err != nil {
		return &StepError{Step: StepOpen, Path: input, Err: err}
	}
	defer in.Close()

	out, err := fs.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return &StepError{Step: StepCreate, Path: output, Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			err = multierr.Append(err, &StepError{Step: StepWrite, Path: output, Err: cerr})
		}
	}()

	r := bufio.NewReaderSize(in, CipherChunkSize)
	w := bufio.NewWriterSize(out, CipherChunkSize)

	buf := make([]byte, CipherChunkSize)
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			ShiftBytes(buf[:n], shift)
			if _, werr := w.Write(buf[:n]); werr != nil {
				return &StepError{Step: StepWrite, Path: output, Err: werr}
			}
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return &StepError{Step: StepRead, Path: input, Err: rerr}
		}
	}

	if err := w.Flush(); err != nil {
		return &StepError{Step: StepWrite, Path: output, Err: err}
	}
	return nil
}
