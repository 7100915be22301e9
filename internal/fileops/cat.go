package fileops

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// CatChunkSize is the buffer used by Concat
const CatChunkSize = 512

// Concat copies r to w in CatChunkSize pieces. With suppress set, a read or
// write failure ends the stream quietly instead of being returned.
func Concat(w io.Writer, r io.Reader, suppress bool) error {
	buf := make([]byte, CatChunkSize)
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				if suppress {
					return nil
				}
				return werr
			}
		}
		if errors.Is(rerr, io.EOF) {
			return nil
		}
		if rerr != nil {
			if suppress {
				return nil
			}
			return rerr
		}
	}
}

// CatFiles writes each file in paths to w. Problems with one file are
// reported on errw unless suppress is set, and the next file is tried.
// It returns the number of files that could not be fully copied.
func CatFiles(fs afero.Fs, w, errw io.Writer, paths []string, suppress bool) int {
	failed := 0
	for _, path := range paths {
		f, err := fs.Open(path)
		if err != nil {
			failed++
			if !suppress {
				fmt.Fprintf(errw, "Error opening file: %s: %v\n", path, err)
			}
			continue
		}

		if err := Concat(w, f, suppress); err != nil {
			failed++
			fmt.Fprintf(errw, "Error processing file: %s: %v\n", path, err)
		}
		f.Close()
	}
	return failed
}

// ParseCatArgs splits a cat command line. "-s" enables error suppression,
// any other argument starting with '-' is ignored and the rest are files.
func ParseCatArgs(args []string) (suppress bool, files []string) {
	for _, arg := range args {
		switch {
		case arg == "-s":
			suppress = true
		case strings.HasPrefix(arg, "-"):
			continue
		default:
			files = append(files, arg)
		}
	}
	return suppress, files
}
