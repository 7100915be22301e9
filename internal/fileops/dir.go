package fileops

import (
	"fmt"
	"os"
	"path/filepath"
)

// Chdir changes the working directory to target, or to the user's home
// directory when useHome is set. It returns the directory it moved to.
func Chdir(target string, useHome bool) (string, error) {
	if useHome {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("home directory not found: %w", err)
		}
		target = home
	}
	if target == "" {
		return "", fmt.Errorf("%w: invalid target directory", ErrUsage)
	}

	if err := os.Chdir(target); err != nil {
		return "", fmt.Errorf("failed to change directory to '%s': %w", target, err)
	}
	return target, nil
}

// FormatWorkingDir normalizes dir for display. Trailing separators are
// dropped except on a volume root such as "/" or `C:\`.
func FormatWorkingDir(dir string) string {
	return filepath.Clean(dir)
}

// WorkingDir returns the formatted current directory
func WorkingDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("path resolution failed: %w", err)
	}
	return FormatWorkingDir(dir), nil
}
