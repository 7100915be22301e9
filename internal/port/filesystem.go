package port

import "github.com/spf13/afero"

// FileSystem is the filesystem the probe session mutates.
// Production code uses afero.NewOsFs(); tests substitute in-memory or faulty ones.
type FileSystem = afero.Fs

// File is a handle returned by FileSystem
type File = afero.File
