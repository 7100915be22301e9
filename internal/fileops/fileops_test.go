package fileops

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"testing"
	"testing/iotest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faultyFs wraps a filesystem so reads or writes on opened files fail
type faultyFs struct {
	afero.Fs
	readErr  error
	writeErr error
}

func (f *faultyFs) Open(name string) (afero.File, error) {
	file, err := f.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	return &faultyFile{File: file, fs: f}, nil
}

func (f *faultyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := f.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &faultyFile{File: file, fs: f}, nil
}

type faultyFile struct {
	afero.File
	fs *faultyFs
}

func (f *faultyFile) Read(p []byte) (int, error) {
	if f.fs.readErr != nil {
		return 0, f.fs.readErr
	}
	return f.File.Read(p)
}

func (f *faultyFile) Write(p []byte) (int, error) {
	if f.fs.writeErr != nil {
		return 0, f.fs.writeErr
	}
	return f.File.Write(p)
}

func pattern(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i * 7)
	}
	return data
}

func TestCopy(t *testing.T) {
	sizes := []int{0, 1, CopyChunkSize - 1, CopyChunkSize, CopyChunkSize + 1, 10*CopyChunkSize + 3}

	for _, size := range sizes {
		fs := afero.NewMemMapFs()
		data := pattern(size)
		require.NoError(t, afero.WriteFile(fs, "src", data, 0644))
		require.NoError(t, afero.WriteFile(fs, "dst", []byte("old contents that are longer"), 0644))

		require.NoError(t, Copy(fs, "src", "dst"), "size %d", size)

		got, err := afero.ReadFile(fs, "dst")
		require.NoError(t, err)
		assert.Equal(t, data, got, "size %d", size)
	}
}

func TestCopy_Failures(t *testing.T) {
	tests := []struct {
		name     string
		fs       func() afero.Fs
		wantStep Step
		wantPath string
	}{
		{
			name:     "missing source",
			fs:       afero.NewMemMapFs,
			wantStep: StepOpen,
			wantPath: "src",
		},
		{
			name: "read-only destination",
			fs: func() afero.Fs {
				base := afero.NewMemMapFs()
				afero.WriteFile(base, "src", []byte("data"), 0644)
				return afero.NewReadOnlyFs(base)
			},
			wantStep: StepCreate,
			wantPath: "dst",
		},
		{
			name: "read error",
			fs: func() afero.Fs {
				base := afero.NewMemMapFs()
				afero.WriteFile(base, "src", []byte("data"), 0644)
				return &faultyFs{Fs: base, readErr: syscall.EIO}
			},
			wantStep: StepRead,
			wantPath: "src",
		},
		{
			name: "write error",
			fs: func() afero.Fs {
				base := afero.NewMemMapFs()
				afero.WriteFile(base, "src", []byte("data"), 0644)
				return &faultyFs{Fs: base, writeErr: syscall.ENOSPC}
			},
			wantStep: StepWrite,
			wantPath: "dst",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Copy(tt.fs(), "src", "dst")
			require.Error(t, err)

			var se *StepError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.wantStep, se.Step)
			assert.Equal(t, tt.wantPath, se.Path)
			assert.Equal(t, int(tt.wantStep), ExitCode(err))
			assert.True(t, strings.HasPrefix(err.Error(), tt.wantPath+": "))
		})
	}
}

func TestShiftBytes(t *testing.T) {
	tests := []struct {
		name  string
		in    []byte
		shift uint32
		want  []byte
	}{
		{name: "zero shift", in: []byte("abc"), shift: 0, want: []byte("abc")},
		{name: "classic", in: []byte("abc"), shift: 3, want: []byte("def")},
		{name: "wraps", in: []byte{250, 255}, shift: 10, want: []byte{4, 9}},
		{name: "full turn", in: []byte{1, 2, 3}, shift: 256, want: []byte{1, 2, 3}},
		{name: "large shift", in: []byte{0}, shift: 4294967295, want: []byte{255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append([]byte(nil), tt.in...)
			ShiftBytes(buf, tt.shift)
			assert.Equal(t, tt.want, buf)
		})
	}
}

func TestCipher_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := pattern(3*CipherChunkSize + 17)
	require.NoError(t, afero.WriteFile(fs, "plain", data, 0644))

	require.NoError(t, Cipher(fs, "plain", "enc", 3))
	require.NoError(t, Cipher(fs, "enc", "dec", 253))

	enc, err := afero.ReadFile(fs, "enc")
	require.NoError(t, err)
	assert.Len(t, enc, len(data))
	assert.Equal(t, data[1]+3, enc[1])

	dec, err := afero.ReadFile(fs, "dec")
	require.NoError(t, err)
	assert.Equal(t, data, dec)
}

func TestCipher_MissingInput(t *testing.T) {
	err := Cipher(afero.NewMemMapFs(), "nope", "out", 1)
	assert.Equal(t, 2, ExitCode(err))
}

func TestParseShift(t *testing.T) {
	n, err := ParseShift("13")
	require.NoError(t, err)
	assert.Equal(t, uint32(13), n)

	for _, bad := range []string{"", "-1", "abc", "4294967296", "1.5"} {
		_, err := ParseShift(bad)
		assert.True(t, errors.Is(err, ErrUsage), "input %q", bad)
	}
}

func TestConcat(t *testing.T) {
	data := pattern(5*CatChunkSize + 9)
	var out bytes.Buffer

	require.NoError(t, Concat(&out, iotest.HalfReader(bytes.NewReader(data)), false))
	assert.Equal(t, data, out.Bytes())
}

func TestConcat_Errors(t *testing.T) {
	readErr := iotest.ErrReader(syscall.EIO)

	assert.ErrorIs(t, Concat(&bytes.Buffer{}, readErr, false), syscall.EIO)
	assert.NoError(t, Concat(&bytes.Buffer{}, iotest.ErrReader(syscall.EIO), true))

	assert.ErrorIs(t, Concat(errWriter{}, strings.NewReader("x"), false), syscall.EPIPE)
	assert.NoError(t, Concat(errWriter{}, strings.NewReader("x"), true))
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestCatFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a", []byte("alpha\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "b", []byte("beta\n"), 0644))

	var out, errOut bytes.Buffer
	failed := CatFiles(fs, &out, &errOut, []string{"a", "missing", "b"}, false)

	assert.Equal(t, 1, failed)
	assert.Equal(t, "alpha\nbeta\n", out.String())
	assert.Contains(t, errOut.String(), "Error opening file: missing: ")
}

func TestCatFiles_Suppressed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a", []byte("alpha\n"), 0644))

	var out, errOut bytes.Buffer
	failed := CatFiles(fs, &out, &errOut, []string{"missing", "a"}, true)

	assert.Equal(t, 1, failed)
	assert.Equal(t, "alpha\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestFormatWorkingDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		assert.Equal(t, `C:\`, FormatWorkingDir(`C:\`))
		assert.Equal(t, `C:\Users`, FormatWorkingDir(`C:\Users\`))
		return
	}
	assert.Equal(t, "/", FormatWorkingDir("/"))
	assert.Equal(t, "/home/user", FormatWorkingDir("/home/user/"))
	assert.Equal(t, "/tmp", FormatWorkingDir("/tmp"))
}

func TestChdir(t *testing.T) {
	testChdir(t, t.TempDir())
	target := t.TempDir()

	got, err := Chdir(target, false)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	wd, err := WorkingDir()
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, want, gotResolved)
}

func TestChdir_Invalid(t *testing.T) {
	testChdir(t, t.TempDir())

	_, err := Chdir("", false)
	assert.True(t, errors.Is(err, ErrUsage))

	_, err = Chdir(filepath.Join(t.TempDir(), "missing"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to change directory to")
	assert.Equal(t, 1, ExitCode(err))
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "open", StepOpen.String())
	assert.Equal(t, "write", StepWrite.String())
	assert.Equal(t, "step(9)", Step(9).String())
}

func TestParseCatArgs(t *testing.T) {
	suppress, files := ParseCatArgs([]string{"a.txt", "-n", "-s", "--verbose", "b.txt", "-"})
	assert.True(t, suppress)
	assert.Equal(t, []string{"a.txt", "b.txt"}, files)

	suppress, files = ParseCatArgs(nil)
	assert.False(t, suppress)
	assert.Empty(t, files)
}

// testChdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24)
func testChdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
