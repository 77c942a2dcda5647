package fs

//go:generate mockgen -destination=fsmock/fs_mock.go -package=fsmock . LsmuxFS

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/fx"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// LsmuxFS wraps the filesystem operations used by lsmux.
type LsmuxFS interface {
	UserCacheDir() (string, error)
	MkdirAll(path string) error
	FileExists(path string) (bool, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data string) error
	TempFile(dir, pattern string) (*os.File, error)
	Remove(name string) error
	Glob(pattern string) ([]string, error)
	CopyFile(src, dst string, perm os.FileMode) error
	LookPath(file string) (string, error)
}

type fsImpl struct{}

// New creates a new LsmuxFS.
func New() LsmuxFS {
	return fsImpl{}
}

// UserCacheDir returns the user's cache directory.
func (fsImpl) UserCacheDir() (string, error) { return os.UserCacheDir() }

// MkdirAll creates a directory and all its parents.
func (fsImpl) MkdirAll(path string) error { return os.MkdirAll(path, os.ModePerm) }

func (fsImpl) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (fsImpl) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (fsImpl) WriteFile(name string, data string) error {
	return os.WriteFile(name, []byte(data), 0644)
}

func (fsImpl) TempFile(dir, pattern string) (*os.File, error) {
	return os.CreateTemp(dir, pattern)
}

func (fsImpl) Remove(name string) error {
	return os.Remove(name)
}

// Glob returns the names of all files matching pattern.
func (fsImpl) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

// CopyFile copies src to dst, creating or truncating dst with perm.
func (fsImpl) CopyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %q: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chmod(dst, perm)
}

// LookPath searches for an executable named file in the directories named by the PATH environment variable.
func (fsImpl) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
