package scaffold

import (
	"os"

	"github.com/crafthq/craft-cli/pkg/xos"
)

// Filesystem is the target-filesystem contract the generator writes
// through. It is the sole persisted-state boundary of a generation run.
type Filesystem interface {
	Exists(path string) bool
	CreateDir(path string) error
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Rename(oldpath, newpath string) error
}

// OSFilesystem writes to the local disk. Individual file writes are
// atomic via temp-file-and-rename.
type OSFilesystem struct{}

func (OSFilesystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSFilesystem) CreateDir(path string) error {
	return xos.CreateDir(path, 0o755)
}

func (OSFilesystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OSFilesystem) WriteFile(path string, data []byte) error {
	return xos.WriteFile(path, data, 0o644)
}

func (OSFilesystem) Rename(oldpath, newpath string) error {
	return xos.Rename(oldpath, newpath)
}
