package capglob

import "os"

// FileSystem is the set of filesystem capabilities a Globber needs. The
// resolver performs no other I/O, so supplying an implementation is enough to
// glob over anything directory-shaped - a real disk, an archive, a fake tree
// in a test.
type FileSystem interface {
	// ListDir returns the names of the entries in the directory. Globbing
	// treats any error as "this directory contributes nothing" and keeps
	// going.
	ListDir(dir string) ([]string, error)

	// Exists reports whether the path exists, without dereferencing it: a
	// broken symlink exists.
	Exists(path string) bool

	// IsDir reports whether the path is a directory (following symlinks).
	IsDir(path string) bool

	// IsLink reports whether the path is a symlink.
	IsLink(path string) bool
}

// osFS is the default FileSystem, backed by the os package.
type osFS struct{}

func (osFS) ListDir(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ents))
	for _, e := range ents {
		names = append(names, e.Name())
	}
	return names, nil
}

func (osFS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (osFS) IsDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func (osFS) IsLink(path string) bool {
	fi, err := os.Lstat(path)
	return err == nil && fi.Mode()&os.ModeSymlink != 0
}
