package provider

import (
	"os"
	"path/filepath"

	"github.com/ardnew/inuse/pkg"
)

// Discover locates a configuration file by name, checking the starting
// directory and then each of its ancestors up to the filesystem root.
// An empty start searches from the current working directory.
//
// The returned path is absolute. A name that is already an existing path
// (absolute or relative) is resolved and returned without searching.
func Discover(name, start string) (string, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return filepath.Abs(name)
	}

	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", pkg.ErrFileNotFound.Wrap(err)
		}

		start = cwd
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", pkg.ErrFileNotFound.Wrap(err)
	}

	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", pkg.ErrFileNotFound.Wrapf(
				"%q not found in %q or any parent directory", name, start,
			)
		}

		dir = parent
	}
}
