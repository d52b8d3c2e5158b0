package wslpath

// This file contains the filesystem probes. They operate on the raw path value
// and hand the outcome back untransformed, so callers get the exact os-package
// semantics they would get probing themselves.

import (
	"errors"
	"io/fs"
	"os"
)

// Exists reports whether the raw path value exists on the local filesystem.
// A missing file is not an error; any other failure is returned exactly as the
// os package reported it.
func (p *Path) Exists() (bool, error) {
	_, err := os.Stat(p.raw)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Stat delegates to os.Stat on the raw path value.
func (p *Path) Stat() (fs.FileInfo, error) {
	return os.Stat(p.raw)
}
