package wslpath

// This file contains the two package-level translations, using the rules of a
// stock WSL install.

import (
	"errors"

	"github.com/ubuntu/decorate"
)

// ErrUnsupportedPath is returned when a value matches neither the Windows
// drive convention nor the WSL automount convention. Match it with errors.Is.
var ErrUnsupportedPath = errors.New("path matches neither the Windows nor the WSL convention")

// ToWSL translates a Windows drive path to where WSL mounts it:
// C:\foo\bar becomes /mnt/c/foo/bar.
//
// The drive letter is lower-cased and both separator conventions are accepted
// on input. The Windows-form check is intentionally minimal: any value whose
// second character is a colon qualifies, anything else is rejected with
// ErrUnsupportedPath. In particular UNC spellings and paths rooted inside the
// distro have no drive form; see SplitUNCPath and UNCPath for those.
func ToWSL(winPath string) (s string, err error) {
	defer decorate.OnError(&err, "could not translate %q to the WSL form", winPath)
	return defaultConverter.toWSL(winPath)
}

// ToWindows translates a path under the default automount root back to its
// Windows drive spelling: /mnt/c/foo/bar becomes C:\foo\bar.
//
// The path must start with /mnt/ followed by a single drive letter; anything
// else is rejected with ErrUnsupportedPath.
func ToWindows(wslPath string) (s string, err error) {
	defer decorate.OnError(&err, "could not translate %q to the Windows form", wslPath)
	return defaultConverter.toWindows(wslPath)
}
