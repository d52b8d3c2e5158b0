package wslpath

// This file contains the path form enum.

import "fmt"

// Form is the spelling convention a path value follows.
type Form int

const (
	// FormOther is any value matching neither convention.
	FormOther Form = iota
	// FormWindows is the drive-letter convention: C:\foo\bar.
	FormWindows
	// FormWSL is the automount convention: /mnt/c/foo/bar.
	FormWSL
)

// DetectForm returns the convention path follows under the default conversion
// rules. The Windows check is intentionally minimal: a value is Windows-form
// when its second character is a colon, nothing more.
func DetectForm(path string) Form {
	return defaultConverter.DetectForm(path)
}

func (f Form) String() string {
	switch f {
	case FormOther:
		return "Other"
	case FormWindows:
		return "Windows"
	case FormWSL:
		return "WSL"
	}

	return fmt.Sprintf("Unknown form %d", f)
}
