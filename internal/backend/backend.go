// Package backend defines all the actions that a back-end to wsl-pathlib must
// be able to perform in order to inspect the WSL environment, or otherwise
// mock it.
package backend

import (
	"context"
)

// RegistryKey mocks a very small subset of behaviours of a Windows Registry key,
// enough for the limited amount of traversal and reading that resolving
// distribution names needs.
type RegistryKey interface {
	Close() error
	Field(name string) (string, error)
	SubkeyNames() ([]string, error)
}

// Backend defines what a back-end to wsl-pathlib must be able to do or mock.
type Backend interface {
	// Linux side of the boundary
	ProcVersion() (string, error)
	WslConfig() ([]byte, error)
	ProcMounts() ([]byte, error)
	DistroName() (name string, ok bool)

	// Windows registry
	OpenLxssRegistry(path string) (RegistryKey, error)

	// wslpath(1)
	WslPath(ctx context.Context, flag string, path string) (string, error)
}
