// Package mock simulates the WSL environment that wsl-pathlib probes, useful
// for tests as it allows parallelism, decoupling, and execution speed.
package mock

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/ubuntu/decorate"
)

// Backend implements the Backend interface.
type Backend struct {
	lxssRootKey *RegistryKey // Registry mock

	// Fixtures. New preloads them with a healthy WSL2 session; overwrite them
	// to shape the simulated machine.
	ProcVersionContents string
	WslConfContents     string // The empty string simulates an absent /etc/wsl.conf.
	ProcMountsContents  string // The empty string simulates an absent /proc/mounts.
	DistroNameEnv       string // The empty string simulates an unset WSL_DISTRO_NAME.

	// WslPathResults holds the translations the mock wslpath binary knows,
	// keyed "<flag> <path>".
	WslPathResults map[string]string

	// Error injectors. These all have the form of:
	//
	// NameOfTheFunctionError
	//
	// Their effect is to make the relevant function return an error of type
	// mock.Error instantly upon being called.
	ProcVersionError bool
	WslConfigError   bool
	ProcMountsError  bool
	OpenLxssKeyError bool
	WslPathError     bool
}

// DefaultDistroGUID is the Lxss subkey the preloaded default distro sits under.
const DefaultDistroGUID = "{61c54bbd-c2c6-5271-96e7-009a87ff44bf}"

// defaultProcMounts mimics the mount table of a WSL2 distro with two drives.
const defaultProcMounts = `/dev/sdc / ext4 rw,relatime,discard,errors=remount-ro,data=ordered 0 0
none /mnt/wsl tmpfs rw,relatime 0 0
none /usr/lib/wsl/drivers 9p ro,dirsync,aname=drivers;fmask=222;dmask=222,mmap,access=client 0 0
proc /proc proc rw,nosuid,nodev,noexec,relatime 0 0
C:\134 /mnt/c 9p rw,noatime,dirsync,aname=drvfs;path=C:\;uid=1000;gid=1000,mmap,access=client 0 0
D:\134 /mnt/d 9p rw,noatime,dirsync,aname=drvfs;path=D:\;uid=1000;gid=1000,mmap,access=client 0 0
`

// New constructs a new mocked back-end simulating a WSL2 Ubuntu session.
func New() *Backend {
	return &Backend{
		ProcVersionContents: "Linux version 5.15.167.4-microsoft-standard-WSL2 (root@f9c826d3017f) (gcc (GCC) 11.2.0) #1 SMP Tue Nov 5 00:21:55 UTC 2024",
		ProcMountsContents:  defaultProcMounts,
		DistroNameEnv:       "Ubuntu",
		WslPathResults: map[string]string{
			`-u C:\`: "/mnt/c/",
			"-w /":   `\\wsl.localhost\Ubuntu\`,
		},
		lxssRootKey: &RegistryKey{
			path: lxssPath,
			children: map[string]*RegistryKey{
				"AppxInstallerCache": {
					path: filepath.Join(lxssPath, "AppxInstallerCache"),
				},
				DefaultDistroGUID: {
					path: filepath.Join(lxssPath, DefaultDistroGUID),
					Data: map[string]any{
						"DistributionName": "Ubuntu",
					},
				},
			},
			Data: map[string]any{
				"DefaultDistribution": DefaultDistroGUID,
			},
		},
	}
}

// ResetErrors sets all the error flags to false.
func (b *Backend) ResetErrors() {
	b.ProcVersionError = false
	b.WslConfigError = false
	b.ProcMountsError = false
	b.OpenLxssKeyError = false
	b.WslPathError = false
}

// ProcVersion returns the mocked kernel banner.
func (b *Backend) ProcVersion() (string, error) {
	if b.ProcVersionError {
		return "", Error{}
	}
	return b.ProcVersionContents, nil
}

// WslConfig returns the mocked wsl.conf contents. An empty fixture simulates a
// machine without the file.
func (b *Backend) WslConfig() ([]byte, error) {
	if b.WslConfigError {
		return nil, Error{}
	}
	if b.WslConfContents == "" {
		return nil, fs.ErrNotExist
	}
	return []byte(b.WslConfContents), nil
}

// ProcMounts returns the mocked mount table. An empty fixture simulates a
// machine without one.
func (b *Backend) ProcMounts() ([]byte, error) {
	if b.ProcMountsError {
		return nil, Error{}
	}
	if b.ProcMountsContents == "" {
		return nil, fs.ErrNotExist
	}
	return []byte(b.ProcMountsContents), nil
}

// DistroName returns the mocked WSL_DISTRO_NAME value.
func (b *Backend) DistroName() (string, bool) {
	return b.DistroNameEnv, b.DistroNameEnv != ""
}

// WslPath translates a path by looking it up in the WslPathResults fixture.
func (b *Backend) WslPath(ctx context.Context, flag string, path string) (value string, err error) {
	defer decorate.OnError(&err, "mock wslpath %s %q", flag, path)

	if b.WslPathError {
		return "", Error{}
	}

	value, ok := b.WslPathResults[flag+" "+path]
	if !ok {
		return "", errors.New("no fixture registered for this translation")
	}
	return value, nil
}

// Error is an error triggered by the mock, and not a real problem.
type Error struct{}

func (err Error) Error() string {
	return "error triggered by mock"
}
