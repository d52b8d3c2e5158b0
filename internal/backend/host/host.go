// Package host contains the production backend. It is the one used in
// production code, and reads the real proc files, environment variables and
// registry of the machine it runs on.
//
// The registry functions only work on Windows, and the wslpath functions only
// work inside a distro. Either returns an error everywhere else.
package host

import (
	"os"
)

// Backend implements the Backend interface.
type Backend struct{}

// ProcVersion returns the kernel banner in /proc/version.
func (Backend) ProcVersion() (string, error) {
	out, err := os.ReadFile("/proc/version")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// WslConfig returns the contents of /etc/wsl.conf. The file is optional, so
// absence is reported as fs.ErrNotExist rather than handled here.
func (Backend) WslConfig() ([]byte, error) {
	return os.ReadFile("/etc/wsl.conf")
}

// ProcMounts returns the contents of the mount table in /proc/mounts.
func (Backend) ProcMounts() ([]byte, error) {
	return os.ReadFile("/proc/mounts")
}

// DistroName returns the name of the distro the current process runs in, as
// advertised in the environment.
func (Backend) DistroName() (string, bool) {
	return os.LookupEnv("WSL_DISTRO_NAME")
}
