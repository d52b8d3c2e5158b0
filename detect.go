package wslpath

// This file contains the detection of the WSL environment itself: whether the
// current process runs inside a distro, and which one.

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/0xrawsec/golang-utils/log"
	"github.com/ubuntu/decorate"
)

// ErrNotWSL is returned by environment queries when the current process does
// not run inside a WSL distro.
var ErrNotWSL = errors.New("not running inside WSL")

// IsWSL reports whether the current process runs inside a WSL distro, based on
// the kernel banner in /proc/version mentioning Microsoft.
func IsWSL(ctx context.Context) bool {
	version, err := selectBackend(ctx).ProcVersion()
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	if err != nil {
		log.Warnf("wslpath: could not read the kernel banner: %v", err)
		return false
	}

	version = strings.ToLower(version)
	return strings.Contains(version, "microsoft") || strings.Contains(version, "wsl")
}

// CurrentDistro returns the name of the distro the current process runs in, as
// advertised by the WSL_DISTRO_NAME environment variable. Returns ErrNotWSL
// outside a distro.
func CurrentDistro(ctx context.Context) (name string, err error) {
	defer decorate.OnError(&err, "could not determine the current distro")

	name, ok := selectBackend(ctx).DistroName()
	if !ok || name == "" {
		return "", ErrNotWSL
	}
	return name, nil
}
