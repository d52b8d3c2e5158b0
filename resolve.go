package wslpath

// This file contains the escape hatch to wslpath(1), the authoritative
// translator shipped inside every distro. It knows the schemes the pure
// translations reject on purpose: symlinks, network drives, custom mounts.

import (
	"context"

	"github.com/ubuntu/decorate"
)

// ResolveWSL asks wslpath(1) for the location of a Windows path inside the
// current distro.
//
// It is analogous to
//
//	`wslpath -u <winPath>`
//
// Only available inside a distro.
func ResolveWSL(ctx context.Context, winPath string) (s string, err error) {
	defer decorate.OnError(&err, "could not resolve %q to the WSL form", winPath)
	return selectBackend(ctx).WslPath(ctx, "-u", winPath)
}

// ResolveWindows asks wslpath(1) for the Windows spelling of a path inside the
// current distro. Unlike the drive-letter translations, it renders any
// absolute path, falling back to the \\wsl.localhost share.
//
// It is analogous to
//
//	`wslpath -w <path>`
//
// Only available inside a distro.
func ResolveWindows(ctx context.Context, path string) (s string, err error) {
	defer decorate.OnError(&err, "could not resolve %q to the Windows form", path)
	return selectBackend(ctx).WslPath(ctx, "-w", path)
}
