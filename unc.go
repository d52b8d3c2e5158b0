package wslpath

// This file contains the UNC rendering of paths rooted inside a distro. The
// drive-letter translations reject those on purpose; the \\wsl.localhost share
// served by WSL's file server is their Windows spelling.

import (
	"errors"
	"strings"

	"github.com/ubuntu/decorate"
)

const (
	uncHost       = `\\wsl.localhost`
	uncHostLegacy = `\\wsl$`
)

// UNCPath renders an absolute Linux path as the UNC spelling served by the WSL
// file server: /home/u inside Ubuntu becomes \\wsl.localhost\Ubuntu\home\u.
func UNCPath(distro, linuxPath string) (s string, err error) {
	defer decorate.OnError(&err, "could not render %q as a UNC path", linuxPath)
	return uncPath(distro, linuxPath)
}

func uncPath(distro, linuxPath string) (string, error) {
	if distro == "" {
		return "", errors.New("empty distro name")
	}
	if !strings.HasPrefix(linuxPath, "/") {
		return "", ErrUnsupportedPath
	}

	segs := segments(linuxPath, "/")
	if len(segs) == 0 {
		return uncHost + `\` + distro + `\`, nil
	}
	return uncHost + `\` + distro + `\` + strings.Join(segs, `\`), nil
}

// SplitUNCPath splits a \\wsl.localhost\<distro>\<path> spelling into the
// distro name and the absolute Linux path. The legacy \\wsl$ host is accepted
// too, and host matching is case-insensitive.
func SplitUNCPath(uncPath string) (distro, linuxPath string, err error) {
	defer decorate.OnError(&err, "could not split %q as a WSL UNC path", uncPath)

	rest, ok := trimUNCHost(uncPath)
	if !ok {
		return "", "", ErrUnsupportedPath
	}

	tail := ""
	if i := strings.IndexAny(rest, `\/`); i >= 0 {
		rest, tail = rest[:i], rest[i+1:]
	}
	if rest == "" {
		return "", "", ErrUnsupportedPath
	}

	return rest, "/" + strings.Join(segments(tail, `\/`), "/"), nil
}

// WindowsUNC renders an absolute Linux path as its UNC spelling for this
// converter's distro.
func (c *Converter) WindowsUNC(linuxPath string) (s string, err error) {
	defer decorate.OnError(&err, "could not render %q as a UNC path", linuxPath)

	if c.distro == "" {
		return "", errors.New("converter has no distro name")
	}
	return uncPath(c.distro, linuxPath)
}

// trimUNCHost strips the WSL file server host from a UNC path, reporting
// whether there was one.
func trimUNCHost(path string) (rest string, ok bool) {
	lower := strings.ToLower(path)
	for _, host := range []string{uncHost + `\`, uncHostLegacy + `\`} {
		if strings.HasPrefix(lower, host) {
			return path[len(host):], true
		}
	}
	return "", false
}
