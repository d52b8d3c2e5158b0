//go:build !linux

package host

import (
	"context"
	"errors"

	"github.com/ubuntu/decorate"
)

// WslPath translates a path by invoking wslpath inside the current distro.
// This implementation will always fail outside Linux.
func (Backend) WslPath(ctx context.Context, flag string, path string) (s string, err error) {
	defer decorate.OnError(&err, "could not run wslpath %s %q", flag, path)
	return "", errors.New("not implemented")
}
