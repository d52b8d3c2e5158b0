package host

// This file contains the subprocess calls to wslpath(1), the translation tool
// shipped inside every distro.

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// WslPath translates a path by invoking wslpath with the given flag.
//
// It is analogous to
//
//	`wslpath <flag> <path>`
func (Backend) WslPath(ctx context.Context, flag string, path string) (string, error) {
	out, err := exec.CommandContext(ctx, "wslpath", flag, path).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("error running wslpath %s %q: %v: %s", flag, path, err, out)
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}
