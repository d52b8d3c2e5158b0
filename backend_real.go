//go:build !wslpathmock

package wslpath

import (
	"context"

	"github.com/codekoriko/wsl-pathlib/internal/backend"
	"github.com/codekoriko/wsl-pathlib/internal/backend/host"
)

func selectBackend(ctx context.Context) backend.Backend {
	return host.Backend{}
}
