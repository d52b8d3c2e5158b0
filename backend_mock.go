//go:build wslpathmock

package wslpath

import (
	"context"

	"github.com/codekoriko/wsl-pathlib/internal/backend"
	"github.com/codekoriko/wsl-pathlib/internal/backend/host"
	"github.com/codekoriko/wsl-pathlib/mock"
)

type backendQueryType int

const backendQuery backendQueryType = 0

// WithMock adds the mock back-end to the context.
func WithMock(ctx context.Context, backend *mock.Backend) context.Context {
	return context.WithValue(ctx, backendQuery, backend)
}

func selectBackend(ctx context.Context) backend.Backend {
	v := ctx.Value(backendQuery)

	if v == nil {
		return host.Backend{}
	}

	//nolint: forcetypeassert // The panic is expected and welcome
	return v.(backend.Backend)
}
