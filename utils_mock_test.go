//go:build wslpathmock

// This file contains the implementation of testutils geared towards the mock back-end.

package wslpath_test

import (
	"context"

	wslpath "github.com/codekoriko/wsl-pathlib"
	wslmock "github.com/codekoriko/wsl-pathlib/mock"
)

// mockBackend reports whether the test binary was built against the mock
// back-end.
const mockBackend = true

// testContext attaches a freshly fixtured mock back-end simulating a WSL2
// Ubuntu session.
func testContext(ctx context.Context) context.Context {
	return wslpath.WithMock(ctx, wslmock.New())
}
