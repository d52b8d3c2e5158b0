//go:build !wslpathmock

// This file contains the implementation of testutils geared towards the production back-end.

package wslpath_test

import (
	"context"
)

// mockBackend reports whether the test binary was built against the mock
// back-end.
const mockBackend = false

// testContext returns ctx unchanged: production builds probe the real system.
func testContext(ctx context.Context) context.Context {
	return ctx
}
