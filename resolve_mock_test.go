//go:build wslpathmock

package wslpath_test

import (
	"context"
	"testing"

	wslpath "github.com/codekoriko/wsl-pathlib"
	wslmock "github.com/codekoriko/wsl-pathlib/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveWSL(t *testing.T) {
	t.Parallel()

	t.Run("preloaded fixture", func(t *testing.T) {
		t.Parallel()

		ctx := wslpath.WithMock(context.Background(), wslmock.New())

		got, err := wslpath.ResolveWSL(ctx, `C:\`)
		require.NoError(t, err, "ResolveWSL should not have failed")
		require.Equal(t, "/mnt/c/", got, "unexpected resolved path")
	})

	t.Run("custom fixture", func(t *testing.T) {
		t.Parallel()

		mock := wslmock.New()
		mock.WslPathResults[`-u C:\Users\me\Documents`] = "/mnt/c/Users/me/Documents"
		ctx := wslpath.WithMock(context.Background(), mock)

		got, err := wslpath.ResolveWSL(ctx, `C:\Users\me\Documents`)
		require.NoError(t, err, "ResolveWSL should not have failed")
		require.Equal(t, "/mnt/c/Users/me/Documents", got, "unexpected resolved path")
	})

	t.Run("error on missing fixture", func(t *testing.T) {
		t.Parallel()

		ctx := wslpath.WithMock(context.Background(), wslmock.New())

		_, err := wslpath.ResolveWSL(ctx, `Z:\nowhere`)
		require.Error(t, err, "ResolveWSL should have failed for a path with no fixture")
	})

	t.Run("error on injected failure", func(t *testing.T) {
		t.Parallel()

		mock := wslmock.New()
		mock.WslPathError = true
		ctx := wslpath.WithMock(context.Background(), mock)

		_, err := wslpath.ResolveWSL(ctx, `C:\`)
		require.Error(t, err, "ResolveWSL should have failed")
		require.ErrorIs(t, err, wslmock.Error{}, "the mock failure should surface through the public API")
	})
}

func TestResolveWindows(t *testing.T) {
	t.Parallel()

	t.Run("preloaded fixture", func(t *testing.T) {
		t.Parallel()

		ctx := wslpath.WithMock(context.Background(), wslmock.New())

		got, err := wslpath.ResolveWindows(ctx, "/")
		require.NoError(t, err, "ResolveWindows should not have failed")
		require.Equal(t, `\\wsl.localhost\Ubuntu\`, got, "unexpected resolved path")
	})

	t.Run("custom fixture", func(t *testing.T) {
		t.Parallel()

		mock := wslmock.New()
		mock.WslPathResults["-w /home/me"] = `\\wsl.localhost\Ubuntu\home\me`
		ctx := wslpath.WithMock(context.Background(), mock)

		got, err := wslpath.ResolveWindows(ctx, "/home/me")
		require.NoError(t, err, "ResolveWindows should not have failed")
		require.Equal(t, `\\wsl.localhost\Ubuntu\home\me`, got, "unexpected resolved path")
	})

	t.Run("error on injected failure", func(t *testing.T) {
		t.Parallel()

		mock := wslmock.New()
		mock.WslPathError = true
		ctx := wslpath.WithMock(context.Background(), mock)

		_, err := wslpath.ResolveWindows(ctx, "/")
		require.Error(t, err, "ResolveWindows should have failed")
		require.ErrorIs(t, err, wslmock.Error{}, "the mock failure should surface through the public API")
	})
}
