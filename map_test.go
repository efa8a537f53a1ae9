package routekit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit"
	"github.com/dmitrymomot/routekit/local"
)

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("transforms output", func(t *testing.T) {
		t.Parallel()
		ep := routekit.Map(routekit.Value("foo"), func(string) string { return "bar" })

		v, ok, err := local.Apply(local.Get("/"), ep)
		require.True(t, ok)
		require.NoError(t, err)
		require.Equal(t, "bar", v)
	})

	t.Run("failure passes through untouched", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		ep := routekit.Map(routekit.FailWith[string](boom), func(string) string { return "unreached" })

		_, ok, err := local.Apply(local.Get("/"), ep)
		require.True(t, ok)
		require.ErrorIs(t, err, boom)
	})

	t.Run("decline passes through", func(t *testing.T) {
		t.Parallel()
		ep := routekit.Map(routekit.Unmatched[string](), func(string) string { return "unreached" })
		_, ok, _ := local.Apply(local.Get("/"), ep)
		require.False(t, ok)
	})
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	t.Run("chains a second asynchronous stage", func(t *testing.T) {
		t.Parallel()
		ep := routekit.AndThen(routekit.Value(21), func(v int) routekit.Task[int] {
			return routekit.Ready(v * 2)
		})

		v, ok, err := local.Apply(local.Get("/"), ep)
		require.True(t, ok)
		require.NoError(t, err)
		require.Equal(t, 42, v)
	})

	t.Run("second stage may fail", func(t *testing.T) {
		t.Parallel()
		ep := routekit.AndThen(routekit.Value(0), func(v int) routekit.Task[int] {
			return routekit.Failed[int](fmt.Errorf("cannot divide by %d", v))
		})

		_, ok, err := local.Apply(local.Get("/"), ep)
		require.True(t, ok)
		require.ErrorContains(t, err, "cannot divide by 0")
	})

	t.Run("first stage failure skips second stage", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		started := false
		ep := routekit.AndThen(routekit.FailWith[int](boom), func(int) routekit.Task[int] {
			started = true
			return routekit.Ready(0)
		})

		_, ok, err := local.Apply(local.Get("/"), ep)
		require.True(t, ok)
		require.ErrorIs(t, err, boom)
		require.False(t, started, "second stage must never start after a failure")
	})

	t.Run("slow first stage delays second stage", func(t *testing.T) {
		t.Parallel()
		ep := routekit.AndThen(slowValue("in", 3), func(s string) routekit.Task[string] {
			return routekit.Ready(s + "-out")
		})

		v, ok, err := local.Apply(local.Get("/"), ep)
		require.True(t, ok)
		require.NoError(t, err)
		require.Equal(t, "in-out", v)
	})
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	t.Run("transforms failure", func(t *testing.T) {
		t.Parallel()
		ep := routekit.MapErr(routekit.FailWith[string](errors.New("inner")), func(err error) error {
			return fmt.Errorf("wrapped: %w", err)
		})

		_, ok, err := local.Apply(local.Get("/"), ep)
		require.True(t, ok)
		require.EqualError(t, err, "wrapped: inner")
	})

	t.Run("success unaffected", func(t *testing.T) {
		t.Parallel()
		called := false
		ep := routekit.MapErr(routekit.Value("ok"), func(err error) error {
			called = true
			return err
		})

		v, ok, err := local.Apply(local.Get("/"), ep)
		require.True(t, ok)
		require.NoError(t, err)
		require.Equal(t, "ok", v)
		require.False(t, called)
	})
}

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("substitutes failure with fallback value", func(t *testing.T) {
		t.Parallel()
		ep := routekit.Recover(routekit.FailWith[int](errors.New("boom")), func(error) routekit.Task[int] {
			return routekit.Ready(-1)
		})

		v, ok, err := local.Apply(local.Get("/"), ep)
		require.True(t, ok)
		require.NoError(t, err)
		require.Equal(t, -1, v)
	})

	t.Run("receives the original error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		var seen error
		ep := routekit.Recover(routekit.FailWith[int](boom), func(err error) routekit.Task[int] {
			seen = err
			return routekit.Ready(0)
		})

		_, _, err := local.Apply(local.Get("/"), ep)
		require.NoError(t, err)
		require.ErrorIs(t, seen, boom)
	})

	t.Run("fallback failure is the final error", func(t *testing.T) {
		t.Parallel()
		final := errors.New("fallback failed")
		ep := routekit.Recover(routekit.FailWith[int](errors.New("boom")), func(error) routekit.Task[int] {
			return routekit.Failed[int](final)
		})

		_, ok, err := local.Apply(local.Get("/"), ep)
		require.True(t, ok)
		require.ErrorIs(t, err, final)
	})

	t.Run("success bypasses fallback", func(t *testing.T) {
		t.Parallel()
		called := false
		ep := routekit.Recover(routekit.Value(7), func(error) routekit.Task[int] {
			called = true
			return routekit.Ready(0)
		})

		v, _, err := local.Apply(local.Get("/"), ep)
		require.NoError(t, err)
		require.Equal(t, 7, v)
		require.False(t, called)
	})

	t.Run("recover on a required extractor downgrades bad request", func(t *testing.T) {
		t.Parallel()
		ep := routekit.Recover(
			routekit.ParamRequired(routekit.ParseUint32),
			func(error) routekit.Task[uint32] { return routekit.Ready[uint32](0) })

		v, ok, err := local.Apply(local.Get("/abc"), ep)
		require.True(t, ok)
		require.NoError(t, err)
		require.Equal(t, uint32(0), v)
	})
}
