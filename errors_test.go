package routekit_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit"
)

func TestIsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct HTTPError", func(t *testing.T) {
		t.Parallel()
		err := routekit.ErrNotFound("not found")
		require.True(t, routekit.IsHTTPError(err))
	})

	t.Run("wrapped HTTPError", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("task failed: %w", routekit.ErrBadRequest("bad request"))
		require.True(t, routekit.IsHTTPError(err))
	})

	t.Run("unrelated error", func(t *testing.T) {
		t.Parallel()
		require.False(t, routekit.IsHTTPError(errors.New("something went wrong")))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		require.False(t, routekit.IsHTTPError(nil))
	})
}

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct HTTPError", func(t *testing.T) {
		t.Parallel()
		got := routekit.AsHTTPError(routekit.ErrNotFound("not found"))
		require.NotNil(t, got)
		require.Equal(t, http.StatusNotFound, got.Code)
		require.Equal(t, "not found", got.Message)
	})

	t.Run("wrapped HTTPError preserves fields", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("strconv failed")
		err := fmt.Errorf("extractor: %w", routekit.ErrBadRequest("invalid id", routekit.WithError(cause)))

		got := routekit.AsHTTPError(err)
		require.NotNil(t, got)
		require.Equal(t, http.StatusBadRequest, got.Code)
		require.ErrorIs(t, got.Err, cause)
	})

	t.Run("unrelated error returns nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, routekit.AsHTTPError(errors.New("plain error")))
	})

	t.Run("nil returns nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, routekit.AsHTTPError(nil))
	})
}

func TestHTTPErrorAccessors(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	err := routekit.NewHTTPError(http.StatusServiceUnavailable, "try later", routekit.WithError(cause))

	require.Equal(t, "try later", err.Error())
	require.Equal(t, http.StatusServiceUnavailable, err.StatusCode())
	require.Equal(t, "Service Unavailable", err.StatusText())
	require.ErrorIs(t, err, cause)
}
