package routekit_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit"
	"github.com/dmitrymomot/routekit/local"
)

func TestSegment(t *testing.T) {
	t.Parallel()

	t.Run("matches equal literal and consumes one segment", func(t *testing.T) {
		t.Parallel()
		c := newApplyContext(t, "GET", "/foo/bar")

		task, ok := routekit.Segment("foo").Apply(c)
		require.True(t, ok)
		require.NotNil(t, task)
		require.Equal(t, 1, c.Cursor().Pos())
	})

	t.Run("declines different literal", func(t *testing.T) {
		t.Parallel()
		_, ok, err := local.Apply(local.Get("/foo"), routekit.Segment("bar"))
		require.False(t, ok)
		require.NoError(t, err)
	})

	t.Run("declines exhausted path", func(t *testing.T) {
		t.Parallel()
		_, ok, _ := local.Apply(local.Get("/"), routekit.Segment("foo"))
		require.False(t, ok)
	})

	t.Run("comparison is case sensitive", func(t *testing.T) {
		t.Parallel()
		_, ok, _ := local.Apply(local.Get("/Foo"), routekit.Segment("foo"))
		require.False(t, ok)
	})

	t.Run("matches decoded segment", func(t *testing.T) {
		t.Parallel()
		_, ok, err := local.Apply(local.Get("/a%20b"), routekit.Segment("a b"))
		require.True(t, ok)
		require.NoError(t, err)
	})
}

func TestPath(t *testing.T) {
	t.Parallel()

	t.Run("matches multi segment prefix", func(t *testing.T) {
		t.Parallel()
		_, ok, err := local.Apply(local.Get("/api/v1/posts"), routekit.Path("api/v1/posts"))
		require.True(t, ok)
		require.NoError(t, err)
	})

	t.Run("surrounding slashes ignored", func(t *testing.T) {
		t.Parallel()
		_, ok, _ := local.Apply(local.Get("/api/v1"), routekit.Path("/api/v1/"))
		require.True(t, ok)
	})

	t.Run("declines short path", func(t *testing.T) {
		t.Parallel()
		_, ok, _ := local.Apply(local.Get("/api"), routekit.Path("api/v1"))
		require.False(t, ok)
	})

	t.Run("empty pattern panics", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() { routekit.Path("/") })
		require.Panics(t, func() { routekit.Path("api//v1") })
	})
}

func TestEOS(t *testing.T) {
	t.Parallel()

	t.Run("matches consumed path without consuming", func(t *testing.T) {
		t.Parallel()
		c := newApplyContext(t, "GET", "/")
		_, ok := routekit.EOS().Apply(c)
		require.True(t, ok)
		require.Equal(t, 0, c.Cursor().Pos())
	})

	t.Run("declines leftover segments", func(t *testing.T) {
		t.Parallel()
		_, ok, _ := local.Apply(local.Get("/foo"), routekit.EOS())
		require.False(t, ok)
	})
}

func TestParam(t *testing.T) {
	t.Parallel()

	t.Run("extracts typed segment", func(t *testing.T) {
		t.Parallel()
		v, ok, err := local.Apply(local.Get("/42"), routekit.Param(routekit.ParseInt))
		require.True(t, ok)
		require.NoError(t, err)
		require.Equal(t, 42, v)
	})

	t.Run("declines unparsable segment", func(t *testing.T) {
		t.Parallel()
		_, ok, err := local.Apply(local.Get("/abc"), routekit.Param(routekit.ParseInt))
		require.False(t, ok)
		require.NoError(t, err)
	})

	t.Run("declines missing segment", func(t *testing.T) {
		t.Parallel()
		_, ok, _ := local.Apply(local.Get("/"), routekit.Param(routekit.ParseInt))
		require.False(t, ok)
	})

	t.Run("uuid parser", func(t *testing.T) {
		t.Parallel()
		id := uuid.New()
		v, ok, err := local.Apply(local.Get("/"+id.String()), routekit.Param(routekit.ParseUUID))
		require.True(t, ok)
		require.NoError(t, err)
		require.Equal(t, id, v)
	})
}

func TestParamRequired(t *testing.T) {
	t.Parallel()

	t.Run("unparsable segment fails with bad request", func(t *testing.T) {
		t.Parallel()
		_, ok, err := local.Apply(local.Get("/abc"), routekit.ParamRequired(routekit.ParseUint32))
		require.True(t, ok, "required extractor must match, not decline")
		require.Error(t, err)

		httpErr := routekit.AsHTTPError(err)
		require.NotNil(t, httpErr)
		require.Equal(t, 400, httpErr.Code)
		require.ErrorContains(t, httpErr.Err, "invalid syntax")
	})

	t.Run("missing segment still declines", func(t *testing.T) {
		t.Parallel()
		_, ok, _ := local.Apply(local.Get("/"), routekit.ParamRequired(routekit.ParseUint32))
		require.False(t, ok)
	})
}

func TestRemains(t *testing.T) {
	t.Parallel()

	t.Run("consumes all remaining segments", func(t *testing.T) {
		t.Parallel()
		v, ok, err := local.Apply(local.Get("/foo/bar"), routekit.Remains(routekit.ParseStrings))
		require.True(t, ok)
		require.NoError(t, err)
		require.Equal(t, []string{"foo", "bar"}, v)
	})

	t.Run("leaves cursor at end of segments", func(t *testing.T) {
		t.Parallel()
		c := newApplyContext(t, "GET", "/foo/bar")
		_, ok := routekit.Remains(routekit.ParseStrings).Apply(c)
		require.True(t, ok)
		require.True(t, c.AtEnd())
	})

	t.Run("joined parser", func(t *testing.T) {
		t.Parallel()
		v, ok, err := local.Apply(local.Get("/a/b/c"), routekit.Remains(routekit.ParseJoined))
		require.True(t, ok)
		require.NoError(t, err)
		require.Equal(t, "a/b/c", v)
	})

	t.Run("empty remainder yields empty result", func(t *testing.T) {
		t.Parallel()
		v, ok, err := local.Apply(local.Get("/"), routekit.Remains(routekit.ParseStrings))
		require.True(t, ok)
		require.NoError(t, err)
		require.Empty(t, v)
	})
}

func TestRouteScenarios(t *testing.T) {
	t.Parallel()

	// GET /api/v1/posts/{id:uint32}
	route := routekit.Get(
		routekit.With(routekit.Path("api/v1/posts"),
			routekit.Param(routekit.ParseUint32)))

	t.Run("matching request extracts id", func(t *testing.T) {
		t.Parallel()
		v, ok, err := local.Apply(local.Get("/api/v1/posts/42"), route)
		require.True(t, ok)
		require.NoError(t, err)
		require.Equal(t, uint32(42), v)
	})

	t.Run("unparsable id declines in lenient mode", func(t *testing.T) {
		t.Parallel()
		_, ok, err := local.Apply(local.Get("/api/v1/posts/abc"), route)
		require.False(t, ok)
		require.NoError(t, err)
	})

	t.Run("unparsable id fails in required mode", func(t *testing.T) {
		t.Parallel()
		required := routekit.Get(
			routekit.With(routekit.Path("api/v1/posts"),
				routekit.ParamRequired(routekit.ParseUint32)))

		_, ok, err := local.Apply(local.Get("/api/v1/posts/abc"), required)
		require.True(t, ok)
		require.Error(t, err)
		require.Equal(t, 400, routekit.AsHTTPError(err).Code)
	})
}
