package routekit

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Segment returns an endpoint that consumes exactly one path segment and
// matches iff it equals the given literal. Segments are percent-decoded when
// the Input is built, so the literal is compared in decoded form,
// case-sensitively.
func Segment(literal string) Endpoint[Unit] {
	return EndpointFunc[Unit](func(c *ApplyContext) (Task[Unit], bool) {
		s, ok := c.Next()
		if !ok || s != literal {
			return nil, false
		}
		return Ready(Unit{}), true
	})
}

// Path is a convenience over Segment for multi-segment literal prefixes:
// Path("api/v1/posts") matches the same requests as chaining three Segment
// endpoints. Leading and trailing slashes in the pattern are ignored.
// An empty pattern or an empty segment inside the pattern is a programming
// error and panics at construction time.
func Path(pattern string) Endpoint[Unit] {
	trimmed := strings.Trim(pattern, "/")
	if trimmed == "" {
		panic("routekit: empty path pattern")
	}
	literals := strings.Split(trimmed, "/")
	for _, l := range literals {
		if l == "" {
			panic("routekit: empty segment in path pattern " + strconv.Quote(pattern))
		}
	}

	return EndpointFunc[Unit](func(c *ApplyContext) (Task[Unit], bool) {
		for _, literal := range literals {
			s, ok := c.Next()
			if !ok || s != literal {
				return nil, false
			}
		}
		return Ready(Unit{}), true
	})
}

// EOS returns an endpoint that matches iff no path segment remains.
// It never consumes.
func EOS() Endpoint[Unit] {
	return EndpointFunc[Unit](func(c *ApplyContext) (Task[Unit], bool) {
		if !c.AtEnd() {
			return nil, false
		}
		return Ready(Unit{}), true
	})
}

// ParseFunc converts one decoded path segment into a value.
type ParseFunc[T any] func(string) (T, error)

// Param returns an endpoint that consumes one path segment and converts it
// with parse. It declines when no segment remains or when conversion fails,
// so upstream alternation falls through to other branches. Use ParamRequired
// when a conversion failure should surface as a bad request instead.
func Param[T any](parse ParseFunc[T]) Endpoint[T] {
	return EndpointFunc[T](func(c *ApplyContext) (Task[T], bool) {
		s, ok := c.Next()
		if !ok {
			return nil, false
		}
		v, err := parse(s)
		if err != nil {
			return nil, false
		}
		return Ready(v), true
	})
}

// ParamRequired is like Param, but a conversion failure matches and fails
// with a bad-request error carrying the parse error, so that alternation does
// not silently swallow malformed input. A missing segment still declines.
func ParamRequired[T any](parse ParseFunc[T]) Endpoint[T] {
	return EndpointFunc[T](func(c *ApplyContext) (Task[T], bool) {
		s, ok := c.Next()
		if !ok {
			return nil, false
		}
		v, err := parse(s)
		if err != nil {
			return Failed[T](ErrBadRequest("invalid path parameter", WithError(err))), true
		}
		return Ready(v), true
	})
}

// Remains returns an endpoint that consumes every remaining path segment and
// converts the sequence with parse, leaving the cursor at end-of-segments.
// Declines on conversion failure.
func Remains[T any](parse func([]string) (T, error)) Endpoint[T] {
	return EndpointFunc[T](func(c *ApplyContext) (Task[T], bool) {
		v, err := parse(c.TakeRemaining())
		if err != nil {
			return nil, false
		}
		return Ready(v), true
	})
}

// RemainsRequired is like Remains, but a conversion failure matches and fails
// with a bad-request error instead of declining.
func RemainsRequired[T any](parse func([]string) (T, error)) Endpoint[T] {
	return EndpointFunc[T](func(c *ApplyContext) (Task[T], bool) {
		v, err := parse(c.TakeRemaining())
		if err != nil {
			return Failed[T](ErrBadRequest("invalid path", WithError(err))), true
		}
		return Ready(v), true
	})
}

// Stock segment parsers.

func ParseString(s string) (string, error) {
	return s, nil
}

func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

func ParseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func ParseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}

func ParseBool(s string) (bool, error) {
	return strconv.ParseBool(s)
}

func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// Stock remaining-segments parsers.

// ParseStrings yields the remaining segments verbatim.
func ParseStrings(segments []string) ([]string, error) {
	return append([]string(nil), segments...), nil
}

// ParseJoined yields the remaining segments re-joined with slashes.
func ParseJoined(segments []string) (string, error) {
	return strings.Join(segments, "/"), nil
}
