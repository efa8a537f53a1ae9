package routekit

import "net/http"

// Verb returns an endpoint that matches iff the request method equals m.
// It never consumes path segments, so declining is cheap; method-specific
// branches of one path are disambiguated through Or.
func Verb(m string) Endpoint[Unit] {
	return EndpointFunc[Unit](func(c *ApplyContext) (Task[Unit], bool) {
		if c.Method() != m {
			return nil, false
		}
		return Ready(Unit{}), true
	})
}

// Method guards an endpoint with a method check: e is only applied when the
// request method matches.
func Method[T any](m string, e Endpoint[T]) Endpoint[T] {
	return EndpointFunc[T](func(c *ApplyContext) (Task[T], bool) {
		if c.Method() != m {
			return nil, false
		}
		return e.Apply(c)
	})
}

// Method-specific shorthands.

func Get[T any](e Endpoint[T]) Endpoint[T] {
	return Method(http.MethodGet, e)
}

func Post[T any](e Endpoint[T]) Endpoint[T] {
	return Method(http.MethodPost, e)
}

func Put[T any](e Endpoint[T]) Endpoint[T] {
	return Method(http.MethodPut, e)
}

func Delete[T any](e Endpoint[T]) Endpoint[T] {
	return Method(http.MethodDelete, e)
}

func Patch[T any](e Endpoint[T]) Endpoint[T] {
	return Method(http.MethodPatch, e)
}

func Head[T any](e Endpoint[T]) Endpoint[T] {
	return Method(http.MethodHead, e)
}

func Options[T any](e Endpoint[T]) Endpoint[T] {
	return Method(http.MethodOptions, e)
}
