package routekit

// Query returns an endpoint that extracts the query parameter name and
// converts it with parse. It consumes no path segments and declines when the
// parameter is absent or conversion fails, so alternation can fall through.
// Use QueryRequired when a conversion failure should surface as a bad
// request instead.
func Query[T any](name string, parse ParseFunc[T]) Endpoint[T] {
	return EndpointFunc[T](func(c *ApplyContext) (Task[T], bool) {
		s, ok := queryValue(c, name)
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

// QueryRequired is like Query, but a conversion failure matches and fails
// with a bad-request error carrying the parse error. An absent parameter
// still declines.
func QueryRequired[T any](name string, parse ParseFunc[T]) Endpoint[T] {
	return EndpointFunc[T](func(c *ApplyContext) (Task[T], bool) {
		s, ok := queryValue(c, name)
		if !ok {
			return nil, false
		}
		v, err := parse(s)
		if err != nil {
			return Failed[T](ErrBadRequest("invalid query parameter "+name, WithError(err))), true
		}
		return Ready(v), true
	})
}

// QueryOpt is the optional form of Query: an absent parameter matches and
// yields nil instead of declining. A present parameter that fails conversion
// still declines, exactly as Query does.
func QueryOpt[T any](name string, parse ParseFunc[T]) Endpoint[*T] {
	return EndpointFunc[*T](func(c *ApplyContext) (Task[*T], bool) {
		s, ok := queryValue(c, name)
		if !ok {
			return Ready[*T](nil), true
		}
		v, err := parse(s)
		if err != nil {
			return nil, false
		}
		return Ready(&v), true
	})
}

// queryValue reports the first value of the named query parameter.
// A parameter present without a value (?flag) yields the empty string.
func queryValue(c *ApplyContext, name string) (string, bool) {
	vs, ok := c.Input().URL().Query()[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}
