package routekit

// Unit is the output type of endpoints that match without extracting
// anything, such as literal segment and method matchers.
type Unit struct{}

// Endpoint is a reusable request-shape-matching unit.
//
// Apply inspects the request through the context and either declines
// (ok=false, signalling the caller to try an alternative branch) or accepts
// the structural shape and returns the Task that produces the output.
// A matched task may still fail later; that failure flows through the task's
// error channel, never through Apply.
//
// Apply must be synchronous and free of I/O. Segment matchers advance the
// cursor by exactly the segments they consume; method and end-of-segments
// matchers consume nothing. Endpoint values are constructed once at startup
// and shared across all in-flight requests, so they must not mutate
// themselves during Apply.
type Endpoint[T any] interface {
	Apply(c *ApplyContext) (Task[T], bool)
}

// EndpointFunc adapts a function to the Endpoint interface.
type EndpointFunc[T any] func(c *ApplyContext) (Task[T], bool)

func (f EndpointFunc[T]) Apply(c *ApplyContext) (Task[T], bool) {
	return f(c)
}

// Value returns an endpoint that always matches, consumes nothing, and
// yields v.
func Value[T any](v T) Endpoint[T] {
	return EndpointFunc[T](func(*ApplyContext) (Task[T], bool) {
		return Ready(v), true
	})
}

// FailWith returns an endpoint that always matches and whose task fails
// with err. Useful for exercising failure propagation and as a terminal
// branch in alternation chains.
func FailWith[T any](err error) Endpoint[T] {
	return EndpointFunc[T](func(*ApplyContext) (Task[T], bool) {
		return Failed[T](err), true
	})
}

// Unmatched returns an endpoint that declines every request.
func Unmatched[T any]() Endpoint[T] {
	return EndpointFunc[T](func(*ApplyContext) (Task[T], bool) {
		return nil, false
	})
}

// With sequences two endpoints and keeps only the second output.
// The first endpoint still matches and consumes segments as usual, but its
// task is discarded without being polled. This is the usual way to prefix an
// extractor with literal path matchers.
func With[A, B any](first Endpoint[A], second Endpoint[B]) Endpoint[B] {
	return EndpointFunc[B](func(c *ApplyContext) (Task[B], bool) {
		if _, ok := first.Apply(c); !ok {
			return nil, false
		}
		return second.Apply(c)
	})
}

// SkipRight sequences two endpoints and keeps only the first output,
// discarding the second task unpolled. The mirror image of With.
func SkipRight[A, B any](first Endpoint[A], second Endpoint[B]) Endpoint[A] {
	return EndpointFunc[A](func(c *ApplyContext) (Task[A], bool) {
		t1, ok := first.Apply(c)
		if !ok {
			return nil, false
		}
		if _, ok := second.Apply(c); !ok {
			return nil, false
		}
		return t1, true
	})
}
