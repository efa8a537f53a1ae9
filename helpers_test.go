package routekit_test

import (
	"github.com/dmitrymomot/routekit"
)

// slowValue returns an endpoint whose task reports not-ready for rounds
// polls before resolving to v. Used to decouple completion order from
// declaration order in combinator tests.
func slowValue[T any](v T, rounds int) routekit.Endpoint[T] {
	return routekit.EndpointFunc[T](func(*routekit.ApplyContext) (routekit.Task[T], bool) {
		remaining := rounds
		return routekit.TaskFunc[T](func(*routekit.TaskContext) (T, bool, error) {
			if remaining > 0 {
				remaining--
				var zero T
				return zero, false, nil
			}
			return v, true, nil
		}), true
	})
}

// countedValue returns an endpoint whose task resolves immediately and
// records how many times it was polled in *polls.
func countedValue[T any](v T, polls *int) routekit.Endpoint[T] {
	return routekit.EndpointFunc[T](func(*routekit.ApplyContext) (routekit.Task[T], bool) {
		return routekit.TaskFunc[T](func(*routekit.TaskContext) (T, bool, error) {
			*polls++
			return v, true, nil
		}), true
	})
}

// neverPolled returns an endpoint whose task fails the test if it is ever
// polled, via the recorded flag.
func pollFlag[T any](v T, polled *bool) routekit.Endpoint[T] {
	return routekit.EndpointFunc[T](func(*routekit.ApplyContext) (routekit.Task[T], bool) {
		return routekit.TaskFunc[T](func(*routekit.TaskContext) (T, bool, error) {
			*polled = true
			return v, true, nil
		}), true
	})
}
