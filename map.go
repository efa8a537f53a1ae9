package routekit

// Map transforms an endpoint's output with a pure function.
// Failures pass through untouched.
func Map[A, B any](e Endpoint[A], f func(A) B) Endpoint[B] {
	return EndpointFunc[B](func(c *ApplyContext) (Task[B], bool) {
		inner, ok := e.Apply(c)
		if !ok {
			return nil, false
		}
		return TaskFunc[B](func(tc *TaskContext) (B, bool, error) {
			v, done, err := inner.Poll(tc)
			if err != nil || !done {
				var zero B
				return zero, false, err
			}
			return f(v), true, nil
		}), true
	})
}

// AndThen chains a second asynchronous stage onto an endpoint: when the inner
// task resolves, f builds the follow-up task, which is then polled to
// completion. A failure in either stage propagates immediately; the second
// stage never starts after a first-stage failure.
func AndThen[A, B any](e Endpoint[A], f func(A) Task[B]) Endpoint[B] {
	return EndpointFunc[B](func(c *ApplyContext) (Task[B], bool) {
		inner, ok := e.Apply(c)
		if !ok {
			return nil, false
		}
		return &andThenTask[A, B]{first: inner, f: f}, true
	})
}

type andThenTask[A, B any] struct {
	first    Task[A]
	second   Task[B]
	f        func(A) Task[B]
	finished bool
}

func (t *andThenTask[A, B]) Poll(tc *TaskContext) (B, bool, error) {
	if t.finished {
		panic("routekit: task polled after completion")
	}
	var zero B

	if t.second == nil {
		v, done, err := t.first.Poll(tc)
		if err != nil {
			t.finished = true
			return zero, false, err
		}
		if !done {
			return zero, false, nil
		}
		t.second = t.f(v)
		t.first = nil
	}

	v, done, err := t.second.Poll(tc)
	if err != nil {
		t.finished = true
		return zero, false, err
	}
	if done {
		t.finished = true
		return v, true, nil
	}
	return zero, false, nil
}

// MapErr transforms a task failure without affecting success. It never turns
// a failure into a success.
func MapErr[T any](e Endpoint[T], f func(error) error) Endpoint[T] {
	return EndpointFunc[T](func(c *ApplyContext) (Task[T], bool) {
		inner, ok := e.Apply(c)
		if !ok {
			return nil, false
		}
		return TaskFunc[T](func(tc *TaskContext) (T, bool, error) {
			v, done, err := inner.Poll(tc)
			if err != nil {
				var zero T
				return zero, false, f(err)
			}
			return v, done, nil
		}), true
	})
}

// Recover substitutes a failed task with a fallback computation built from
// the original error. It is the only combinator that may turn a failure into
// a success; a failure of the fallback task is the final error.
func Recover[T any](e Endpoint[T], f func(error) Task[T]) Endpoint[T] {
	return EndpointFunc[T](func(c *ApplyContext) (Task[T], bool) {
		inner, ok := e.Apply(c)
		if !ok {
			return nil, false
		}
		return &recoverTask[T]{primary: inner, f: f}, true
	})
}

type recoverTask[T any] struct {
	primary  Task[T]
	fallback Task[T]
	f        func(error) Task[T]
	finished bool
}

func (t *recoverTask[T]) Poll(tc *TaskContext) (T, bool, error) {
	if t.finished {
		panic("routekit: task polled after completion")
	}
	var zero T

	if t.fallback == nil {
		v, done, err := t.primary.Poll(tc)
		if err == nil {
			if done {
				t.finished = true
				return v, true, nil
			}
			return zero, false, nil
		}
		t.fallback = t.f(err)
		t.primary = nil
	}

	v, done, err := t.fallback.Poll(tc)
	if err != nil {
		t.finished = true
		return zero, false, err
	}
	if done {
		t.finished = true
		return v, true, nil
	}
	return zero, false, nil
}
