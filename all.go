package routekit

// All is homogeneous conjunction over a dynamic collection: the request
// matches only if every member matches, applied left to right over the shared
// cursor. The result preserves declaration order, not completion order, and a
// failure in any member cancels every other in-flight member immediately.
func All[T any](endpoints ...Endpoint[T]) Endpoint[[]T] {
	return &allEndpoint[T]{endpoints: endpoints}
}

type allEndpoint[T any] struct {
	endpoints []Endpoint[T]
}

func (e *allEndpoint[T]) Apply(c *ApplyContext) (Task[[]T], bool) {
	slots := make([]maybeDone[T], 0, len(e.endpoints))
	for _, ep := range e.endpoints {
		t, ok := ep.Apply(c)
		if !ok {
			return nil, false
		}
		slots = append(slots, pending(t))
	}
	return &allTask[T]{slots: slots}, true
}

type allTask[T any] struct {
	slots    []maybeDone[T]
	finished bool
}

func (t *allTask[T]) Poll(tc *TaskContext) ([]T, bool, error) {
	if t.finished {
		panic("routekit: task polled after completion")
	}

	allDone := true
	for i := range t.slots {
		done, err := t.slots[i].poll(tc)
		if err != nil {
			for j := range t.slots {
				t.slots[j].cancel()
			}
			t.finished = true
			return nil, false, err
		}
		allDone = allDone && done
	}

	if !allDone {
		return nil, false, nil
	}

	t.finished = true
	out := make([]T, len(t.slots))
	for i := range t.slots {
		out[i] = t.slots[i].take()
	}
	return out, true, nil
}
