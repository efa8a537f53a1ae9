package routekit

// And sequences two endpoints: the request matches only if both match, with
// the second endpoint starting from the cursor position the first left
// behind. The combined output preserves declaration order regardless of the
// order in which the two tasks resolve.
func And[A, B any](e1 Endpoint[A], e2 Endpoint[B]) Endpoint[Pair[A, B]] {
	return &andEndpoint[A, B]{e1: e1, e2: e2}
}

type andEndpoint[A, B any] struct {
	e1 Endpoint[A]
	e2 Endpoint[B]
}

func (e *andEndpoint[A, B]) Apply(c *ApplyContext) (Task[Pair[A, B]], bool) {
	t1, ok := e.e1.Apply(c)
	if !ok {
		return nil, false
	}
	t2, ok := e.e2.Apply(c)
	if !ok {
		return nil, false
	}
	return &andTask[A, B]{first: pending(t1), second: pending(t2)}, true
}

// andTask aggregates two slots. Each round polls every still-pending slot
// once; a resolved slot caches its value and is never polled again. A failure
// in either slot cancels the other immediately and becomes the final result.
type andTask[A, B any] struct {
	first    maybeDone[A]
	second   maybeDone[B]
	finished bool
}

func (t *andTask[A, B]) Poll(tc *TaskContext) (Pair[A, B], bool, error) {
	if t.finished {
		panic("routekit: task polled after completion")
	}
	var zero Pair[A, B]

	done1, err := t.first.poll(tc)
	if err != nil {
		t.fail()
		return zero, false, err
	}
	done2, err := t.second.poll(tc)
	if err != nil {
		t.fail()
		return zero, false, err
	}

	if done1 && done2 {
		t.finished = true
		return Pair[A, B]{First: t.first.take(), Second: t.second.take()}, true, nil
	}
	return zero, false, nil
}

func (t *andTask[A, B]) fail() {
	t.first.cancel()
	t.second.cancel()
	t.finished = true
}

// Join3 sequences three endpoints into a single flat tuple, avoiding the
// nested pairs that chained And calls would produce.
func Join3[A, B, C any](e1 Endpoint[A], e2 Endpoint[B], e3 Endpoint[C]) Endpoint[Tuple3[A, B, C]] {
	return EndpointFunc[Tuple3[A, B, C]](func(c *ApplyContext) (Task[Tuple3[A, B, C]], bool) {
		t1, ok := e1.Apply(c)
		if !ok {
			return nil, false
		}
		t2, ok := e2.Apply(c)
		if !ok {
			return nil, false
		}
		t3, ok := e3.Apply(c)
		if !ok {
			return nil, false
		}
		return &join3Task[A, B, C]{
			first:  pending(t1),
			second: pending(t2),
			third:  pending(t3),
		}, true
	})
}

type join3Task[A, B, C any] struct {
	first    maybeDone[A]
	second   maybeDone[B]
	third    maybeDone[C]
	finished bool
}

func (t *join3Task[A, B, C]) Poll(tc *TaskContext) (Tuple3[A, B, C], bool, error) {
	if t.finished {
		panic("routekit: task polled after completion")
	}
	var zero Tuple3[A, B, C]

	done1, err := t.first.poll(tc)
	if err != nil {
		t.fail()
		return zero, false, err
	}
	done2, err := t.second.poll(tc)
	if err != nil {
		t.fail()
		return zero, false, err
	}
	done3, err := t.third.poll(tc)
	if err != nil {
		t.fail()
		return zero, false, err
	}

	if done1 && done2 && done3 {
		t.finished = true
		out := Tuple3[A, B, C]{
			First:  t.first.take(),
			Second: t.second.take(),
			Third:  t.third.take(),
		}
		return out, true, nil
	}
	return zero, false, nil
}

func (t *join3Task[A, B, C]) fail() {
	t.first.cancel()
	t.second.cancel()
	t.third.cancel()
	t.finished = true
}

// Join4 sequences four endpoints into a single flat tuple.
func Join4[A, B, C, D any](e1 Endpoint[A], e2 Endpoint[B], e3 Endpoint[C], e4 Endpoint[D]) Endpoint[Tuple4[A, B, C, D]] {
	return EndpointFunc[Tuple4[A, B, C, D]](func(c *ApplyContext) (Task[Tuple4[A, B, C, D]], bool) {
		t1, ok := e1.Apply(c)
		if !ok {
			return nil, false
		}
		t2, ok := e2.Apply(c)
		if !ok {
			return nil, false
		}
		t3, ok := e3.Apply(c)
		if !ok {
			return nil, false
		}
		t4, ok := e4.Apply(c)
		if !ok {
			return nil, false
		}
		return &join4Task[A, B, C, D]{
			first:  pending(t1),
			second: pending(t2),
			third:  pending(t3),
			fourth: pending(t4),
		}, true
	})
}

type join4Task[A, B, C, D any] struct {
	first    maybeDone[A]
	second   maybeDone[B]
	third    maybeDone[C]
	fourth   maybeDone[D]
	finished bool
}

func (t *join4Task[A, B, C, D]) Poll(tc *TaskContext) (Tuple4[A, B, C, D], bool, error) {
	if t.finished {
		panic("routekit: task polled after completion")
	}
	var zero Tuple4[A, B, C, D]

	done1, err := t.first.poll(tc)
	if err != nil {
		t.fail()
		return zero, false, err
	}
	done2, err := t.second.poll(tc)
	if err != nil {
		t.fail()
		return zero, false, err
	}
	done3, err := t.third.poll(tc)
	if err != nil {
		t.fail()
		return zero, false, err
	}
	done4, err := t.fourth.poll(tc)
	if err != nil {
		t.fail()
		return zero, false, err
	}

	if done1 && done2 && done3 && done4 {
		t.finished = true
		out := Tuple4[A, B, C, D]{
			First:  t.first.take(),
			Second: t.second.take(),
			Third:  t.third.take(),
			Fourth: t.fourth.take(),
		}
		return out, true, nil
	}
	return zero, false, nil
}

func (t *join4Task[A, B, C, D]) fail() {
	t.first.cancel()
	t.second.cancel()
	t.third.cancel()
	t.fourth.cancel()
	t.finished = true
}
