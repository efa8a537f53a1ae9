package routekit

// Or tries both branches against the same cursor snapshot and picks the one
// that matched. When both branches match, the branch that consumed more
// segments wins; on a tie the left (declared-first) branch wins. This rule is
// deliberate and stable: callers build deep alternation trees expecting
// declaration order to act as priority among equally specific routes.
//
// The output is an Either tagged by branch; use OrStrict when both branches
// share one output type.
func Or[A, B any](e1 Endpoint[A], e2 Endpoint[B]) Endpoint[Either[A, B]] {
	return &orEndpoint[A, B]{e1: e1, e2: e2}
}

type orEndpoint[A, B any] struct {
	e1 Endpoint[A]
	e2 Endpoint[B]
}

func (e *orEndpoint[A, B]) Apply(c *ApplyContext) (Task[Either[A, B]], bool) {
	snapshot := c.Cursor()

	t1, ok1 := e.e1.Apply(c)
	after1 := c.Cursor()

	c.SetCursor(snapshot)
	t2, ok2 := e.e2.Apply(c)
	after2 := c.Cursor()

	switch {
	case ok1 && ok2:
		if after2.Pos() > after1.Pos() {
			return leftTask[B, A]{inner: t2}.asRight(), true
		}
		c.SetCursor(after1)
		return leftTask[A, B]{inner: t1}.asLeft(), true
	case ok1:
		c.SetCursor(after1)
		return leftTask[A, B]{inner: t1}.asLeft(), true
	case ok2:
		return leftTask[B, A]{inner: t2}.asRight(), true
	default:
		c.SetCursor(snapshot)
		return nil, false
	}
}

// leftTask adapts a branch task to the tagged Either output.
type leftTask[T, U any] struct {
	inner Task[T]
}

func (t leftTask[T, U]) asLeft() Task[Either[T, U]] {
	return TaskFunc[Either[T, U]](func(tc *TaskContext) (Either[T, U], bool, error) {
		v, done, err := t.inner.Poll(tc)
		if err != nil || !done {
			return Either[T, U]{}, false, err
		}
		return newLeft[T, U](v), true, nil
	})
}

func (t leftTask[T, U]) asRight() Task[Either[U, T]] {
	return TaskFunc[Either[U, T]](func(tc *TaskContext) (Either[U, T], bool, error) {
		v, done, err := t.inner.Poll(tc)
		if err != nil || !done {
			return Either[U, T]{}, false, err
		}
		return newRight[U, T](v), true, nil
	})
}

// OrStrict is alternation between two branches that share one output type.
// Branch selection is identical to Or; the matched branch's task is forwarded
// untouched instead of being wrapped in a tagged union.
func OrStrict[T any](e1, e2 Endpoint[T]) Endpoint[T] {
	return EndpointFunc[T](func(c *ApplyContext) (Task[T], bool) {
		snapshot := c.Cursor()

		t1, ok1 := e1.Apply(c)
		after1 := c.Cursor()

		c.SetCursor(snapshot)
		t2, ok2 := e2.Apply(c)
		after2 := c.Cursor()

		switch {
		case ok1 && ok2:
			if after2.Pos() > after1.Pos() {
				return t2, true
			}
			c.SetCursor(after1)
			return t1, true
		case ok1:
			c.SetCursor(after1)
			return t1, true
		case ok2:
			return t2, true
		default:
			c.SetCursor(snapshot)
			return nil, false
		}
	})
}
