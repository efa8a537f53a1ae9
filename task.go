package routekit

// Task is the asynchronous unit of work produced by a matched endpoint.
// The driver polls it repeatedly until done is true or err is non-nil.
// Once a task has reported its final result it must not be polled again;
// doing so is a programming error and panics.
type Task[T any] interface {
	Poll(tc *TaskContext) (value T, done bool, err error)
}

// TaskFunc adapts a function to the Task interface.
type TaskFunc[T any] func(tc *TaskContext) (T, bool, error)

func (f TaskFunc[T]) Poll(tc *TaskContext) (T, bool, error) {
	return f(tc)
}

type readyTask[T any] struct {
	value  T
	polled bool
}

func (t *readyTask[T]) Poll(*TaskContext) (T, bool, error) {
	if t.polled {
		panic("routekit: task polled after completion")
	}
	t.polled = true
	return t.value, true, nil
}

// Ready returns a task that resolves to v on its first poll.
func Ready[T any](v T) Task[T] {
	return &readyTask[T]{value: v}
}

type failedTask[T any] struct {
	err    error
	polled bool
}

func (t *failedTask[T]) Poll(*TaskContext) (T, bool, error) {
	if t.polled {
		panic("routekit: task polled after completion")
	}
	t.polled = true
	var zero T
	return zero, false, t.err
}

// Failed returns a task that fails with err on its first poll.
func Failed[T any](err error) Task[T] {
	return &failedTask[T]{err: err}
}

// maybeDone is one slot of a conjunction task. The underlying task is polled
// at most once to completion: once resolved, the value is cached and the task
// reference dropped, so parent re-polls never touch it again. Cancelling a
// slot discards both the task and any cached value.
type maybeDone[T any] struct {
	task  Task[T]
	value T
	done  bool
}

func pending[T any](t Task[T]) maybeDone[T] {
	return maybeDone[T]{task: t}
}

func (m *maybeDone[T]) poll(tc *TaskContext) (bool, error) {
	if m.done {
		return true, nil
	}
	if m.task == nil {
		panic("routekit: slot polled after cancellation")
	}
	v, done, err := m.task.Poll(tc)
	if err != nil {
		return false, err
	}
	if done {
		m.value = v
		m.done = true
		m.task = nil
	}
	return m.done, nil
}

func (m *maybeDone[T]) cancel() {
	var zero T
	m.task = nil
	m.value = zero
	m.done = false
}

func (m *maybeDone[T]) take() T {
	if !m.done {
		panic("routekit: slot value taken before completion")
	}
	v := m.value
	var zero T
	m.value = zero
	m.done = false
	return v
}
