package routekit

import (
	"encoding/json"
	"io"
	"unicode/utf8"
)

// Decoder converts a fully-buffered request body into a value of T.
// Match lets an endpoint decline based on request metadata (typically the
// content type) before the body stream is consumed.
type Decoder[T any] interface {
	Match(in *Input) bool
	Decode(data []byte, in *Input) (T, error)
}

// Body returns an endpoint that buffers the request body and decodes it with
// d. Matching consumes no path segments; the body itself is taken and read
// only once the task is polled, off the polling goroutine, so Poll never
// blocks. A decode failure is a bad-request failure, not a decline.
func Body[T any](d Decoder[T]) Endpoint[T] {
	return EndpointFunc[T](func(c *ApplyContext) (Task[T], bool) {
		if !d.Match(c.Input()) {
			return nil, false
		}
		return &bodyTask[T]{decoder: d}, true
	})
}

type bodyResult struct {
	data []byte
	err  error
}

// bodyTask is a three-state machine: idle until first polled, then receiving
// while a reader goroutine buffers the body, then done. The result channel is
// buffered so the reader exits even if the task is cancelled mid-read.
type bodyTask[T any] struct {
	decoder  Decoder[T]
	result   chan bodyResult
	finished bool
}

func (t *bodyTask[T]) Poll(tc *TaskContext) (T, bool, error) {
	if t.finished {
		panic("routekit: task polled after completion")
	}
	var zero T

	if t.result == nil {
		rc := tc.Input().TakeBody()
		ch := make(chan bodyResult, 1)
		go func() {
			data, err := io.ReadAll(rc)
			_ = rc.Close()
			ch <- bodyResult{data: data, err: err}
		}()
		t.result = ch
	}

	select {
	case res := <-t.result:
		t.finished = true
		if res.err != nil {
			return zero, false, ErrBadRequest("failed to read request body", WithError(res.err))
		}
		v, err := t.decoder.Decode(res.data, tc.Input())
		if err != nil {
			return zero, false, ErrBadRequest("malformed request body", WithError(err))
		}
		return v, true, nil
	default:
		return zero, false, nil
	}
}

// JSONBody returns an endpoint that decodes the request body as JSON into T.
// It declines requests whose Content-Type is present and not JSON.
func JSONBody[T any]() Endpoint[T] {
	return Body[T](jsonDecoder[T]{})
}

type jsonDecoder[T any] struct{}

func (jsonDecoder[T]) Match(in *Input) bool {
	ct := in.ContentType()
	return ct == "" || ct == "application/json"
}

func (jsonDecoder[T]) Decode(data []byte, _ *Input) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}

// TextBody returns an endpoint that reads the request body as UTF-8 text.
func TextBody() Endpoint[string] {
	return Body[string](textDecoder{})
}

type textDecoder struct{}

func (textDecoder) Match(*Input) bool {
	return true
}

func (textDecoder) Decode(data []byte, _ *Input) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrBadRequest("request body is not valid UTF-8")
	}
	return string(data), nil
}

// RawBody returns an endpoint that yields the buffered request body bytes.
func RawBody() Endpoint[[]byte] {
	return Body[[]byte](rawDecoder{})
}

type rawDecoder struct{}

func (rawDecoder) Match(*Input) bool {
	return true
}

func (rawDecoder) Decode(data []byte, _ *Input) ([]byte, error) {
	return data, nil
}
