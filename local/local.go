// Package local drives endpoints with synthetic requests, without a
// listening server. It exists for tests: build a request, apply an endpoint,
// and poll the resulting task to completion on the calling goroutine.
package local

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"runtime"

	"github.com/dmitrymomot/routekit"
)

// Request is a synthetic request under construction.
type Request struct {
	method string
	target string
	header http.Header
	body   []byte
}

// NewRequest starts a synthetic request with the given method and target.
func NewRequest(method, target string) *Request {
	return &Request{
		method: method,
		target: target,
		header: make(http.Header),
	}
}

// Get starts a synthetic GET request.
func Get(target string) *Request {
	return NewRequest(http.MethodGet, target)
}

// Post starts a synthetic POST request.
func Post(target string) *Request {
	return NewRequest(http.MethodPost, target)
}

// Put starts a synthetic PUT request.
func Put(target string) *Request {
	return NewRequest(http.MethodPut, target)
}

// Delete starts a synthetic DELETE request.
func Delete(target string) *Request {
	return NewRequest(http.MethodDelete, target)
}

// Header sets a request header.
func (r *Request) Header(key, value string) *Request {
	r.header.Set(key, value)
	return r
}

// Body sets the request body.
func (r *Request) Body(s string) *Request {
	r.body = []byte(s)
	return r
}

// HTTP materializes the synthetic request as an *http.Request.
func (r *Request) HTTP() *http.Request {
	req := httptest.NewRequest(r.method, r.target, bytes.NewReader(r.body))
	for k, vs := range r.header {
		req.Header[k] = vs
	}
	return req
}

// Apply matches the endpoint against the request and, on a match, polls the
// task to completion. ok=false reports a decline. Unlike the server driver,
// Apply does not require the endpoint to consume the whole path; tests often
// exercise partial matchers in isolation.
//
// A request whose path cannot be decoded is a broken test fixture and panics.
func Apply[T any](r *Request, e routekit.Endpoint[T]) (value T, ok bool, err error) {
	in, err := routekit.NewInput(r.HTTP())
	if err != nil {
		panic("local: invalid synthetic request: " + err.Error())
	}

	ac := routekit.NewApplyContext(in)
	task, matched := e.Apply(ac)
	if !matched {
		var zero T
		return zero, false, nil
	}

	tc := routekit.NewTaskContext(context.Background(), in)
	for {
		v, done, err := task.Poll(tc)
		if err != nil {
			var zero T
			return zero, true, err
		}
		if done {
			return v, true, nil
		}
		runtime.Gosched()
	}
}
