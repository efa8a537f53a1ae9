package routekit

import (
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// Input carries the read-only request metadata and the exactly-once-takeable
// body handle for a single in-flight request.
type Input struct {
	method    string
	url       *url.URL
	header    http.Header
	segments  []string
	body      io.ReadCloser
	bodyTaken bool
}

// NewInput builds the per-request Input from an incoming HTTP request.
// Segments are split from the escaped path form, so an escaped slash stays
// inside one segment, then each segment is percent-decoded exactly once.
// net/http stores the already-decoded path in URL.Path; splitting that would
// decode twice. An undecodable path returns a bad-request error.
func NewInput(r *http.Request) (*Input, error) {
	segments, err := splitSegments(r.URL.EscapedPath())
	if err != nil {
		return nil, ErrBadRequest("malformed request path", WithError(err))
	}

	body := r.Body
	if body == nil {
		body = http.NoBody
	}

	return &Input{
		method:   r.Method,
		url:      r.URL,
		header:   r.Header,
		segments: segments,
		body:     body,
	}, nil
}

// Method returns the HTTP method of the request.
func (in *Input) Method() string {
	return in.method
}

// URL returns the request URL.
func (in *Input) URL() *url.URL {
	return in.url
}

// Header returns the request header value by name.
func (in *Input) Header(name string) string {
	return in.header.Get(name)
}

// Headers returns the full request header map.
func (in *Input) Headers() http.Header {
	return in.header
}

// Segments returns the decoded path segments of the request.
func (in *Input) Segments() []string {
	return in.segments
}

// ContentType returns the media type from the Content-Type header,
// normalized and stripped of parameters. Returns an empty string if the
// header is absent or unparsable.
func (in *Input) ContentType() string {
	raw := in.header.Get("Content-Type")
	if raw == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return ""
	}
	return mt
}

// TakeBody hands out the request body stream. The body can be taken at most
// once; a second take is a programming error and panics.
func (in *Input) TakeBody() io.ReadCloser {
	if in.bodyTaken {
		panic("routekit: request body taken twice")
	}
	in.bodyTaken = true
	return in.body
}

// BodyTaken reports whether the body handle has already been claimed.
func (in *Input) BodyTaken() bool {
	return in.bodyTaken
}

// splitSegments decomposes an escaped URL path into decoded segments.
// A leading slash produces no empty segment and a single trailing slash is
// ignored, but consecutive slashes produce a mandatory empty segment that a
// literal matcher can reject; the bare path "//" is therefore one empty
// segment, not none.
func splitSegments(path string) ([]string, error) {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil, nil
	}
	path = strings.TrimSuffix(path, "/")

	raw := strings.Split(path, "/")
	segments := make([]string, len(raw))
	for i, s := range raw {
		decoded, err := url.PathUnescape(s)
		if err != nil {
			return nil, err
		}
		segments[i] = decoded
	}
	return segments, nil
}
