// Package routekit is a composable request-routing and response-generation
// toolkit. Small matching units called endpoints are combined with
// conjunction, alternation, and transformation combinators into a complete
// request-handling pipeline.
//
// An Endpoint inspects the shape of an incoming request (method, path
// segments, headers) and either declines or produces a Task, the asynchronous
// unit of work that yields the endpoint's output. Combinators compose
// endpoints while preserving matching semantics:
//
//	// GET /api/v1/posts/{id}
//	ep := routekit.Get(
//	    routekit.With(routekit.Path("api/v1/posts"),
//	        routekit.Param(routekit.ParseInt)))
//
// Matching is synchronous and free of I/O. All per-request state lives in the
// ApplyContext during matching and in the Task afterwards, so endpoint values
// are immutable and safe to share across concurrent requests.
//
// The server subpackage turns a composed endpoint into an http.Handler and
// provides a graceful run loop; the local subpackage drives endpoints with
// synthetic requests in tests.
package routekit
