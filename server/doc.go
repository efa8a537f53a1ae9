// Package server turns composed endpoints into running HTTP services.
//
// Handler adapts one endpoint into an http.Handler: it builds the per-request
// matching context, applies the endpoint, polls the resulting task to
// completion, and renders the output. NewMux mounts several handlers together
// with health endpoints and middleware, and Run serves a handler with
// graceful shutdown.
//
//	mux := server.NewMux(
//	    server.UseMiddleware(server.RequestID(), server.Recover(log)),
//	    server.WithReadinessCheck("db", dbCheck),
//	)
//	mux.Handle("/*", server.Handler(route, server.JSON[Post]()))
//
//	err := server.Run(ctx, mux, server.Address(":8080"), server.Logger(log))
package server
