package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// RenderFunc writes an endpoint's output to the response.
type RenderFunc[T any] func(w http.ResponseWriter, v T) error

// JSON renders the output as a JSON document with a 200 status.
func JSON[T any]() RenderFunc[T] {
	return func(w http.ResponseWriter, v T) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		return json.NewEncoder(w).Encode(v)
	}
}

// Text renders the output via fmt.Fprint as plain text with a 200 status.
func Text[T any]() RenderFunc[T] {
	return func(w http.ResponseWriter, v T) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, err := fmt.Fprint(w, v)
		return err
	}
}

// NoContent discards the output and responds with 204.
func NoContent[T any]() RenderFunc[T] {
	return func(w http.ResponseWriter, _ T) error {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}
}
