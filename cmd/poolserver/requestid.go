package main

import (
	"net/http"

	"github.com/google/uuid"
)

// requestID stamps every response with a fresh correlation id, the same
// role google/uuid plays for core/requests.go's Request.ID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", uuid.New().String())
		next.ServeHTTP(w, r)
	})
}
