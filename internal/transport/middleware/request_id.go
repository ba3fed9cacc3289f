package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/daymentor/mentor-backend/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID adopts the caller's X-Request-Id or mints a fresh UUID, then
// propagates it through the context and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
