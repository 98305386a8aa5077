package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/fkhayef/groupchat/internal/logging"
	"github.com/fkhayef/groupchat/pkg/response"
)

// Recoverer turns a handler panic into a logged 500 with the JSON error body.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logging.FromContext(r.Context()).
				WithField("panic", rvr).
				WithField("stack", string(debug.Stack())).
				Error("handler panicked")

			if r.Header.Get("Connection") != "Upgrade" {
				response.InternalError(w, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
