package middlewarex

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"dealfinder/pkg/httpx/reply"
	"dealfinder/pkg/logx"
)

var errPanic = errors.New("panic in handler")

// Recovery turns a handler panic into the regular internal error reply.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler { //nolint:errorlint,goerr113
					panic(rec)
				}

				logger(ctx).Error(
					errPanic.Error(),
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.Error(ctx, w, errPanic)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
