// internal/app/features/errors/recover.go
package errors

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Recoverer turns a handler panic into the HTML error page. A panic after the
// response has started is only logged.
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, max(r.ProtoMajor, 1))
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				err := fmt.Errorf("panic: %v", rec)
				if ww.Status() != 0 {
					logger.Warn("panic after response started",
						zap.String("path", r.URL.Path),
						zap.Int("status", ww.Status()),
						zap.Error(err),
						zap.ByteString("stacktrace", debug.Stack()))
					return
				}
				RenderServerError(w, r, logger, "", "", err)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
