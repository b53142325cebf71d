package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// RequestLogger logs one structured line per request
func RequestLogger(logger log.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				entry := logger.WithFields(log.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"status":      ww.Status(),
					"bytes":       ww.BytesWritten(),
					"duration_ms": time.Since(start).Milliseconds(),
					"request_id":  chimiddleware.GetReqID(r.Context()),
				})

				switch {
				case ww.Status() >= http.StatusInternalServerError:
					entry.Error("request failed")
				case ww.Status() >= http.StatusBadRequest:
					entry.Warn("request rejected")
				default:
					entry.Info("request served")
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
