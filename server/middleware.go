package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/kasuboski/sceneid/pkg/logger"
	"go.uber.org/zap"
)

// LogMiddleware gives every request a logger tagged with its path and a fresh id.
// The id is echoed back in the X-Request-Id header.
func (s Server) LogMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.New().String()
			log := s.baseLogger.With(zap.String("request_path", r.URL.Path), zap.String("id", id))

			w.Header().Set("X-Request-Id", id)
			log.Debugw("request", zap.String("method", r.Method))
			h.ServeHTTP(w, r.WithContext(logger.WithCtx(r.Context(), log)))
		})
	}
}
