package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kasuboski/sceneid/pkg/identity"
	"github.com/kasuboski/sceneid/pkg/manager"
	"go.uber.org/zap"
)

type GenericResponse struct {
	Error    *string `json:"error,omitempty"`
	Response any     `json:"response"`
}

// Server exposes the identity manager over http
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    manager.IdentityManager
}

func New(logger *zap.SugaredLogger, manager manager.IdentityManager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	msg := err.Error()
	return writeResponse(w, status, GenericResponse{
		Error: &msg,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// statusFor maps resolution errors to http status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, identity.ErrInvalidName):
		return http.StatusUnprocessableEntity
	case errors.Is(err, identity.ErrNoAbsoluteNumbers):
		return http.StatusBadRequest
	case errors.Is(err, identity.ErrUnknownShow), errors.Is(err, identity.ErrEpisodeNotFoundByAbsoluteNumber):
		return http.StatusNotFound
	case errors.Is(err, identity.ErrMultipleShows):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Router builds the handler with every route and middleware
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()
	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/resolve", s.Resolve()).Methods(http.MethodGet)
	v1.HandleFunc("/match", s.Match()).Methods(http.MethodGet)
	v1.HandleFunc("/anime", s.AnimeSupport()).Methods(http.MethodGet)
	v1.HandleFunc("/stats", s.Stats()).Methods(http.MethodGet)

	v1.HandleFunc("/shows", s.ListShows()).Methods(http.MethodGet)
	v1.HandleFunc("/shows", s.AddShow()).Methods(http.MethodPost)
	v1.HandleFunc("/shows/{id}/absolute", s.ResolveAbsolute()).Methods(http.MethodPost)
	v1.HandleFunc("/shows/{id}/aliases", s.AddAlias()).Methods(http.MethodPost)
	v1.HandleFunc("/shows/{id}/episodes", s.AddEpisode()).Methods(http.MethodPost)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
	)(rtr)
}

// Serve starts the http server and blocks until interrupted
func (s Server) Serve(port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		s.baseLogger.Infow("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, http.StatusOK, GenericResponse{Response: "ok"})
	}
}
