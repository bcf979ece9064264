package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/kasuboski/sceneid/pkg/logger"
	"github.com/kasuboski/sceneid/pkg/manager"
	"github.com/kasuboski/sceneid/pkg/pagination"
	"go.uber.org/zap"
)

type IDResponse struct {
	ID int64 `json:"id"`
}

func (s Server) ListShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		params, err := pagination.FromQuery(r.URL.Query())
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		shows, err := s.manager.ListShowsPage(r.Context(), params)
		if err != nil {
			log.Error("failed to list shows", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: shows})
	}
}

func (s Server) AddShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var request manager.AddShowRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		id, err := s.manager.AddShow(r.Context(), request)
		if err != nil {
			log.Debug("failed to add show", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		writeResponse(w, http.StatusCreated, GenericResponse{Response: IDResponse{ID: id}})
	}
}

func (s Server) AddAlias() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		showID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid show id"))
			return
		}

		var request manager.AddAliasRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		request.ShowID = showID

		id, err := s.manager.AddAlias(r.Context(), request)
		if err != nil {
			writeErrorResponse(w, addStatus(err), err)
			return
		}

		writeResponse(w, http.StatusCreated, GenericResponse{Response: IDResponse{ID: id}})
	}
}

func (s Server) AddEpisode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		showID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid show id"))
			return
		}

		var request manager.AddEpisodeRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		request.ShowID = showID

		id, err := s.manager.AddEpisode(r.Context(), request)
		if err != nil {
			writeErrorResponse(w, addStatus(err), err)
			return
		}

		writeResponse(w, http.StatusCreated, GenericResponse{Response: IDResponse{ID: id}})
	}
}

func (s Server) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		stats, err := s.manager.Stats(r.Context())
		if err != nil {
			log.Error("failed to get stats", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: stats})
	}
}

// addStatus is statusFor except that anything unexpected is blamed on the request
func addStatus(err error) int {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		return http.StatusBadRequest
	}

	return status
}
