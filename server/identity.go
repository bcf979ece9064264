package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/kasuboski/sceneid/pkg/identity"
	"github.com/kasuboski/sceneid/pkg/logger"
	"github.com/kasuboski/sceneid/pkg/nameparser"
	"github.com/oapi-codegen/nullable"
	"go.uber.org/zap"
)

// ResolveResponse is a resolved name. Season is null when the name carries absolute numbers.
type ResolveResponse struct {
	Original        string                   `json:"original"`
	SeriesName      string                   `json:"seriesName"`
	Mode            nameparser.Mode          `json:"mode"`
	ShowID          int64                    `json:"showId"`
	Season          nullable.Nullable[int32] `json:"season"`
	Episodes        []int32                  `json:"episodes"`
	AbsoluteNumbers []int32                  `json:"absoluteNumbers"`
	ReleaseGroup    string                   `json:"releaseGroup,omitempty"`
	Extra           map[string]string        `json:"extra,omitempty"`
}

func toResolveResponse(res *identity.Resolution) ResolveResponse {
	resp := ResolveResponse{
		Original:        res.Original,
		SeriesName:      res.SeriesName,
		Mode:            res.Mode,
		ShowID:          res.ShowID,
		Season:          nullable.NewNullNullable[int32](),
		Episodes:        res.Episodes,
		AbsoluteNumbers: res.AbsoluteNumbers,
		ReleaseGroup:    res.ReleaseGroup,
		Extra:           res.Extra,
	}

	if res.Season != nil {
		resp.Season = nullable.NewNullableWithValue(*res.Season)
	}
	if resp.Episodes == nil {
		resp.Episodes = []int32{}
	}
	if resp.AbsoluteNumbers == nil {
		resp.AbsoluteNumbers = []int32{}
	}

	return resp
}

type AnimeSupportResponse struct {
	AnimeSupport bool `json:"animeSupport"`
}

type AbsoluteRequest struct {
	Absolute []int32 `json:"absolute"`
}

// Resolve parses the name query parameter. show optionally names the show the release belongs to.
func (s Server) Resolve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		qps := r.URL.Query()

		name := qps.Get("name")
		if name == "" {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("name is required"))
			return
		}

		var showID int64
		if show := qps.Get("show"); show != "" {
			id, err := strconv.ParseInt(show, 10, 64)
			if err != nil {
				writeErrorResponse(w, http.StatusBadRequest, errors.New("show must be a number"))
				return
			}
			showID = id
		}

		result, err := s.manager.Resolve(r.Context(), name, showID)
		if err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: toResolveResponse(result)})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// Match finds the show a name refers to. An id of 0 means no show matched.
func (s Server) Match() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		name := r.URL.Query().Get("name")
		if name == "" {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("name is required"))
			return
		}

		match, err := s.manager.Match(r.Context(), name)
		if err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: match})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

func (s Server) ResolveAbsolute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		showID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid show id"))
			return
		}

		var request AbsoluteRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		result, err := s.manager.ResolveAbsolute(r.Context(), showID, request.Absolute)
		if err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: result})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// AnimeSupport reports whether any known show is anime
func (s Server) AnimeSupport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		anime, err := s.manager.AnimeSupport(r.Context())
		if err != nil {
			log.Error("failed to check anime support", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: AnimeSupportResponse{AnimeSupport: anime}})
	}
}
