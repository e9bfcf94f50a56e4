package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/osse101/DogDaycare_Go/internal/daycare"
	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/logger"
	"github.com/osse101/DogDaycare_Go/internal/repository"
)

// DeparturesResponse lists departures with aggregate statistics
type DeparturesResponse struct {
	Departures []domain.Departure    `json:"departures"`
	Summary    daycare.LedgerSummary `json:"summary"`
}

// HandleListDepartures returns this session's recent departures
// @Summary List departures
// @Description Most recent departures of the current session, oldest first
// @Tags departures
// @Produce json
// @Param limit query int false "Maximum entries, 0 for all" default(50)
// @Success 200 {object} DeparturesResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/departures [get]
func HandleListDepartures(svc daycare.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := parseLimit(w, r, DefaultListLimit)
		if !ok {
			return
		}
		respondDepartures(w, tail(svc.Departures(), limit))
	}
}

// HandleDepartureHistory returns departures recorded across sessions
// @Summary Departure history
// @Description Departures persisted by the history store, oldest first
// @Tags departures
// @Produce json
// @Param limit query int false "Maximum entries, 0 for all" default(50)
// @Success 200 {object} DeparturesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/departures/history [get]
func HandleDepartureHistory(history repository.Departures) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if history == nil {
			respondError(w, http.StatusServiceUnavailable, ErrMsgHistoryUnavailable)
			return
		}
		limit, ok := parseLimit(w, r, DefaultListLimit)
		if !ok {
			return
		}

		deps, err := history.Recent(r.Context(), limit)
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgHistoryFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgHistoryFailed)
			return
		}
		respondDepartures(w, deps)
	}
}

// HandleExportDepartures streams departures as CSV
// @Summary Export departures
// @Tags departures
// @Produce text/csv
// @Param from query string false "session or history" default(session)
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/departures/export [get]
func HandleExportDepartures(svc daycare.Service, history repository.Departures) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var deps []domain.Departure
		switch source := GetOptionalQueryParam(r, QueryParamFrom, SourceSession); source {
		case SourceSession:
			deps = svc.Departures()
		case SourceHistory:
			if history == nil {
				respondError(w, http.StatusServiceUnavailable, ErrMsgHistoryUnavailable)
				return
			}
			var err error
			if deps, err = history.Recent(r.Context(), 0); err != nil {
				log.Error(ErrMsgHistoryFailed, "error", err)
				respondError(w, http.StatusInternalServerError, ErrMsgHistoryFailed)
				return
			}
		default:
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Unknown source %q", source))
			return
		}

		var buf bytes.Buffer
		if err := daycare.WriteCSV(&buf, deps); err != nil {
			log.Error(ErrMsgExportFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgExportFailed)
			return
		}

		w.Header().Set("Content-Type", CSVContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", CSVFilename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			log.Debug(LogMsgWriteFailed, "error", err)
		}
	}
}

func respondDepartures(w http.ResponseWriter, deps []domain.Departure) {
	if deps == nil {
		deps = []domain.Departure{}
	}
	respondJSON(w, http.StatusOK, DeparturesResponse{
		Departures: deps,
		Summary:    daycare.Summarize(deps),
	})
}

// tail keeps the newest limit entries. Zero keeps everything.
func tail(deps []domain.Departure, limit int) []domain.Departure {
	if limit > 0 && len(deps) > limit {
		return deps[len(deps)-limit:]
	}
	return deps
}
