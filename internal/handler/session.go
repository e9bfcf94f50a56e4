package handler

import (
	"net/http"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/osse101/DogDaycare_Go/internal/daycare"
	"github.com/osse101/DogDaycare_Go/internal/logger"
)

// StartGameRequest names the daycare
type StartGameRequest struct {
	Name string `json:"name" validate:"required,daycarename"`
}

// SetPlayingRequest pauses or resumes the clock
type SetPlayingRequest struct {
	Playing *bool `json:"playing" validate:"required"`
}

// HandleGetSession returns the current session snapshot
// @Summary Get session
// @Description Current daycare state with derived costs
// @Tags session
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Router /api/v1/session [get]
func HandleGetSession(svc daycare.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Snapshot())
	}
}

// HandleStartGame names the daycare and opens it
// @Summary Start game
// @Description Sets the daycare name and marks the game started
// @Tags session
// @Accept json
// @Produce json
// @Param request body StartGameRequest true "Daycare name"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/session/start [post]
func HandleStartGame(svc daycare.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartGameRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Start game"); err != nil {
			return
		}

		// Compose so visually identical names are stored identically
		name := norm.NFC.String(strings.TrimSpace(req.Name))
		if err := svc.StartGame(r.Context(), name); err != nil {
			respondServiceError(w, r, "Start game", err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgDaycareOpened, "name", name)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgDaycareOpened, Data: svc.Snapshot()})
	}
}

// HandleSetPlaying pauses or resumes the simulation
// @Summary Pause or resume
// @Tags session
// @Accept json
// @Produce json
// @Param request body SetPlayingRequest true "Play state"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/session/play [post]
func HandleSetPlaying(svc daycare.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetPlayingRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set playing"); err != nil {
			return
		}

		svc.SetPlaying(r.Context(), *req.Playing)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgPlayStateChanged, Data: svc.Snapshot()})
	}
}

// HandleReset wipes the saved session and starts over
// @Summary Reset session
// @Description Clears the saved session and rebuilds the default daycare
// @Tags session
// @Produce json
// @Success 200 {object} DataResponse
// @Router /api/v1/session/reset [post]
func HandleReset(svc daycare.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Reset(r.Context())
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgSessionReset, Data: svc.Snapshot()})
	}
}
