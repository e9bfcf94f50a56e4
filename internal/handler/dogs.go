package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/DogDaycare_Go/internal/daycare"
	"github.com/osse101/DogDaycare_Go/internal/domain"
)

// InteractRequest is a player care action
type InteractRequest struct {
	Action domain.Action `json:"action" validate:"required,oneof=FEED PLAY SLEEP"`
}

// HandleInteract starts a care action on a dog
// @Summary Interact with a dog
// @Description Feeding is charged at the current feed cost
// @Tags dogs
// @Accept json
// @Produce json
// @Param dogID path string true "Dog ID"
// @Param request body InteractRequest true "Care action"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 402 {object} ErrorResponse "Not enough money"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Dog already retrieved"
// @Router /api/v1/dogs/{dogID}/interact [post]
func HandleInteract(svc daycare.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dogID := chi.URLParam(r, URLParamDogID)

		var req InteractRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Interact"); err != nil {
			return
		}

		if err := svc.Interact(r.Context(), dogID, req.Action); err != nil {
			respondServiceError(w, r, "Interact", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgDogInteracted, Data: svc.Snapshot()})
	}
}
