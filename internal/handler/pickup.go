package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"giveaway/internal/logger"
	"giveaway/internal/model"
	"giveaway/internal/service"
	"giveaway/internal/store"
)

func ListPickupsHandler(pickupSvc *service.PickupService, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pickups, err := pickupSvc.ListPickups(r.Context())
		if err != nil {
			log.Error("list pickups failed", logger.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Failed to fetch pickups")
			return
		}

		if pickups == nil {
			pickups = []model.Pickup{}
		}
		writeJSON(w, http.StatusOK, pickups)
	}
}

type patchStatusRequest struct {
	Status string `json:"status"`
}

func PatchPickupStatusHandler(pickupSvc *service.PickupService, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req patchStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		pickup, err := pickupSvc.PatchStatus(r.Context(), id, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidStatus):
				writeMessage(w, http.StatusBadRequest, "Invalid status")
			case errors.Is(err, store.ErrNotFound):
				writeMessage(w, http.StatusNotFound, "Pickup not found")
			default:
				log.Error("pickup update failed", logger.String("id", id), logger.Error(err))
				writeMessage(w, http.StatusInternalServerError, "Failed to update pickup")
			}
			return
		}

		writeJSON(w, http.StatusOK, pickup)
	}
}
