package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"giveaway/internal/logger"
	"giveaway/internal/model"
	"giveaway/internal/service"
)

func SaveFormDataHandler(intakeSvc *service.IntakeService, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub model.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			writeMessage(w, http.StatusBadRequest, "No form data provided")
			return
		}

		_, err := intakeSvc.Submit(r.Context(), sub)
		if err != nil {
			if errors.Is(err, service.ErrEmptySubmission) {
				writeMessage(w, http.StatusBadRequest, "No form data provided")
				return
			}
			log.Error("submission failed", logger.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Failed to save data")
			return
		}

		writeMessage(w, http.StatusOK, "Data saved successfully")
	}
}

func GetFormDataHandler(intakeSvc *service.IntakeService, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := intakeSvc.ListSubmissions(r.Context())
		if err != nil {
			log.Error("list submissions failed", logger.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Failed to fetch form data")
			return
		}

		if subs == nil {
			subs = []model.Submission{}
		}
		writeJSON(w, http.StatusOK, subs)
	}
}
