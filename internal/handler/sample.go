package handler

import (
	"net/http"

	"giveaway/internal/logger"
	"giveaway/internal/service"
)

func SampleDataHandler(sampleSvc *service.SampleService, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sampleSvc.CreateSampleData(r.Context()); err != nil {
			log.Error("sample data creation failed", logger.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Failed to create sample data")
			return
		}

		writeMessage(w, http.StatusOK, "Sample data created successfully")
	}
}
