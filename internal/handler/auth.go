package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"giveaway/internal/logger"
	"giveaway/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

func LoginHandler(verifier service.CredentialVerifier, secret string, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		charity, err := verifier.Verify(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			log.Error("login failed", logger.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"charity_id": charity.ID,
			"exp":        jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		})

		tokenString, err := token.SignedString([]byte(secret))
		if err != nil {
			log.Error("token generation failed", logger.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return
		}

		w.Header().Set("Authorization", "Bearer "+tokenString)
		writeJSON(w, http.StatusOK, loginResponse{
			ID:       charity.ID,
			Name:     charity.Name,
			Email:    charity.Email,
			Location: charity.Location,
		})
	}
}
