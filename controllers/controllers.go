package controllers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/blogem/token-gate/services"
)

// errorResponse is the body of every rejected request
type errorResponse struct {
	Detail string `json:"detail"`
}

// writeJSON marshals payload and writes it with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).Error("failed to encode response")
		http.Error(w, `{"detail":"Internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		log.WithError(err).Debug("failed to write response")
	}
}

// writeError writes {"detail": detail} with the given status code
func writeError(w http.ResponseWriter, statusCode int, detail string) {
	writeJSON(w, statusCode, errorResponse{Detail: detail})
}

// Controllers holds all controller instances
type Controllers struct {
	Auth *AuthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		Auth: NewAuthController(services.Auth),
	}
}
