package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"impactDashboardAPI/internal/acceptance"
	"impactDashboardAPI/internal/impactapi"
	"impactDashboardAPI/internal/validation"
	"impactDashboardAPI/services"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

type validationResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields"`
}

// respondWithServiceError maps service and upstream errors onto status codes.
// Upstream failures are checked first: a PayloadError may wrap a validation
// error that describes the upstream body, not the caller's.
func respondWithServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var verr *validation.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("request timed out", zap.Error(err))
		respondWithError(w, http.StatusGatewayTimeout, "Upstream timed out")
	case errors.Is(err, impactapi.ErrMalformedPayload), errors.Is(err, impactapi.ErrUpstream) && !impactapi.IsNotFound(err):
		logger.Warn("impact api failure", zap.Error(err))
		respondWithError(w, http.StatusBadGateway, "Impact service unavailable")
	case errors.As(err, &verr):
		respondWithJSON(w, http.StatusBadRequest, validationResponse{Error: verr.Error(), Fields: verr.Fields})
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidLimit),
		errors.Is(err, acceptance.ErrIndexOutOfRange):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrChallengeNotFound), impactapi.IsNotFound(err):
		respondWithError(w, http.StatusNotFound, "Not found")
	default:
		logger.Error("request failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
