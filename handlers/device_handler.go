package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"impactDashboardAPI/internal/notification"
	"impactDashboardAPI/middleware"
	"impactDashboardAPI/services"
)

type DeviceHandler struct {
	deviceService *services.DeviceService
	logger        *zap.Logger
}

func NewDeviceHandler(deviceService *services.DeviceService, logger *zap.Logger) *DeviceHandler {
	return &DeviceHandler{
		deviceService: deviceService,
		logger:        logger,
	}
}

// POST /api/v1/devices
func (h *DeviceHandler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var token notification.DeviceToken
	if err := json.NewDecoder(r.Body).Decode(&token); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tokens, err := h.deviceService.Register(ctx, clerkID, token)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int{"devices": len(tokens)})
}
