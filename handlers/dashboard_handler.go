package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"impactDashboardAPI/middleware"
	"impactDashboardAPI/services"
)

const maxChartWeeks = 52

type DashboardHandler struct {
	dashboardService *services.DashboardService
	logger           *zap.Logger
	now              func() time.Time
}

func NewDashboardHandler(dashboardService *services.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
		now:              time.Now,
	}
}

// GET /api/v1/dashboard?weeks=8
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, ok := middleware.GetClerkID(ctx); !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	weeks := services.DefaultChartWeeks
	if raw := r.URL.Query().Get("weeks"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxChartWeeks {
			respondWithError(w, http.StatusBadRequest, "weeks must be between 1 and 52")
			return
		}
		weeks = parsed
	}

	view, err := h.dashboardService.View(ctx, h.now(), weeks)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}
