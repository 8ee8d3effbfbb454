package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"impactDashboardAPI/internal/types/food"
	"impactDashboardAPI/services"
)

type FoodHandler struct {
	foodService *services.FoodService
	logger      *zap.Logger
}

func NewFoodHandler(foodService *services.FoodService, logger *zap.Logger) *FoodHandler {
	return &FoodHandler{
		foodService: foodService,
		logger:      logger,
	}
}

// GET /api/v1/foods?category=&is_veg=&search=
func (h *FoodHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := r.URL.Query()
	filter := food.Filter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}
	if raw := q.Get("is_veg"); raw != "" {
		isVeg, err := strconv.ParseBool(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "is_veg must be true or false")
			return
		}
		filter.IsVeg = &isVeg
	}

	foods, err := h.foodService.List(ctx, filter)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, foods)
}

// GET /api/v1/foods/categories
func (h *FoodHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	categories, err := h.foodService.Categories(ctx)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, categories)
}

// GET /api/v1/foods/{id}
func (h *FoodHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, ok := foodID(w, r)
	if !ok {
		return
	}

	f, err := h.foodService.Get(ctx, id)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, f)
}

// GET /api/v1/foods/{id}/impact?grams=250
func (h *FoodHandler) GetImpactPreview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, ok := foodID(w, r)
	if !ok {
		return
	}
	grams, err := strconv.ParseFloat(r.URL.Query().Get("grams"), 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "grams must be a number")
		return
	}

	preview, err := h.foodService.ImpactPreview(ctx, id, grams)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, preview)
}

// POST /api/v1/foods/log
func (h *FoodHandler) LogFood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req food.LogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.foodService.Log(ctx, req)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, entry)
}

// GET /api/v1/activity-logs?limit=10
func (h *FoodHandler) GetActivityLogs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		if parsed < 1 || parsed > services.MaxActivityLimit {
			respondWithError(w, http.StatusBadRequest, services.ErrInvalidLimit.Error())
			return
		}
		limit = parsed
	}

	logs, err := h.foodService.ActivityLogs(ctx, limit)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, logs)
}

func foodID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid food id")
		return 0, false
	}
	return id, true
}
