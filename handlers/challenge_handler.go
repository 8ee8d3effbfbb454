package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"impactDashboardAPI/internal/challenge"
	"impactDashboardAPI/internal/impactapi"
	"impactDashboardAPI/middleware"
	"impactDashboardAPI/services"
)

type ChallengeHandler struct {
	challengeService *services.ChallengeService
	logger           *zap.Logger
	now              func() time.Time
}

func NewChallengeHandler(challengeService *services.ChallengeService, logger *zap.Logger) *ChallengeHandler {
	return &ChallengeHandler{
		challengeService: challengeService,
		logger:           logger,
		now:              time.Now,
	}
}

// GET /api/v1/challenges?category=food&difficulty=easy
func (h *ChallengeHandler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	difficulty := q.Get("difficulty")
	switch challenge.Difficulty(difficulty) {
	case "", challenge.Difficulty(challenge.CategoryAll), challenge.DifficultyEasy, challenge.DifficultyMedium, challenge.DifficultyHard:
	default:
		respondWithError(w, http.StatusBadRequest, "difficulty must be all, easy, medium or hard")
		return
	}

	respondWithJSON(w, http.StatusOK, h.challengeService.List(q.Get("category"), difficulty))
}

// GET /api/v1/challenges/categories
func (h *ChallengeHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.challengeService.Categories())
}

// GET /api/v1/challenges/total-potential
func (h *ChallengeHandler) GetTotalPotential(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.challengeService.TotalPotential())
}

// GET /api/v1/challenges/{id}
func (h *ChallengeHandler) GetChallenge(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid challenge id")
		return
	}

	ch, err := h.challengeService.Get(id)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ch)
}

// GET /api/v1/challenges/today
func (h *ChallengeHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, func(ctx context.Context, userID string) (*services.TodayView, error) {
		return h.challengeService.Today(ctx, userID, h.now())
	})
}

// POST /api/v1/challenges/today/next
func (h *ChallengeHandler) NextChallenge(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, func(ctx context.Context, userID string) (*services.TodayView, error) {
		return h.challengeService.Next(ctx, userID, h.now())
	})
}

// POST /api/v1/challenges/today/previous
func (h *ChallengeHandler) PreviousChallenge(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, func(ctx context.Context, userID string) (*services.TodayView, error) {
		return h.challengeService.Previous(ctx, userID, h.now())
	})
}

// POST /api/v1/challenges/today/toggle
func (h *ChallengeHandler) ToggleAcceptance(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, func(ctx context.Context, userID string) (*services.TodayView, error) {
		return h.challengeService.Toggle(ctx, userID, impactapi.BearerToken(ctx), h.now())
	})
}

func (h *ChallengeHandler) withUser(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, userID string) (*services.TodayView, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	view, err := fn(ctx, clerkID)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}
