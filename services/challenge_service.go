package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"impactDashboardAPI/internal/acceptance"
	"impactDashboardAPI/internal/challenge"
)

// Dispatcher queues completion notices without blocking the caller.
type Dispatcher interface {
	TryDispatch(job *CompletionJob) bool
}

type ChallengeService struct {
	catalog    *challenge.Catalog
	store      *acceptance.Store
	dispatcher Dispatcher
	logger     *zap.Logger
}

func NewChallengeService(catalog *challenge.Catalog, store *acceptance.Store, dispatcher Dispatcher, logger *zap.Logger) *ChallengeService {
	return &ChallengeService{
		catalog:    catalog,
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

type TodayView struct {
	Challenge  challenge.Challenge `json:"challenge"`
	State      acceptance.State    `json:"state"`
	DailyIndex int                 `json:"dailyIndex"`
	Total      int                 `json:"total"`
}

type TotalPotential struct {
	TotalPotentialCO2 float64 `json:"totalPotentialCO2"`
	Count             int     `json:"count"`
}

// List filters by category and then by difficulty. An empty value or "all"
// leaves that dimension unfiltered.
func (s *ChallengeService) List(category, difficulty string) []challenge.Challenge {
	if category == "" {
		category = string(challenge.CategoryAll)
	}
	items := s.catalog.ByCategory(category)
	if difficulty == "" || difficulty == string(challenge.CategoryAll) {
		return items
	}

	out := []challenge.Challenge{}
	for _, ch := range items {
		if string(ch.Difficulty) == difficulty {
			out = append(out, ch)
		}
	}
	return out
}

func (s *ChallengeService) Get(id int) (challenge.Challenge, error) {
	ch, ok := s.catalog.ByID(id)
	if !ok {
		return challenge.Challenge{}, ErrChallengeNotFound
	}
	return ch, nil
}

func (s *ChallengeService) Categories() []challenge.Category {
	return challenge.Categories()
}

func (s *ChallengeService) TotalPotential() TotalPotential {
	return TotalPotential{
		TotalPotentialCO2: s.catalog.TotalPotentialCO2(),
		Count:             s.catalog.Len(),
	}
}

func (s *ChallengeService) Today(ctx context.Context, userID string, now time.Time) (*TodayView, error) {
	st, err := s.store.Load(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	return s.view(st, now)
}

func (s *ChallengeService) Next(ctx context.Context, userID string, now time.Time) (*TodayView, error) {
	return s.rotate(ctx, userID, now, s.catalog.Next)
}

func (s *ChallengeService) Previous(ctx context.Context, userID string, now time.Time) (*TodayView, error) {
	return s.rotate(ctx, userID, now, s.catalog.Previous)
}

// Toggle flips acceptance of the selected challenge. Becoming accepted queues a
// completion notice; its outcome never changes the returned state.
func (s *ChallengeService) Toggle(ctx context.Context, userID, bearerToken string, now time.Time) (*TodayView, error) {
	st, err := s.store.Toggle(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	view, err := s.view(st, now)
	if err != nil {
		return nil, err
	}

	if st.Accepted && s.dispatcher != nil {
		queued := s.dispatcher.TryDispatch(&CompletionJob{
			UserID:      userID,
			BearerToken: bearerToken,
			ChallengeID: view.Challenge.ID,
			Title:       view.Challenge.Title,
			CO2Saved:    view.Challenge.CO2Impact,
		})
		if !queued {
			s.logger.Warn("completion notice not queued", zap.String("user_id", userID), zap.Int("challenge_id", view.Challenge.ID))
		}
	}
	return view, nil
}

func (s *ChallengeService) rotate(ctx context.Context, userID string, now time.Time, step func(int) int) (*TodayView, error) {
	st, err := s.store.Load(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	st, err = s.store.Select(ctx, userID, now, step(st.SelectedIndex))
	if err != nil {
		return nil, fmt.Errorf("failed to rotate challenge: %w", err)
	}
	return s.view(st, now)
}

func (s *ChallengeService) view(st acceptance.State, now time.Time) (*TodayView, error) {
	ch, err := s.catalog.At(st.SelectedIndex)
	if err != nil {
		return nil, err
	}
	daily, err := s.catalog.DailyIndex(now)
	if err != nil {
		return nil, err
	}
	return &TodayView{
		Challenge:  ch,
		State:      st,
		DailyIndex: daily,
		Total:      s.catalog.Len(),
	}, nil
}
