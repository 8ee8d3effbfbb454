package services

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"impactDashboardAPI/internal/types/food"
	"impactDashboardAPI/internal/validation"
)

const (
	DefaultActivityLimit = 10
	MaxActivityLimit     = 100
)

type FoodSource interface {
	Foods(ctx context.Context, filter food.Filter) ([]food.Food, error)
	FoodCategories(ctx context.Context) ([]string, error)
	Food(ctx context.Context, id int) (food.Food, error)
	LogFood(ctx context.Context, req food.LogRequest) (food.LogEntry, error)
	ActivityLogs(ctx context.Context, limit int) ([]food.LogEntry, error)
}

type FoodService struct {
	source FoodSource
	logger *zap.Logger
}

func NewFoodService(source FoodSource, logger *zap.Logger) *FoodService {
	return &FoodService{source: source, logger: logger}
}

// ImpactFor is the CO2 in kg for grams of a food rated at co2Per100g, rounded
// to 2 decimals.
func ImpactFor(co2Per100g, grams float64) float64 {
	return math.Round(co2Per100g*grams) / 100
}

func (s *FoodService) List(ctx context.Context, filter food.Filter) ([]food.Food, error) {
	foods, err := s.source.Foods(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	return foods, nil
}

func (s *FoodService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.source.FoodCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list food categories: %w", err)
	}
	return categories, nil
}

func (s *FoodService) Get(ctx context.Context, id int) (food.Food, error) {
	f, err := s.source.Food(ctx, id)
	if err != nil {
		return food.Food{}, fmt.Errorf("failed to get food %d: %w", id, err)
	}
	return f, nil
}

func (s *FoodService) ImpactPreview(ctx context.Context, id int, grams float64) (*food.ImpactPreview, error) {
	if grams <= 0 || math.IsNaN(grams) || math.IsInf(grams, 0) {
		return nil, ErrInvalidQuantity
	}
	f, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &food.ImpactPreview{
		FoodID:        f.ID,
		FoodName:      f.Name,
		QuantityGrams: grams,
		CO2Impact:     ImpactFor(f.CO2Per100g, grams),
	}, nil
}

func (s *FoodService) Log(ctx context.Context, req food.LogRequest) (food.LogEntry, error) {
	if err := validation.Struct(req); err != nil {
		return food.LogEntry{}, err
	}
	entry, err := s.source.LogFood(ctx, req)
	if err != nil {
		return food.LogEntry{}, fmt.Errorf("failed to log food: %w", err)
	}
	s.logger.Debug("food logged", zap.Int("food_id", req.FoodID), zap.Float64("co2_impact", entry.CO2Impact))
	return entry, nil
}

// ActivityLogs returns the most recent entries. A zero limit means the default.
func (s *FoodService) ActivityLogs(ctx context.Context, limit int) ([]food.LogEntry, error) {
	if limit == 0 {
		limit = DefaultActivityLimit
	}
	if limit < 1 || limit > MaxActivityLimit {
		return nil, ErrInvalidLimit
	}
	logs, err := s.source.ActivityLogs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity logs: %w", err)
	}
	return logs, nil
}
