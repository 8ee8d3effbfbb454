package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"impactDashboardAPI/internal/progress"
	"impactDashboardAPI/internal/types/dashboard"
)

const DefaultChartWeeks = 8

// DashboardSource is the read side of the impact API used by the dashboard.
type DashboardSource interface {
	Summary(ctx context.Context) (dashboard.Summary, error)
	Chart(ctx context.Context) ([]dashboard.ChartPoint, error)
	Badges(ctx context.Context) ([]dashboard.BadgeMeta, error)
	Goal(ctx context.Context) (dashboard.MonthlyGoal, error)
	Details(ctx context.Context) (dashboard.Details, error)
}

type DashboardService struct {
	source         DashboardSource
	targetFallback float64
	logger         *zap.Logger
}

func NewDashboardService(source DashboardSource, targetFallback float64, logger *zap.Logger) *DashboardService {
	if targetFallback <= 0 {
		targetFallback = progress.DefaultMonthTarget
	}
	return &DashboardService{
		source:         source,
		targetFallback: targetFallback,
		logger:         logger,
	}
}

// Load fetches the five dashboard payloads in parallel. The first failure
// cancels the rest and is returned as the only error.
func (s *DashboardService) Load(ctx context.Context) (*dashboard.Snapshot, error) {
	start := time.Now()
	defer func() { dashboardLoadDuration.Observe(time.Since(start).Seconds()) }()

	var snap dashboard.Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := s.source.Summary(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch summary: %w", err)
		}
		snap.Summary = summary
		return nil
	})
	g.Go(func() error {
		chart, err := s.source.Chart(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch chart: %w", err)
		}
		snap.Chart = chart
		return nil
	})
	g.Go(func() error {
		badges, err := s.source.Badges(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch badges: %w", err)
		}
		snap.Badges = badges
		return nil
	})
	g.Go(func() error {
		goal, err := s.source.Goal(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch goal: %w", err)
		}
		snap.Goal = goal
		return nil
	})
	g.Go(func() error {
		details, err := s.source.Details(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch details: %w", err)
		}
		snap.Details = details
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("dashboard load failed", zap.Error(err))
		return nil, err
	}
	return &snap, nil
}

// View loads the dashboard and derives badges, goal progress and impact figures.
func (s *DashboardService) View(ctx context.Context, now time.Time, weeks int) (*dashboard.View, error) {
	snap, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	view := BuildView(snap, now, weeks, s.targetFallback)
	return &view, nil
}

// BuildView is the pure derivation behind View. weeks limits the chart shown,
// not the series the figures are computed from.
func BuildView(snap *dashboard.Snapshot, now time.Time, weeks int, targetFallback float64) dashboard.View {
	series := make([]progress.WeeklySample, 0, len(snap.Chart))
	for _, p := range snap.Chart {
		series = append(series, progress.WeeklySample{Week: p.Week, Footprint: p.Footprint, Saved: p.Saved})
	}

	totalSaved := progress.TotalSaved(series)
	badges := progress.ComputeBadges(snap.Summary.Streak, len(series), totalSaved)
	applyBadgeMeta(badges, snap.Badges)

	target := snap.Goal.Target
	if target <= 0 {
		target = targetFallback
	}

	impact := progress.EnvironmentalImpact(totalSaved)

	return dashboard.View{
		Summary:       snap.Summary,
		Chart:         lastWeeks(snap.Chart, weeks),
		Badges:        badges,
		UnlockedCount: progress.UnlockedCount(badges),
		TotalBadges:   len(badges),
		TotalSaved:    totalSaved,
		MonthlyGoal: dashboard.GoalView{
			Goal:     progress.MonthlyProgress(series, target),
			DaysLeft: progress.DaysLeftInMonth(now),
		},
		Impact: dashboard.ImpactView{
			Water: impact.Water,
			Land:  impact.Land,
			Trees: progress.TreesEquivalent(totalSaved),
		},
		Details: snap.Details,
	}
}

// applyBadgeMeta lets upstream display text override the defaults. Unlock
// state always comes from the local rules.
func applyBadgeMeta(badges []progress.Badge, meta []dashboard.BadgeMeta) {
	byID := make(map[int]dashboard.BadgeMeta, len(meta))
	for _, m := range meta {
		byID[m.ID] = m
	}
	for i := range badges {
		m, ok := byID[badges[i].ID]
		if !ok {
			continue
		}
		if m.Name != "" {
			badges[i].Name = m.Name
		}
		if m.Icon != "" {
			badges[i].Icon = m.Icon
		}
		if m.Description != "" {
			badges[i].Description = m.Description
		}
	}
}

func lastWeeks(chart []dashboard.ChartPoint, weeks int) []dashboard.ChartPoint {
	if weeks <= 0 {
		weeks = DefaultChartWeeks
	}
	start := len(chart) - weeks
	if start < 0 {
		start = 0
	}
	out := make([]dashboard.ChartPoint, len(chart)-start)
	copy(out, chart[start:])
	return out
}
