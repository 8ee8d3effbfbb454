package dashboard

import "impactDashboardAPI/internal/progress"

type Summary struct {
	CO2Emitted     float64 `json:"co2Emitted"`
	CO2Saved       float64 `json:"co2Saved"`
	Streak         int     `json:"streak"`
	BadgesUnlocked int     `json:"badgesUnlocked"`
	TotalBadges    int     `json:"totalBadges"`
	PercentChange  float64 `json:"percentChange"`
}

type ChartPoint struct {
	Week      string  `json:"week"`
	Footprint float64 `json:"footprint"`
	Saved     float64 `json:"saved"`
	Baseline  float64 `json:"baseline"`
}

// BadgeMeta is display metadata from the impact API. Unlocked is kept for
// reference only; unlock state is recomputed locally.
type BadgeMeta struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

type MonthlyGoal struct {
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	DaysLeft int     `json:"daysLeft"`
}

type EmittedPoint struct {
	D string  `json:"d"`
	V float64 `json:"v"`
}

type SavedItem struct {
	N string `json:"n"`
	V string `json:"v"`
}

type Contribution struct {
	D string `json:"d"`
	V string `json:"v"`
}

type ImpactDetail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Details struct {
	Emitted       []EmittedPoint `json:"emitted"`
	Saved         []SavedItem    `json:"saved"`
	Streak        []bool         `json:"streak"`
	Contributions []Contribution `json:"contributions"`
	Impact        []ImpactDetail `json:"impact"`
}

// Snapshot is the raw result of one parallel dashboard load.
type Snapshot struct {
	Summary Summary
	Chart   []ChartPoint
	Badges  []BadgeMeta
	Goal    MonthlyGoal
	Details Details
}

type GoalView struct {
	progress.Goal
	DaysLeft int `json:"daysLeft"`
}

type ImpactView struct {
	Water int `json:"water"`
	Land  int `json:"land"`
	Trees int `json:"trees"`
}

// View is the dashboard response with every derived figure filled in.
type View struct {
	Summary       Summary          `json:"summary"`
	Chart         []ChartPoint     `json:"chart"`
	Badges        []progress.Badge `json:"badges"`
	UnlockedCount int              `json:"unlockedCount"`
	TotalBadges   int              `json:"totalBadges"`
	TotalSaved    float64          `json:"totalSaved"`
	MonthlyGoal   GoalView         `json:"monthlyGoal"`
	Impact        ImpactView       `json:"impact"`
	Details       Details          `json:"details"`
}
