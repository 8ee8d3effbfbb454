// Package progress derives dashboard view state from weekly CO₂ series and streak counts.
// Every function is pure and never mutates its arguments.
package progress

import (
	"math"
	"time"
)

// Conversion factors are approximations used for display only.
const (
	WaterLitersPerKg   = 15.0
	LandSqMetersPerKg  = 0.5
	TreeKgPerYear      = 21.0
	DefaultMonthTarget = 100.0
	monthWindow        = 4
)

// WeeklySample is one point of the weekly series, ordered oldest to newest.
type WeeklySample struct {
	Week      string  `json:"week"`
	Footprint float64 `json:"footprint"`
	Saved     float64 `json:"saved"`
}

type Goal struct {
	Current    float64 `json:"current"`
	Target     float64 `json:"target"`
	Percentage float64 `json:"percentage"`
}

type Impact struct {
	Water int `json:"water"`
	Land  int `json:"land"`
}

func TotalSaved(series []WeeklySample) float64 {
	var sum float64
	for _, s := range series {
		sum += s.Saved
	}
	return sum
}

// MonthlyProgress sums Saved over the last four samples. A non-positive target
// falls back to DefaultMonthTarget.
func MonthlyProgress(series []WeeklySample, target float64) Goal {
	if target <= 0 {
		target = DefaultMonthTarget
	}
	start := len(series) - monthWindow
	if start < 0 {
		start = 0
	}
	current := TotalSaved(series[start:])

	return Goal{
		Current:    current,
		Target:     target,
		Percentage: percentOf(current, target),
	}
}

func EnvironmentalImpact(totalSaved float64) Impact {
	return Impact{
		Water: int(math.Round(totalSaved * WaterLitersPerKg)),
		Land:  int(math.Round(totalSaved * LandSqMetersPerKg)),
	}
}

// TreesEquivalent counts the trees needed to absorb totalSaved in a year.
func TreesEquivalent(totalSaved float64) int {
	return int(math.Round(totalSaved / TreeKgPerYear))
}

// DaysLeftInMonth is zero on the last calendar day of the month.
func DaysLeftInMonth(now time.Time) int {
	last := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())
	return last.Day() - now.Day()
}

func percentOf(value, threshold float64) float64 {
	if threshold <= 0 {
		return 100
	}
	return math.Min(100, value/threshold*100)
}
