package progress

import (
	"fmt"
	"math"
	"strconv"
)

// Badge is derived on every evaluation and never stored.
type Badge struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	Unlocked    bool    `json:"unlocked"`
	Progress    float64 `json:"progress"`
	Target      string  `json:"target"`
}

// Inputs are the metrics badge rules are evaluated against.
type Inputs struct {
	Streak      int
	WeeksLogged int
	TotalSaved  float64
}

type Metric func(Inputs) float64

var (
	StreakMetric = func(in Inputs) float64 { return float64(in.Streak) }
	WeeksMetric  = func(in Inputs) float64 { return float64(in.WeeksLogged) }
	SavedMetric  = func(in Inputs) float64 { return in.TotalSaved }
)

// Rule unlocks a badge once Metric reaches Threshold. Format renders the
// capped value against the threshold.
type Rule struct {
	ID          int
	Name        string
	Icon        string
	Description string
	Metric      Metric
	Threshold   float64
	Format      func(value, threshold float64) string
}

func CountFormat(value, threshold float64) string {
	return fmt.Sprintf("%d/%d", int(value), int(threshold))
}

func KgFormat(value, threshold float64) string {
	return trimFloat(value) + "/" + trimFloat(threshold)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

// DefaultRules is the ordered badge table. Output of ComputeBadges keeps this order.
var DefaultRules = []Rule{
	{ID: 1, Name: "First Week", Icon: "🌱", Description: "Logged your first week", Metric: WeeksMetric, Threshold: 1, Format: CountFormat},
	{ID: 2, Name: "Beef-Free", Icon: "🥗", Description: "7 days without beef", Metric: StreakMetric, Threshold: 7, Format: CountFormat},
	{ID: 3, Name: "Hot Streak", Icon: "🔥", Description: "30-day logging streak", Metric: StreakMetric, Threshold: 30, Format: CountFormat},
	{ID: 4, Name: "Carbon Crusher", Icon: "💪", Description: "Saved 100kg CO₂", Metric: SavedMetric, Threshold: 100, Format: KgFormat},
	{ID: 5, Name: "Plant Pioneer", Icon: "🌿", Description: "Save 200kg CO₂", Metric: SavedMetric, Threshold: 200, Format: KgFormat},
	{ID: 6, Name: "Climate Champ", Icon: "🏆", Description: "90-day streak", Metric: StreakMetric, Threshold: 90, Format: CountFormat},
}

// Evaluate runs rules in order against in.
func Evaluate(rules []Rule, in Inputs) []Badge {
	badges := make([]Badge, 0, len(rules))
	for _, r := range rules {
		v := r.Metric(in)
		format := r.Format
		if format == nil {
			format = KgFormat
		}
		badges = append(badges, Badge{
			ID:          r.ID,
			Name:        r.Name,
			Icon:        r.Icon,
			Description: r.Description,
			Unlocked:    v >= r.Threshold,
			Progress:    percentOf(v, r.Threshold),
			Target:      format(math.Min(v, r.Threshold), r.Threshold),
		})
	}
	return badges
}

func ComputeBadges(streak, weeksLogged int, totalSaved float64) []Badge {
	return Evaluate(DefaultRules, Inputs{Streak: streak, WeeksLogged: weeksLogged, TotalSaved: totalSaved})
}

func UnlockedCount(badges []Badge) int {
	n := 0
	for _, b := range badges {
		if b.Unlocked {
			n++
		}
	}
	return n
}
