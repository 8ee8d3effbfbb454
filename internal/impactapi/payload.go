package impactapi

import (
	"impactDashboardAPI/internal/types/dashboard"
	"impactDashboardAPI/internal/types/food"
)

// Wire shapes use pointers for fields whose zero value is legal, so a missing
// field fails "required" instead of decoding to zero.

type summaryPayload struct {
	CO2Emitted     *float64 `json:"co2Emitted" validate:"required,gte=0"`
	CO2Saved       *float64 `json:"co2Saved" validate:"required,gte=0"`
	Streak         *int     `json:"streak" validate:"required,gte=0"`
	BadgesUnlocked int      `json:"badgesUnlocked" validate:"gte=0"`
	TotalBadges    int      `json:"totalBadges" validate:"gte=0"`
	PercentChange  *float64 `json:"percentChange" validate:"required"`
}

func (p summaryPayload) toSummary() dashboard.Summary {
	return dashboard.Summary{
		CO2Emitted:     *p.CO2Emitted,
		CO2Saved:       *p.CO2Saved,
		Streak:         *p.Streak,
		BadgesUnlocked: p.BadgesUnlocked,
		TotalBadges:    p.TotalBadges,
		PercentChange:  *p.PercentChange,
	}
}

type chartPayload struct {
	Week      string   `json:"week" validate:"required"`
	Footprint *float64 `json:"footprint" validate:"required,gte=0"`
	Saved     *float64 `json:"saved" validate:"required,gte=0"`
	Baseline  float64  `json:"baseline" validate:"gte=0"`
}

type badgePayload struct {
	ID          int    `json:"id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

type goalPayload struct {
	Target   *float64 `json:"target" validate:"required"`
	Current  float64  `json:"current" validate:"gte=0"`
	DaysLeft int      `json:"daysLeft" validate:"gte=0"`
}

type detailsPayload struct {
	Emitted []struct {
		D string   `json:"d" validate:"required"`
		V *float64 `json:"v" validate:"required"`
	} `json:"emitted" validate:"dive"`
	Saved []struct {
		N string `json:"n" validate:"required"`
		V string `json:"v"`
	} `json:"saved" validate:"dive"`
	Streak        []bool `json:"streak"`
	Contributions []struct {
		D string `json:"d" validate:"required"`
		V string `json:"v"`
	} `json:"contributions" validate:"dive"`
	Impact []struct {
		Label string `json:"label" validate:"required"`
		Value string `json:"value"`
	} `json:"impact" validate:"dive"`
}

func (p detailsPayload) toDetails() dashboard.Details {
	d := dashboard.Details{
		Emitted:       make([]dashboard.EmittedPoint, 0, len(p.Emitted)),
		Saved:         make([]dashboard.SavedItem, 0, len(p.Saved)),
		Streak:        append([]bool{}, p.Streak...),
		Contributions: make([]dashboard.Contribution, 0, len(p.Contributions)),
		Impact:        make([]dashboard.ImpactDetail, 0, len(p.Impact)),
	}
	for _, e := range p.Emitted {
		d.Emitted = append(d.Emitted, dashboard.EmittedPoint{D: e.D, V: *e.V})
	}
	for _, s := range p.Saved {
		d.Saved = append(d.Saved, dashboard.SavedItem{N: s.N, V: s.V})
	}
	for _, c := range p.Contributions {
		d.Contributions = append(d.Contributions, dashboard.Contribution{D: c.D, V: c.V})
	}
	for _, i := range p.Impact {
		d.Impact = append(d.Impact, dashboard.ImpactDetail{Label: i.Label, Value: i.Value})
	}
	return d
}

type foodPayload struct {
	ID         int      `json:"id" validate:"required,gt=0"`
	Name       string   `json:"name" validate:"required"`
	Category   string   `json:"category" validate:"required"`
	IsVeg      *bool    `json:"is_veg" validate:"required"`
	Protein    float64  `json:"protein" validate:"gte=0"`
	CO2Per100g *float64 `json:"co2_per_100g" validate:"required,gte=0"`
	Rating     string   `json:"rating"`
	Origin     string   `json:"origin"`
	Notes      string   `json:"notes"`
}

func (p foodPayload) toFood() food.Food {
	return food.Food{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		IsVeg:      *p.IsVeg,
		Protein:    p.Protein,
		CO2Per100g: *p.CO2Per100g,
		Rating:     p.Rating,
		Origin:     p.Origin,
		Notes:      p.Notes,
	}
}

type logEntryPayload struct {
	ID            int      `json:"id" validate:"gte=0"`
	FoodName      string   `json:"food_name" validate:"required"`
	QuantityGrams float64  `json:"quantity_grams" validate:"gte=0"`
	CO2Impact     *float64 `json:"co2_impact" validate:"required,gte=0"`
	LoggedAt      string   `json:"logged_at"`
}

func (p logEntryPayload) toEntry() food.LogEntry {
	return food.LogEntry{
		ID:            p.ID,
		FoodName:      p.FoodName,
		QuantityGrams: p.QuantityGrams,
		CO2Impact:     *p.CO2Impact,
		LoggedAt:      p.LoggedAt,
	}
}

// Completion is the fire-and-forget notice sent when a challenge is accepted.
type Completion struct {
	ChallengeID int     `json:"challengeId"`
	CO2Saved    float64 `json:"co2_saved"`
}
