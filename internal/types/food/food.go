package food

type Food struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	IsVeg      bool    `json:"is_veg"`
	Protein    float64 `json:"protein"`
	CO2Per100g float64 `json:"co2_per_100g"`
	Rating     string  `json:"rating"`
	Origin     string  `json:"origin"`
	Notes      string  `json:"notes"`
}

type Filter struct {
	Category string
	IsVeg    *bool
	Search   string
}

type LogRequest struct {
	FoodID        int     `json:"food_id" validate:"required,gt=0"`
	QuantityGrams float64 `json:"quantity_grams" validate:"required,gt=0,lte=100000"`
}

type LogEntry struct {
	ID            int     `json:"id"`
	FoodName      string  `json:"food_name"`
	QuantityGrams float64 `json:"quantity_grams"`
	CO2Impact     float64 `json:"co2_impact"`
	LoggedAt      string  `json:"logged_at"`
}

type ImpactPreview struct {
	FoodID        int     `json:"food_id"`
	FoodName      string  `json:"food_name"`
	QuantityGrams float64 `json:"quantity_grams"`
	CO2Impact     float64 `json:"co2_impact"`
}
