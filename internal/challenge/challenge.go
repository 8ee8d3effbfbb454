package challenge

type Category string

const (
	CategoryAll       Category = "all"
	CategoryFood      Category = "food"
	CategoryTransport Category = "transport"
	CategoryEnergy    Category = "energy"
	CategoryLifestyle Category = "lifestyle"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

const UnitKgCO2 = "kg CO₂"

// Challenge is a single daily sustainability action. CO2Impact is a precomputed
// estimate in kilograms of CO₂e and is never recomputed at read time.
type Challenge struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Icon        string     `json:"icon"`
	CO2Impact   float64    `json:"co2Impact"`
	Unit        string     `json:"unit"`
	Tips        []string   `json:"tips"`
}
