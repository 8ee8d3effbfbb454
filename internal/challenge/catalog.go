package challenge

import (
	"errors"
	"math"
	"time"
)

// ErrEmptyCatalog is a configuration error: daily selection needs at least one entry.
var ErrEmptyCatalog = errors.New("challenge catalog is empty")

// Catalog is an ordered, read-only list of challenges. Order drives daily rotation.
type Catalog struct {
	items []Challenge
}

// NewCatalog copies items so later changes by the caller cannot reorder the rotation.
func NewCatalog(items []Challenge) *Catalog {
	cp := make([]Challenge, len(items))
	copy(cp, items)
	return &Catalog{items: cp}
}

// Default returns the built-in 50 entry catalog.
func Default() *Catalog {
	return NewCatalog(defaultChallenges)
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// All returns every challenge in catalog order.
func (c *Catalog) All() []Challenge {
	out := make([]Challenge, len(c.items))
	copy(out, c.items)
	return out
}

// At returns the challenge at position i, wrapping out-of-range positions.
func (c *Catalog) At(i int) (Challenge, error) {
	if len(c.items) == 0 {
		return Challenge{}, ErrEmptyCatalog
	}
	return c.items[wrap(i, len(c.items))], nil
}

func (c *Catalog) ByID(id int) (Challenge, bool) {
	for _, ch := range c.items {
		if ch.ID == id {
			return ch, true
		}
	}
	return Challenge{}, false
}

// DailyIndex maps the calendar day of now to a catalog position. January 1st is
// day 1, so it selects position 1. The day is taken in now's own location.
func (c *Catalog) DailyIndex(now time.Time) (int, error) {
	if len(c.items) == 0 {
		return 0, ErrEmptyCatalog
	}
	return now.YearDay() % len(c.items), nil
}

// Daily returns today's challenge. Two calls on the same calendar day return
// the same entry for an unchanged catalog.
func (c *Catalog) Daily(now time.Time) (Challenge, error) {
	i, err := c.DailyIndex(now)
	if err != nil {
		return Challenge{}, err
	}
	return c.items[i], nil
}

// ByCategory filters on category keeping catalog order. "all" returns the whole
// catalog and an unknown category yields an empty slice.
func (c *Catalog) ByCategory(category string) []Challenge {
	if Category(category) == CategoryAll {
		return c.All()
	}
	return c.filter(func(ch Challenge) bool { return string(ch.Category) == category })
}

// ByDifficulty has the same contract as ByCategory, "all" included.
func (c *Catalog) ByDifficulty(difficulty string) []Challenge {
	if difficulty == string(CategoryAll) {
		return c.All()
	}
	return c.filter(func(ch Challenge) bool { return string(ch.Difficulty) == difficulty })
}

// TotalPotentialCO2 is the display total of every challenge impact, rounded to one decimal.
func (c *Catalog) TotalPotentialCO2() float64 {
	var sum float64
	for _, ch := range c.items {
		sum += ch.CO2Impact
	}
	return math.Round(sum*10) / 10
}

func (c *Catalog) Next(index int) int {
	if len(c.items) == 0 {
		return 0
	}
	return wrap(index+1, len(c.items))
}

func (c *Catalog) Previous(index int) int {
	if len(c.items) == 0 {
		return 0
	}
	return wrap(index-1, len(c.items))
}

// Categories lists the filter values accepted by ByCategory, "all" first.
func Categories() []Category {
	return []Category{CategoryAll, CategoryFood, CategoryTransport, CategoryEnergy, CategoryLifestyle}
}

func (c *Catalog) filter(keep func(Challenge) bool) []Challenge {
	out := []Challenge{}
	for _, ch := range c.items {
		if keep(ch) {
			out = append(out, ch)
		}
	}
	return out
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
