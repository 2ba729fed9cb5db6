package yardage

import (
	"math"

	"github.com/KirkDiggler/gameday/internal/models"
)

// Converter turns intake amounts into yards using the category table
type Converter struct {
	rates map[models.Category]float64
}

// New creates a converter from the configured categories
func New(categories models.Categories) *Converter {
	rates := make(map[models.Category]float64, len(categories))
	for _, c := range categories {
		rates[c.Category] = c.YardRate
	}
	return &Converter{rates: rates}
}

// Yards computes amount * rate * modifier rounded to one decimal.
// Unknown categories, non-positive amounts and non-positive modifiers yield zero.
func (c *Converter) Yards(category models.Category, amount int, modifier float64) float64 {
	rate, ok := c.rates[category]
	if !ok || amount <= 0 || modifier <= 0 || rate <= 0 {
		return 0
	}

	return Round1(float64(amount) * rate * modifier)
}

// Rate returns the base yards per unit for a category
func (c *Converter) Rate(category models.Category) float64 {
	return c.rates[category]
}

// Round1 rounds to one decimal place, halves away from zero
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
