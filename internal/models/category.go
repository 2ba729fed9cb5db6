package models

// Category identifies one tracked nutrition intake
type Category string

const (
	// CategoryFluids tracks fluid intake in millilitres
	CategoryFluids Category = "fluids"

	// CategoryCalories tracks calorie intake
	CategoryCalories Category = "calories"

	// CategoryAntacid tracks baking soda rinse swishes
	CategoryAntacid Category = "antacid"
)

// CategoryConfig is one row of the fixed category table
type CategoryConfig struct {
	// Category is the identifier used on the wire and in storage
	Category Category

	// Title is the display name
	Title string

	// Unit is the display unit for amounts
	Unit string

	// Goal is the daily target amount
	Goal int

	// Increment is the default step for quick adds and removals
	Increment int

	// YardRate converts one unit of intake into yards
	YardRate float64
}

// Categories is the ordered category table supplied at initialization
type Categories []CategoryConfig

// DefaultCategories returns the standard three entry table
func DefaultCategories() Categories {
	return Categories{
		{Category: CategoryFluids, Title: "Fluids", Unit: "ml", Goal: 1000, Increment: 100, YardRate: 0.08},
		{Category: CategoryCalories, Title: "Calories", Unit: "cal", Goal: 1500, Increment: 100, YardRate: 0.08},
		{Category: CategoryAntacid, Title: "Baking Soda", Unit: "swishes", Goal: 2, Increment: 1, YardRate: 5},
	}
}

// Lookup returns the config row for a category
func (c Categories) Lookup(category Category) (CategoryConfig, bool) {
	for _, cfg := range c {
		if cfg.Category == category {
			return cfg, true
		}
	}
	return CategoryConfig{}, false
}

// ParseCategory maps user input to a known category, accepting a few aliases
func ParseCategory(raw string) (Category, bool) {
	switch raw {
	case "fluids", "fluid", "water":
		return CategoryFluids, true
	case "calories", "calorie", "cal", "food":
		return CategoryCalories, true
	case "antacid", "bakingSoda", "baking_soda", "soda", "swish":
		return CategoryAntacid, true
	}
	return "", false
}
