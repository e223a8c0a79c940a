package similarity

import "github.com/calbisu/menumind/internal/models"

// Dish and menu level similarity, used when adapting, diversifying and
// deciding retention. Independent of the weighted request/case dimensions.

var complexityOrder = map[models.Complexity]int{
	models.ComplexityLow:    0,
	models.ComplexityMedium: 1,
	models.ComplexityHigh:   2,
}

// DishSimilarity averages category, price, complexity, flavor, style and
// calorie agreement. Dishes of different course types are not comparable
// and score 0.0.
func DishSimilarity(a, b models.Dish) float64 {
	if a.Course != b.Course {
		return 0.0
	}

	categorySim := 0.3
	if a.Category == b.Category {
		categorySim = 1.0
	}

	priceSim := ratioSimilarity(a.Price, b.Price)

	complexitySim := 1.0 - float64(abs(complexityOrder[a.Complexity]-complexityOrder[b.Complexity]))/2.0

	flavorSim := jaccardFlavors(a.Flavors, b.Flavors)
	styleSim := jaccardStyles(a.Styles, b.Styles)
	calorieSim := ratioSimilarity(float64(a.Calories), float64(b.Calories))

	return (categorySim + priceSim + complexitySim + flavorSim + styleSim + calorieSim) / 6.0
}

// MenuSimilarity weights the main course heaviest, then starter and
// dessert, with price and dominant style rounding out the score.
func MenuSimilarity(a, b models.Menu) float64 {
	starterSim := DishSimilarity(a.Starter, b.Starter)
	mainSim := DishSimilarity(a.Main, b.Main)
	dessertSim := DishSimilarity(a.Dessert, b.Dessert)
	priceSim := ratioSimilarity(a.TotalPrice(), b.TotalPrice())

	styleSim := 0.5
	if a.DominantStyle == b.DominantStyle {
		styleSim = 1.0
	}

	return 0.20*starterSim + 0.35*mainSim + 0.20*dessertSim + 0.15*priceSim + 0.10*styleSim
}

// ratioSimilarity is min/max, with two zero values counting as identical.
func ratioSimilarity(a, b float64) float64 {
	max := a
	min := b
	if b > a {
		max, min = b, a
	}
	if max == 0 {
		return 1.0
	}
	if min < 0 {
		return 0.0
	}
	return min / max
}

func jaccardFlavors(a, b []models.Flavor) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.5
	}
	set := make(map[models.Flavor]bool, len(a))
	for _, f := range a {
		set[f] = true
	}
	common := 0
	union := len(set)
	seen := make(map[models.Flavor]bool, len(b))
	for _, f := range b {
		if seen[f] {
			continue
		}
		seen[f] = true
		if set[f] {
			common++
		} else {
			union++
		}
	}
	return float64(common) / float64(union)
}

func jaccardStyles(a, b []models.CulinaryStyle) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.5
	}
	set := make(map[models.CulinaryStyle]bool, len(a))
	for _, s := range a {
		set[s] = true
	}
	common := 0
	union := len(set)
	seen := make(map[models.CulinaryStyle]bool, len(b))
	for _, s := range b {
		if seen[s] {
			continue
		}
		seen[s] = true
		if set[s] {
			common++
		} else {
			union++
		}
	}
	return float64(common) / float64(union)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
