package knowledge

import "github.com/calbisu/menumind/internal/models"

// Declarative gastronomic domain knowledge: flavor compatibility, course
// category constraints, wine pairing, preferred styles and complexities per
// event, seasonal calorie ranges and starter temperatures.

var flavorCompatibility = map[models.Flavor][]models.Flavor{
	models.FlavorSweet:  {models.FlavorFruity, models.FlavorCreamy, models.FlavorCitrus, models.FlavorRich},
	models.FlavorSalty:  {models.FlavorUmami, models.FlavorSmoky, models.FlavorHerbal, models.FlavorRich},
	models.FlavorSour:   {models.FlavorFresh, models.FlavorCitrus, models.FlavorLight, models.FlavorHerbal},
	models.FlavorBitter: {models.FlavorRich, models.FlavorEarthy, models.FlavorSweet},
	models.FlavorUmami:  {models.FlavorSalty, models.FlavorEarthy, models.FlavorSmoky, models.FlavorRich},
	models.FlavorSmoky:  {models.FlavorSalty, models.FlavorUmami, models.FlavorSpicy, models.FlavorEarthy},
	models.FlavorSpicy:  {models.FlavorFresh, models.FlavorCitrus, models.FlavorSmoky, models.FlavorSweet},
	models.FlavorFresh:  {models.FlavorLight, models.FlavorCitrus, models.FlavorHerbal, models.FlavorSour, models.FlavorFruity},
	models.FlavorCreamy: {models.FlavorSweet, models.FlavorRich, models.FlavorFruity, models.FlavorUmami},
	models.FlavorCitrus: {models.FlavorFresh, models.FlavorLight, models.FlavorSour, models.FlavorSweet},
	models.FlavorFruity: {models.FlavorSweet, models.FlavorFresh, models.FlavorCreamy, models.FlavorLight},
	models.FlavorEarthy: {models.FlavorUmami, models.FlavorSmoky, models.FlavorRich, models.FlavorHerbal},
	models.FlavorHerbal: {models.FlavorFresh, models.FlavorEarthy, models.FlavorLight, models.FlavorSalty},
	models.FlavorRich:   {models.FlavorSweet, models.FlavorCreamy, models.FlavorUmami, models.FlavorEarthy},
	models.FlavorLight:  {models.FlavorFresh, models.FlavorCitrus, models.FlavorHerbal, models.FlavorFruity},
}

func AreFlavorsCompatible(a, b models.Flavor) bool {
	if a == b {
		return true
	}
	for _, f := range flavorCompatibility[a] {
		if f == b {
			return true
		}
	}
	return false
}

func CompatibleFlavors(f models.Flavor) []models.Flavor {
	return flavorCompatibility[f]
}

// Category pairs that should not share a menu, in either order.
var incompatibleCategories = [][2]models.DishCategory{
	{models.CategorySoup, models.CategorySoup},
	{models.CategorySalad, models.CategorySalad},
	{models.CategoryRice, models.CategoryPasta},
	{models.CategoryMeat, models.CategoryMeat},
	{models.CategoryFish, models.CategoryFish},
}

func AreCategoriesCompatible(a, b models.DishCategory) bool {
	for _, pair := range incompatibleCategories {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return false
		}
	}
	return true
}

var wineFlavorCompatibility = map[string][]models.Flavor{
	"full-bodied": {models.FlavorRich, models.FlavorUmami, models.FlavorSmoky, models.FlavorEarthy},
	"fruity":      {models.FlavorFruity, models.FlavorFresh, models.FlavorLight, models.FlavorSweet},
	"dry":         {models.FlavorSalty, models.FlavorFresh, models.FlavorCitrus, models.FlavorHerbal},
	"young":       {models.FlavorFresh, models.FlavorLight, models.FlavorFruity},
	"aged":        {models.FlavorRich, models.FlavorEarthy, models.FlavorSmoky},
	"rose":        {models.FlavorFresh, models.FlavorFruity, models.FlavorLight, models.FlavorSalty},
	"sparkling":   {models.FlavorFresh, models.FlavorCitrus, models.FlavorLight, models.FlavorCreamy, models.FlavorSweet},
	"sweet":       {models.FlavorSweet, models.FlavorCreamy, models.FlavorFruity, models.FlavorRich},
}

// IsWineCompatibleWithFlavors reports whether a wine subtype pairs with at
// least one of the given flavors. Desserts only accept sweet or sparkling
// wines.
func IsWineCompatibleWithFlavors(subtype string, flavors []models.Flavor, isDessert bool) bool {
	if isDessert && subtype != "sweet" && subtype != "sparkling" {
		return false
	}
	compatible := wineFlavorCompatibility[subtype]
	for _, f := range flavors {
		for _, c := range compatible {
			if f == c {
				return true
			}
		}
	}
	return false
}

// WinePriority ranks wine subtypes for selection, higher is better.
func WinePriority(subtype string, isDessert bool) int {
	if isDessert {
		switch subtype {
		case "sweet":
			return 50
		case "sparkling":
			return 40
		default:
			return 5
		}
	}
	priorities := map[string]int{
		"full-bodied": 25,
		"fruity":      20,
		"rose":        18,
		"dry":         15,
		"young":       12,
		"sparkling":   10,
		"aged":        10,
	}
	if p, ok := priorities[subtype]; ok {
		return p
	}
	return 5
}

var eventStyles = map[models.EventType][]models.CulinaryStyle{
	models.EventWedding:     {models.StyleGourmet, models.StyleModern, models.StyleMediterranean, models.StyleTraditional},
	models.EventCommunion:   {models.StyleTraditional, models.StyleMediterranean, models.StyleRustic},
	models.EventChristening: {models.StyleTraditional, models.StyleMediterranean, models.StyleRustic},
	models.EventFamiliar:    {models.StyleTraditional, models.StyleRustic, models.StyleMediterranean},
	models.EventCorporate:   {models.StyleModern, models.StyleInternational, models.StyleGourmet},
	models.EventCongress:    {models.StyleInternational, models.StyleModern, models.StyleFusion},
}

// PreferredStylesForEvent returns the appropriate styles for an event type,
// most preferred first.
func PreferredStylesForEvent(event models.EventType) []models.CulinaryStyle {
	return eventStyles[event]
}

func IsStyleAppropriateForEvent(style models.CulinaryStyle, event models.EventType) bool {
	for _, s := range eventStyles[event] {
		if s == style {
			return true
		}
	}
	return false
}

var eventComplexities = map[models.EventType][]models.Complexity{
	models.EventWedding:     {models.ComplexityMedium, models.ComplexityHigh},
	models.EventCommunion:   {models.ComplexityLow, models.ComplexityMedium},
	models.EventChristening: {models.ComplexityLow, models.ComplexityMedium},
	models.EventFamiliar:    {models.ComplexityLow, models.ComplexityMedium},
	models.EventCorporate:   {models.ComplexityMedium, models.ComplexityHigh},
	models.EventCongress:    {models.ComplexityLow, models.ComplexityMedium},
}

// IsComplexityAppropriate checks dish complexity against the event type.
// Low-budget weddings avoid high complexity dishes.
func IsComplexityAppropriate(complexity models.Complexity, event models.EventType, budget float64) bool {
	if event == models.EventWedding && budget < 50 && complexity == models.ComplexityHigh {
		return false
	}
	allowed, ok := eventComplexities[event]
	if !ok {
		return complexity == models.ComplexityMedium
	}
	for _, c := range allowed {
		if c == complexity {
			return true
		}
	}
	return false
}

var calorieRanges = map[models.Season][2]int{
	models.SeasonSummer: {550, 950},
	models.SeasonWinter: {850, 1450},
	models.SeasonSpring: {650, 1250},
	models.SeasonAutumn: {650, 1250},
	models.SeasonAll:    {550, 1450},
}

func CalorieRange(season models.Season) (int, int) {
	if r, ok := calorieRanges[season]; ok {
		return r[0], r[1]
	}
	return 650, 1250
}

func IsCalorieCountAppropriate(calories int, season models.Season) bool {
	min, max := CalorieRange(season)
	return calories >= min && calories <= max
}

var starterTemperatures = map[models.Season][]models.Temperature{
	models.SeasonSummer: {models.TempCold, models.TempWarm},
	models.SeasonWinter: {models.TempHot},
	models.SeasonSpring: {models.TempWarm, models.TempCold, models.TempHot},
	models.SeasonAutumn: {models.TempWarm, models.TempHot},
	models.SeasonAll:    {models.TempHot, models.TempWarm, models.TempCold},
}

func IsStarterTemperatureAppropriate(temp models.Temperature, season models.Season) bool {
	allowed, ok := starterTemperatures[season]
	if !ok {
		return true
	}
	for _, t := range allowed {
		if t == temp {
			return true
		}
	}
	return false
}
