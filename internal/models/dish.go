package models

type Dish struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Course       CourseType          `json:"course"`
	Price        float64             `json:"price"`
	Category     DishCategory        `json:"category"`
	Styles       []CulinaryStyle     `json:"styles"`
	Seasons      []Season            `json:"seasons"`
	Temperature  Temperature         `json:"temperature"`
	Complexity   Complexity          `json:"complexity"`
	Calories     int                 `json:"calories"`
	MaxGuests    int                 `json:"max_guests"`
	Flavors      []Flavor            `json:"flavors"`
	Diets        []string            `json:"diets"`
	Ingredients  []string            `json:"ingredients"`
	BeverageIDs  []string            `json:"compatible_beverage_ids"`
	CulturalTags []CulturalTradition `json:"cultural_tags"`
}

// Clone returns a structurally independent copy. Adaptation works on
// clones so the stored case is never aliased.
func (d Dish) Clone() Dish {
	c := d
	c.Styles = append([]CulinaryStyle(nil), d.Styles...)
	c.Seasons = append([]Season(nil), d.Seasons...)
	c.Flavors = append([]Flavor(nil), d.Flavors...)
	c.Diets = append([]string(nil), d.Diets...)
	c.Ingredients = append([]string(nil), d.Ingredients...)
	c.BeverageIDs = append([]string(nil), d.BeverageIDs...)
	c.CulturalTags = append([]CulturalTradition(nil), d.CulturalTags...)
	return c
}

func (d Dish) HasDiet(diet string) bool {
	for _, t := range d.Diets {
		if t == diet {
			return true
		}
	}
	return false
}

func (d Dish) HasIngredient(ingredient string) bool {
	for _, ing := range d.Ingredients {
		if ing == ingredient {
			return true
		}
	}
	return false
}

func (d Dish) HasStyle(style CulinaryStyle) bool {
	for _, s := range d.Styles {
		if s == style {
			return true
		}
	}
	return false
}

func (d Dish) HasCulturalTag(tradition CulturalTradition) bool {
	for _, t := range d.CulturalTags {
		if t == tradition {
			return true
		}
	}
	return false
}

func (d Dish) InSeason(season Season) bool {
	for _, s := range d.Seasons {
		if s == season || s == SeasonAll {
			return true
		}
	}
	return season == SeasonAll
}

type Beverage struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Alcoholic bool          `json:"alcoholic"`
	Price     float64       `json:"price"`
	Style     BeverageStyle `json:"style"`
	Subtype   string        `json:"subtype"`
	Flavors   []Flavor      `json:"compatible_flavors"`
}

func (b Beverage) Clone() Beverage {
	c := b
	c.Flavors = append([]Flavor(nil), b.Flavors...)
	return c
}
