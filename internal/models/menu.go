package models

// Menu is a complete proposal: three courses plus a beverage. Menus stored
// inside a Case are treated as immutable; adaptation always works on a
// Clone.
type Menu struct {
	ID            string            `json:"id"`
	Starter       Dish              `json:"starter"`
	Main          Dish              `json:"main"`
	Dessert       Dish              `json:"dessert"`
	Beverage      Beverage          `json:"beverage"`
	DominantStyle CulinaryStyle     `json:"dominant_style,omitempty"`
	CulturalTheme CulturalTradition `json:"cultural_theme,omitempty"`
}

// TotalPrice is always derived from the four components, never stored.
func (m Menu) TotalPrice() float64 {
	return m.Starter.Price + m.Main.Price + m.Dessert.Price + m.Beverage.Price
}

func (m Menu) TotalCalories() int {
	return m.Starter.Calories + m.Main.Calories + m.Dessert.Calories
}

func (m Menu) Dishes() []Dish {
	return []Dish{m.Starter, m.Main, m.Dessert}
}

func (m Menu) Clone() Menu {
	c := m
	c.Starter = m.Starter.Clone()
	c.Main = m.Main.Clone()
	c.Dessert = m.Dessert.Clone()
	c.Beverage = m.Beverage.Clone()
	return c
}

// AllDiets returns the diet tags satisfied by the whole menu, i.e. the
// intersection of the three dishes' diet tags. A menu is only vegan when
// every course is.
func (m Menu) AllDiets() []string {
	var shared []string
	for _, diet := range m.Starter.Diets {
		if m.Main.HasDiet(diet) && m.Dessert.HasDiet(diet) {
			shared = append(shared, diet)
		}
	}
	return shared
}

func (m Menu) SatisfiesDiet(diet string) bool {
	return m.Starter.HasDiet(diet) && m.Main.HasDiet(diet) && m.Dessert.HasDiet(diet)
}

func (m Menu) ContainsIngredient(ingredient string) bool {
	return m.Starter.HasIngredient(ingredient) ||
		m.Main.HasIngredient(ingredient) ||
		m.Dessert.HasIngredient(ingredient)
}

// MinGuestCapacity is the binding capacity across the three courses.
func (m Menu) MinGuestCapacity() int {
	capacity := m.Starter.MaxGuests
	if m.Main.MaxGuests < capacity {
		capacity = m.Main.MaxGuests
	}
	if m.Dessert.MaxGuests < capacity {
		capacity = m.Dessert.MaxGuests
	}
	return capacity
}
