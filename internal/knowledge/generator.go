package knowledge

import (
	"github.com/calbisu/menumind/internal/models"
	"github.com/lucsky/cuid"
	"github.com/sirupsen/logrus"
)

// Catalog is the dish and beverage pool the generator draws from.
type Catalog interface {
	Dishes() []models.Dish
	Beverages() []models.Beverage
}

// Generated pseudo-cases carry an assumed similarity since no stored case
// backs them.
const generatedSimilarity = 0.5

type GeneratedCandidate struct {
	Case       models.Case
	Similarity float64
}

// Generator builds menus directly from domain knowledge. Invoked only when
// retrieval finds no usable case for a request.
type Generator struct {
	catalog  Catalog
	maxMenus int
	log      *logrus.Entry
}

func NewGenerator(catalog Catalog, maxMenus int, logger *logrus.Logger) *Generator {
	if maxMenus <= 0 {
		maxMenus = 3
	}
	return &Generator{
		catalog:  catalog,
		maxMenus: maxMenus,
		log:      logger.WithField("component", "knowledge_generator"),
	}
}

// GenerateFromKnowledge assembles valid menus for the request from the
// catalog. Iteration order over the catalog is stable, so identical inputs
// produce identical menus.
func (g *Generator) GenerateFromKnowledge(req models.Request) []GeneratedCandidate {
	starters := g.eligibleDishes(req, models.CourseStarter)
	mains := g.eligibleDishes(req, models.CourseMain)
	desserts := g.eligibleDishes(req, models.CourseDessert)

	var out []GeneratedCandidate
	for _, starter := range starters {
		for _, main := range mains {
			if !g.coursesFit(starter, main) {
				continue
			}
			for _, dessert := range desserts {
				if !AreCategoriesCompatible(main.Category, dessert.Category) {
					continue
				}
				if isRich(main) && !isLightDessert(dessert) {
					continue
				}
				beverage, ok := g.pickBeverage(req, main)
				if !ok {
					continue
				}
				menu := models.Menu{
					ID:            cuid.New(),
					Starter:       starter.Clone(),
					Main:          main.Clone(),
					Dessert:       dessert.Clone(),
					Beverage:      beverage.Clone(),
					DominantStyle: g.dominantStyle(req, starter, main, dessert),
					CulturalTheme: req.CulturalPreference,
				}
				total := menu.TotalPrice()
				if total < req.PriceMin || total > req.PriceMax {
					continue
				}
				out = append(out, GeneratedCandidate{
					Case: models.Case{
						ID:      cuid.New(),
						Request: req.Clone(),
						Menu:    menu,
						Source:  models.CaseSourceLearned,
					},
					Similarity: generatedSimilarity,
				})
				if len(out) >= g.maxMenus {
					g.log.WithField("generated", len(out)).Debug("knowledge generation complete")
					return out
				}
			}
		}
	}
	g.log.WithFields(logrus.Fields{
		"generated": len(out),
		"event":     req.EventType,
	}).Debug("knowledge generation complete")
	return out
}

func (g *Generator) eligibleDishes(req models.Request, course models.CourseType) []models.Dish {
	var eligible []models.Dish
	for _, dish := range g.catalog.Dishes() {
		if dish.Course != course || !dish.InSeason(req.Season) {
			continue
		}
		if dish.MaxGuests < req.NumGuests {
			continue
		}
		if !IsComplexityAppropriate(dish.Complexity, req.EventType, req.PriceMax) {
			continue
		}
		if g.violatesRequest(dish, req) {
			continue
		}
		eligible = append(eligible, dish)
	}
	return eligible
}

func (g *Generator) violatesRequest(dish models.Dish, req models.Request) bool {
	for _, diet := range req.RequiredDiets {
		if !dish.HasDiet(diet) {
			return true
		}
	}
	for _, ingredient := range req.RestrictedIngredients {
		if dish.HasIngredient(ingredient) {
			return true
		}
	}
	return false
}

func (g *Generator) coursesFit(starter, main models.Dish) bool {
	if !AreCategoriesCompatible(starter.Category, main.Category) {
		return false
	}
	for _, a := range starter.Flavors {
		for _, b := range main.Flavors {
			if AreFlavorsCompatible(a, b) {
				return true
			}
		}
	}
	return false
}

func (g *Generator) pickBeverage(req models.Request, main models.Dish) (models.Beverage, bool) {
	var best models.Beverage
	bestPriority := -1
	for _, beverage := range g.catalog.Beverages() {
		if beverage.Alcoholic != req.WantsWine {
			continue
		}
		if req.WantsWine && !IsWineCompatibleWithFlavors(beverage.Subtype, main.Flavors, false) {
			continue
		}
		priority := WinePriority(beverage.Subtype, false)
		if priority > bestPriority {
			best = beverage
			bestPriority = priority
		}
	}
	return best, bestPriority >= 0
}

func (g *Generator) dominantStyle(req models.Request, dishes ...models.Dish) models.CulinaryStyle {
	if req.PreferredStyle != "" {
		return req.PreferredStyle
	}
	counts := make(map[models.CulinaryStyle]int)
	for _, dish := range dishes {
		for _, style := range dish.Styles {
			counts[style]++
		}
	}
	var best models.CulinaryStyle
	bestCount := 0
	for _, style := range models.AllStyles {
		if counts[style] > bestCount {
			best = style
			bestCount = counts[style]
		}
	}
	return best
}

func isRich(dish models.Dish) bool {
	for _, f := range dish.Flavors {
		if f == models.FlavorRich || f == models.FlavorCreamy {
			return true
		}
	}
	return false
}

func isLightDessert(dish models.Dish) bool {
	for _, f := range dish.Flavors {
		switch f {
		case models.FlavorFresh, models.FlavorFruity, models.FlavorCitrus, models.FlavorLight:
			return true
		}
	}
	return false
}
