package knowledge

import (
	"testing"

	"github.com/calbisu/menumind/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	dishes    []models.Dish
	beverages []models.Beverage
}

func (s stubCatalog) Dishes() []models.Dish        { return s.dishes }
func (s stubCatalog) Beverages() []models.Beverage { return s.beverages }

func generatorCatalog() stubCatalog {
	vegan := []string{models.DietVegan, models.DietVegetarian, models.DietGlutenFree, models.DietLactoseFree}
	return stubCatalog{
		dishes: []models.Dish{
			{
				ID: "gazpacho", Name: "Gazpacho", Course: models.CourseStarter,
				Price: 15, Category: models.CategorySoup, Calories: 95, MaxGuests: 400,
				Seasons:    []models.Season{models.SeasonSummer},
				Complexity: models.ComplexityLow, Temperature: models.TempCold,
				Flavors:     []models.Flavor{models.FlavorFresh, models.FlavorSour},
				Styles:      []models.CulinaryStyle{models.StyleMediterranean},
				Diets:       vegan,
				Ingredients: []string{"tomato", "garlic"},
			},
			{
				ID: "foie", Name: "Foie Terrine", Course: models.CourseStarter,
				Price: 45, Category: models.CategoryMeat, Calories: 320, MaxGuests: 200,
				Seasons:    []models.Season{models.SeasonWinter},
				Complexity: models.ComplexityHigh, Temperature: models.TempCold,
				Flavors:     []models.Flavor{models.FlavorRich},
				Ingredients: []string{"duck"},
			},
			{
				ID: "verduras", Name: "Grilled Vegetables", Course: models.CourseMain,
				Price: 22, Category: models.CategoryVegetable, Calories: 260, MaxGuests: 400,
				Seasons:    []models.Season{models.SeasonAll},
				Complexity: models.ComplexityLow, Temperature: models.TempHot,
				Flavors:     []models.Flavor{models.FlavorSmoky, models.FlavorHerbal},
				Styles:      []models.CulinaryStyle{models.StyleMediterranean},
				Diets:       vegan,
				Ingredients: []string{"zucchini", "red pepper"},
			},
			{
				ID: "fruit", Name: "Fruit Platter", Course: models.CourseDessert,
				Price: 12, Category: models.CategoryFruit, Calories: 120, MaxGuests: 500,
				Seasons:    []models.Season{models.SeasonAll},
				Complexity: models.ComplexityLow, Temperature: models.TempCold,
				Flavors:     []models.Flavor{models.FlavorFresh, models.FlavorFruity},
				Styles:      []models.CulinaryStyle{models.StyleMediterranean},
				Diets:       vegan,
				Ingredients: []string{"seasonal fruit"},
			},
		},
		beverages: []models.Beverage{
			{ID: "water", Name: "Sparkling Water", Alcoholic: false, Price: 2, Subtype: "sparkling"},
			{ID: "lemonade", Name: "Lemonade", Alcoholic: false, Price: 3.5, Subtype: "fruity"},
			{ID: "albarino", Name: "Albarino", Alcoholic: true, Price: 9, Subtype: "dry",
				Flavors: []models.Flavor{models.FlavorFresh}},
		},
	}
}

func testGenerator(maxMenus int) *Generator {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewGenerator(generatorCatalog(), maxMenus, logger)
}

func TestGenerateFromKnowledgeHonorsConstraints(t *testing.T) {
	g := testGenerator(3)
	req := models.Request{
		EventType:     models.EventFamiliar,
		Season:        models.SeasonSummer,
		NumGuests:     30,
		PriceMin:      40,
		PriceMax:      70,
		WantsWine:     false,
		RequiredDiets: []string{models.DietVegan},
	}

	out := g.GenerateFromKnowledge(req)
	require.Len(t, out, 1)

	menu := out[0].Case.Menu
	assert.True(t, menu.SatisfiesDiet(models.DietVegan))
	assert.False(t, menu.Beverage.Alcoholic)
	assert.GreaterOrEqual(t, menu.TotalPrice(), req.PriceMin)
	assert.LessOrEqual(t, menu.TotalPrice(), req.PriceMax)
	assert.Equal(t, models.CaseSourceLearned, out[0].Case.Source)
	assert.InDelta(t, 0.5, out[0].Similarity, 1e-9)

	// Fruity beverages outrank sparkling water for a non-wine request.
	assert.Equal(t, "lemonade", menu.Beverage.ID)
}

func TestGenerateFromKnowledgeSeasonFilter(t *testing.T) {
	g := testGenerator(3)
	req := models.Request{
		EventType: models.EventFamiliar,
		Season:    models.SeasonSummer,
		NumGuests: 30,
		PriceMin:  40,
		PriceMax:  120,
	}

	out := g.GenerateFromKnowledge(req)
	for _, cand := range out {
		// The winter-only foie starter must never appear in a summer menu.
		assert.NotEqual(t, "foie", cand.Case.Menu.Starter.ID)
	}
}

func TestGenerateFromKnowledgeEmptyWhenNothingFits(t *testing.T) {
	g := testGenerator(3)
	req := models.Request{
		EventType: models.EventWedding,
		Season:    models.SeasonSummer,
		NumGuests: 30,
		PriceMin:  200,
		PriceMax:  300,
	}
	out := g.GenerateFromKnowledge(req)
	assert.Empty(t, out)
}

func TestGenerateFromKnowledgePreferredStyleWins(t *testing.T) {
	g := testGenerator(3)
	req := models.Request{
		EventType:      models.EventFamiliar,
		Season:         models.SeasonSummer,
		NumGuests:      30,
		PriceMin:       40,
		PriceMax:       70,
		PreferredStyle: models.StyleModern,
	}
	out := g.GenerateFromKnowledge(req)
	require.NotEmpty(t, out)
	assert.Equal(t, models.StyleModern, out[0].Case.Menu.DominantStyle)
}
