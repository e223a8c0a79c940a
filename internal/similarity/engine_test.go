package similarity

import (
	"testing"

	"github.com/calbisu/menumind/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine() *Engine {
	return NewEngine(models.DefaultConfig(), DefaultWeights())
}

// weddingCase mirrors a typical stored summer wedding precedent: a 78
// euro gourmet menu that served 120 guests.
func weddingCase() *models.Case {
	return &models.Case{
		ID: "case-1",
		Request: models.Request{
			EventType: models.EventWedding,
			Season:    models.SeasonSummer,
			NumGuests: 120,
			PriceMin:  60,
			PriceMax:  110,
			WantsWine: true,
		},
		Menu: models.Menu{
			ID: "menu-1",
			Starter: models.Dish{
				Course: models.CourseStarter, Price: 24,
				Diets: []string{models.DietGlutenFree},
			},
			Main: models.Dish{
				Course: models.CourseMain, Price: 32,
				Diets: []string{models.DietGlutenFree},
			},
			Dessert: models.Dish{
				Course: models.CourseDessert, Price: 12,
				Diets: []string{models.DietVegan, models.DietGlutenFree},
			},
			Beverage:      models.Beverage{Price: 10, Alcoholic: true},
			DominantStyle: models.StyleGourmet,
		},
		FeedbackScore: 4.7,
	}
}

func TestSimilarityCloseWeddingScenario(t *testing.T) {
	engine := testEngine()
	req := models.Request{
		EventType:      models.EventWedding,
		Season:         models.SeasonSummer,
		NumGuests:      100,
		PriceMin:       60,
		PriceMax:       100,
		WantsWine:      true,
		PreferredStyle: models.StyleGourmet,
	}

	score, breakdown := engine.Similarity(req, weddingCase())

	require.Len(t, breakdown, 6)
	assert.InDelta(t, 1.0, breakdown[models.DimEventMatch], 1e-9)
	assert.InDelta(t, 1.0, breakdown[models.DimSeasonMatch], 1e-9)
	assert.InDelta(t, 0.6, breakdown[models.DimGuestCount], 1e-9)
	assert.InDelta(t, 1.0, breakdown[models.DimPriceRange], 1e-9)
	assert.InDelta(t, 1.0, breakdown[models.DimStyleMatch], 1e-9)
	assert.InDelta(t, 1.0, breakdown[models.DimWinePreference], 1e-9)

	// 0.70 weighted over 0.72 active weight.
	assert.InDelta(t, 0.9722, score, 0.001)
	assert.GreaterOrEqual(t, score, 0.7)
}

func TestSimilarityInactiveDimensionsExcluded(t *testing.T) {
	engine := testEngine()
	req := models.Request{
		EventType: models.EventWedding,
		Season:    models.SeasonSummer,
		NumGuests: 120,
		PriceMin:  60,
		PriceMax:  110,
		WantsWine: true,
	}

	_, breakdown := engine.Similarity(req, weddingCase())

	assert.NotContains(t, breakdown, models.DimDietCompatibility)
	assert.NotContains(t, breakdown, models.DimCulturalMatch)
	assert.NotContains(t, breakdown, models.DimStyleMatch)
}

func TestSimilaritySeasonAllMatchesAnything(t *testing.T) {
	engine := testEngine()
	c := weddingCase()
	c.Request.Season = models.SeasonAll

	req := models.Request{
		EventType: models.EventWedding,
		Season:    models.SeasonWinter,
		NumGuests: 120,
		PriceMin:  60,
		PriceMax:  110,
		WantsWine: true,
	}
	_, breakdown := engine.Similarity(req, c)
	assert.InDelta(t, 1.0, breakdown[models.DimSeasonMatch], 1e-9)
}

func TestSimilarityRelatedEventsPartialCredit(t *testing.T) {
	engine := testEngine()
	req := models.Request{
		EventType: models.EventCommunion,
		Season:    models.SeasonSummer,
		NumGuests: 120,
		PriceMin:  60,
		PriceMax:  110,
		WantsWine: true,
	}
	_, breakdown := engine.Similarity(req, weddingCase())
	assert.InDelta(t, 0.6, breakdown[models.DimEventMatch], 1e-9)

	req.EventType = models.EventCongress
	_, breakdown = engine.Similarity(req, weddingCase())
	assert.InDelta(t, 0.3, breakdown[models.DimEventMatch], 1e-9)
}

func TestSimilarityPriceOutsideRange(t *testing.T) {
	engine := testEngine()
	req := models.Request{
		EventType: models.EventWedding,
		Season:    models.SeasonSummer,
		NumGuests: 120,
		PriceMin:  10,
		PriceMax:  20,
		WantsWine: true,
	}
	_, breakdown := engine.Similarity(req, weddingCase())
	assert.Zero(t, breakdown[models.DimPriceRange])
}

func TestSimilarityGuestGapSaturates(t *testing.T) {
	engine := testEngine()
	req := models.Request{
		EventType: models.EventWedding,
		Season:    models.SeasonSummer,
		NumGuests: 400,
		PriceMin:  60,
		PriceMax:  110,
		WantsWine: true,
	}
	_, breakdown := engine.Similarity(req, weddingCase())
	assert.Zero(t, breakdown[models.DimGuestCount])
}

func TestSimilarityDietFraction(t *testing.T) {
	engine := testEngine()
	req := models.Request{
		EventType:     models.EventWedding,
		Season:        models.SeasonSummer,
		NumGuests:     120,
		PriceMin:      60,
		PriceMax:      110,
		WantsWine:     true,
		RequiredDiets: []string{models.DietGlutenFree, models.DietVegan},
	}
	// The menu is fully gluten-free but only the dessert is vegan.
	_, breakdown := engine.Similarity(req, weddingCase())
	assert.InDelta(t, 0.5, breakdown[models.DimDietCompatibility], 1e-9)
}

func TestSimilarityZeroActiveWeight(t *testing.T) {
	zeros := make(map[string]float64, len(models.AllDimensions))
	for _, dim := range models.AllDimensions {
		zeros[dim] = 0
	}
	engine := NewEngine(models.DefaultConfig(), NewWeights(zeros))

	req := models.Request{
		EventType: models.EventWedding,
		Season:    models.SeasonSummer,
		NumGuests: 120,
		PriceMin:  60,
		PriceMax:  110,
	}
	score, _ := engine.Similarity(req, weddingCase())
	assert.Zero(t, score)
}

func TestSimilarityRepeatableForIdenticalInputs(t *testing.T) {
	engine := testEngine()
	req := models.Request{
		EventType:          models.EventWedding,
		Season:             models.SeasonSummer,
		NumGuests:          100,
		PriceMin:           60,
		PriceMax:           100,
		WantsWine:          true,
		PreferredStyle:     models.StyleGourmet,
		CulturalPreference: models.TraditionSpanish,
		RequiredDiets:      []string{models.DietGlutenFree},
	}
	c := weddingCase()

	// All eight dimensions active; the total must be bit-identical on
	// every call, not merely close.
	first, _ := engine.Similarity(req, c)
	for i := 0; i < 1000; i++ {
		score, _ := engine.Similarity(req, c)
		require.Equal(t, first, score)
	}
}

func TestSimilarityStaysInUnitRange(t *testing.T) {
	engine := testEngine()

	zeroPriced := weddingCase()
	zeroPriced.Menu.Starter.Price = 0
	zeroPriced.Menu.Starter.Calories = 0
	zeroPriced.Menu.Main.Price = 0
	zeroPriced.Menu.Main.Calories = 0
	zeroPriced.Menu.Dessert.Price = 0
	zeroPriced.Menu.Dessert.Calories = 0
	zeroPriced.Menu.Beverage.Price = 0

	requests := []models.Request{
		{EventType: models.EventCongress, Season: models.SeasonWinter, NumGuests: 1, PriceMin: 0, PriceMax: 0},
		{EventType: models.EventWedding, Season: models.SeasonSummer, NumGuests: 5000, PriceMin: 500, PriceMax: 1000, WantsWine: true},
		{EventType: models.EventFamiliar, Season: models.SeasonAutumn, NumGuests: 30, PriceMin: 40, PriceMax: 70, RequiredDiets: []string{models.DietKosher}},
	}
	for _, c := range []*models.Case{weddingCase(), zeroPriced} {
		for _, req := range requests {
			score, _ := engine.Similarity(req, c)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}

	// Menu-level similarity is defined for zero-priced menus too, with no
	// division by zero in the price and calorie ratios.
	ms := MenuSimilarity(zeroPriced.Menu, zeroPriced.Menu)
	assert.GreaterOrEqual(t, ms, 0.0)
	assert.LessOrEqual(t, ms, 1.0)
}

func TestNewWeightsIgnoresUnknownDimensions(t *testing.T) {
	w := NewWeights(map[string]float64{
		models.DimEventMatch: 0.4,
		"no_such_dimension":  0.9,
	})
	assert.InDelta(t, 0.4, w.Get(models.DimEventMatch), 1e-9)
	assert.Zero(t, w.Get("no_such_dimension"))

	snapshot := w.Snapshot()
	assert.Len(t, snapshot, len(models.AllDimensions))
}
